// ABOUTME: Tests for terminal probing on non-terminal file descriptors
// ABOUTME: Pipes and regular files must never be reported as terminals

package terminal

import (
	"os"
	"testing"
)

func TestIsTerminal_Pipe(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if IsTerminal(w.Fd()) {
		t.Error("pipe reported as terminal")
	}
}

func TestSize_RegularFile(t *testing.T) {
	t.Parallel()

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, _, err := Size(f); err == nil {
		t.Error("expected error for a regular file")
	}
}

func TestWriter_PassesBytesThrough(t *testing.T) {
	t.Parallel()

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := Writer(f).Write([]byte("ok\n")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ok\n" {
		t.Errorf("got %q", data)
	}
}
