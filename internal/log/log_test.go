// ABOUTME: Tests for the leveled logger
// ABOUTME: Validates level filtering and output redirection with plain tags

package log

import (
	"bytes"
	"strings"
	"testing"
)

// These tests mutate package state and must not run in parallel.

func capture(t *testing.T, l int64) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	saved := GetLevel()
	level.Store(l)
	t.Cleanup(func() {
		restore()
		SetLevel(saved)
	})
	return &buf
}

func TestSetLevel(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}
	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := capture(t, int64(LevelInfo))

	Debug("hidden %s", "value")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestLevelsEmitted(t *testing.T) {
	buf := capture(t, int64(LevelDebug))

	Debug("d=%d", 1)
	Info("i=%d", 2)
	Warn("w=%d", 3)
	Error("e=%d", 4)

	want := "[DEBUG] d=1\n[INFO] i=2\n[WARN] w=3\n[ERROR] e=4\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := capture(t, int64(LevelError)+4)

	Warn("suppressed")
	Error("boom")
	if got := buf.String(); got != "[ERROR] boom\n" {
		t.Errorf("got %q", got)
	}
}

func TestTagsUncoloredAfterSetOutput(t *testing.T) {
	buf := capture(t, int64(LevelInfo))

	Info("x")
	if strings.Contains(buf.String(), "\x1b") {
		t.Errorf("redirected output should not contain escapes: %q", buf.String())
	}
}
