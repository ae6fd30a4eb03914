// ABOUTME: Terminal probing for output streams: TTY detection and column count
// ABOUTME: Wraps go-isatty and golang.org/x/term so callers only deal with *os.File

package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// IsTerminal reports whether fd refers to a terminal, including Cygwin and
// MSYS pseudo terminals on Windows.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Size returns the current dimensions of the terminal behind f.
func Size(f *os.File) (width, height int, err error) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Writer returns a writer for f that translates ANSI sequences on legacy
// Windows consoles. Elsewhere it returns f unchanged.
func Writer(f *os.File) io.Writer {
	return colorable.NewColorable(f)
}
