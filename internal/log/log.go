// ABOUTME: Leveled stderr logger keyed on slog levels; stdout stays reserved for image output
// ABOUTME: Level tags are colored when stderr is a terminal

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/mauromedda/im2as-go/pkg/tui/terminal"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var level atomic.Int64

var (
	mu      sync.Mutex
	out     io.Writer
	colored bool
)

var tags = map[slog.Level][2]string{
	LevelDebug: {"[DEBUG]", "\x1b[37m[DEBUG]\x1b[0m"},
	LevelInfo:  {"[INFO]", "\x1b[34m[INFO]\x1b[0m"},
	LevelWarn:  {"[WARN]", "\x1b[33m[WARN]\x1b[0m"},
	LevelError: {"[ERROR]", "\x1b[31m[ERROR]\x1b[0m"},
}

func init() {
	level.Store(int64(LevelInfo))
	out = os.Stderr
	if terminal.IsTerminal(os.Stderr.Fd()) {
		out = terminal.Writer(os.Stderr)
		colored = true
	}
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level. Callers use it to skip building
// debug-only diagnostics.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output to w with uncolored tags and returns a
// function restoring the previous destination.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	prevOut, prevColored := out, colored
	out, colored = w, false
	mu.Unlock()
	return func() {
		mu.Lock()
		out, colored = prevOut, prevColored
		mu.Unlock()
	}
}

func emit(l slog.Level, format string, args []any) {
	if slog.Level(level.Load()) > l {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	tag := tags[l][0]
	if colored {
		tag = tags[l][1]
	}
	fmt.Fprintf(out, tag+" "+format+"\n", args...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) { emit(LevelDebug, format, args) }

// Info logs an info message if the level allows it.
func Info(format string, args ...any) { emit(LevelInfo, format, args) }

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) { emit(LevelWarn, format, args) }

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	tag := tags[LevelError][0]
	if colored {
		tag = tags[LevelError][1]
	}
	fmt.Fprintf(out, tag+" "+format+"\n", args...)
}
