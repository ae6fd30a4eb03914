// ABOUTME: Error taxonomy for the image-to-text pipeline
// ABOUTME: ConfigError, IOError, DecodeError; each matches a sentinel via errors.Is

package image

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching against the typed errors below.
var (
	ErrConfig = errors.New("configuration error")
	ErrIO     = errors.New("io error")
	ErrDecode = errors.New("decode error")
)

// ConfigError reports an invalid render parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// IOError reports a source path that cannot be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// DecodeError reports an unsupported, corrupt, or empty image.
type DecodeError struct {
	Path   string
	Format string // empty when the format could not be detected
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("decoding %s (%s): %v", e.Path, e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
