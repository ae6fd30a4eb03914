// ABOUTME: Render settings: built-in defaults, optional YAML file, CLI overrides
// ABOUTME: Layers merge left to right; Resolve fills defaults and validates eagerly

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/im2as-go/pkg/tui/image"
)

// Defaults. In DefaultRamp '$' is used for black pixels and ' ' for white.
const (
	DefaultRamp     = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/|()1{}[]?-_+~<>i!lI;:,\"^`'. "
	DefaultWidth    = 80
	DefaultContrast = 50.0
	DefaultFilter   = image.FilterLinear
	DefaultColor    = image.ColorAlways
)

// Settings is one configuration layer. Nil fields are unset and do not
// override lower layers.
type Settings struct {
	Ramp       *string            `yaml:"ramp,omitempty"`
	Width      *int               `yaml:"width,omitempty"`
	Contrast   *float64           `yaml:"contrast,omitempty"`
	Filter     *image.Filter      `yaml:"filter,omitempty"`
	Pixelated  *bool              `yaml:"pixelated,omitempty"`
	Drop       *string            `yaml:"drop,omitempty"`
	Color      *image.ColorPolicy `yaml:"color,omitempty"`
	AutoOrient *bool              `yaml:"auto_orient,omitempty"`
	Verbose    *bool              `yaml:"verbose,omitempty"`
}

// Resolved is the fully defaulted configuration for one invocation.
type Resolved struct {
	Options image.Options
	Color   image.ColorPolicy
	Verbose bool
}

// LoadFile reads a Settings layer from a YAML file. An empty path yields an
// empty layer. Unknown keys are rejected.
func LoadFile(path string) (*Settings, error) {
	if path == "" {
		return &Settings{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	defer f.Close()

	var s Settings
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// Merge overlays layers in order; later non-nil fields win.
func Merge(layers ...*Settings) *Settings {
	result := &Settings{}
	for _, l := range layers {
		if l == nil {
			continue
		}
		if l.Ramp != nil {
			result.Ramp = l.Ramp
		}
		if l.Width != nil {
			result.Width = l.Width
		}
		if l.Contrast != nil {
			result.Contrast = l.Contrast
		}
		if l.Filter != nil {
			result.Filter = l.Filter
		}
		if l.Pixelated != nil {
			result.Pixelated = l.Pixelated
		}
		if l.Drop != nil {
			result.Drop = l.Drop
		}
		if l.Color != nil {
			result.Color = l.Color
		}
		if l.AutoOrient != nil {
			result.AutoOrient = l.AutoOrient
		}
		if l.Verbose != nil {
			result.Verbose = l.Verbose
		}
	}
	return result
}

// Resolve fills unset fields with defaults and validates the result.
func (s *Settings) Resolve() (Resolved, error) {
	r := Resolved{
		Options: image.Options{
			Width:      valueOr(s.Width, DefaultWidth),
			Contrast:   valueOr(s.Contrast, DefaultContrast),
			Filter:     valueOr(s.Filter, DefaultFilter),
			Pixelated:  valueOr(s.Pixelated, false),
			Ramp:       valueOr(s.Ramp, DefaultRamp),
			Drop:       valueOr(s.Drop, ""),
			AutoOrient: valueOr(s.AutoOrient, false),
		},
		Color:   valueOr(s.Color, DefaultColor),
		Verbose: valueOr(s.Verbose, false),
	}
	if err := r.Options.Validate(); err != nil {
		return Resolved{}, err
	}
	return r, nil
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// Ptr returns a pointer to v, for building Settings literals.
func Ptr[T any](v T) *T { return &v }
