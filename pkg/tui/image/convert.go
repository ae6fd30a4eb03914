// ABOUTME: End-to-end conversion: validate options, load, transform, render
// ABOUTME: Configuration is checked before any I/O; no output is written on failure

package image

import (
	"fmt"
	"io"
	"math"

	"github.com/muesli/termenv"
)

// Options are the render parameters for one conversion.
type Options struct {
	Width      int     // output width in characters
	Contrast   float64 // percent; 0 leaves pixels unchanged
	Filter     Filter
	Pixelated  bool
	Ramp       string // dark to light; ignored when Pixelated
	Drop       string // glyphs rendered as blank cells; ramp mode only
	AutoOrient bool
}

// Validate reports the first invalid field as a ConfigError.
func (o Options) Validate() error {
	if o.Width <= 0 {
		return &ConfigError{Field: "width", Reason: fmt.Sprintf("must be positive, got %d", o.Width)}
	}
	if math.IsNaN(o.Contrast) || math.IsInf(o.Contrast, 0) {
		return &ConfigError{Field: "contrast", Reason: "must be a finite number"}
	}
	if !o.Filter.valid() {
		return &ConfigError{Field: "filter", Reason: fmt.Sprintf("unknown filter %s", o.Filter)}
	}
	if !o.Pixelated && o.Ramp == "" {
		return &ConfigError{Field: "ramp", Reason: "must contain at least one character"}
	}
	return nil
}

// Mode builds the rendering mode described by o.
func (o Options) Mode() (Mode, error) {
	if o.Pixelated {
		return PixelatedMode(), nil
	}
	r, err := NewRamp(o.Ramp)
	if err != nil {
		return Mode{}, err
	}
	return RampMode(r, o.Drop), nil
}

// Convert renders the image at path to w.
func Convert(w io.Writer, profile termenv.Profile, path string, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	mode, err := opts.Mode()
	if err != nil {
		return err
	}

	img, err := Prepare(path, opts)
	if err != nil {
		return err
	}

	return NewRenderer(w, profile).Render(img, mode)
}
