// ABOUTME: CharacterRamp maps 8-bit luminance to a glyph of an ordered string
// ABOUTME: Index = floor(luma * (len-1)/255); luma uses imaging's grayscale weights

package image

import (
	"image/color"

	"github.com/mauromedda/im2as-go/pkg/tui/width"
)

// Ramp is an ordered set of glyphs, darkest first in the default ramp.
// It is immutable after construction.
type Ramp struct {
	glyphs []rune
	// lumaRatio scales a luma value in [0,255] to an index in [0,len-1].
	lumaRatio float64
}

// NewRamp splits s into code points, preserving order.
// An empty s is rejected with a ConfigError.
func NewRamp(s string) (*Ramp, error) {
	glyphs := []rune(s)
	if len(glyphs) == 0 {
		return nil, &ConfigError{Field: "ramp", Reason: "must contain at least one character"}
	}
	return &Ramp{
		glyphs:    glyphs,
		lumaRatio: float64(len(glyphs)-1) / 255.0,
	}, nil
}

// Len returns the number of glyphs.
func (r *Ramp) Len() int { return len(r.glyphs) }

// String returns the ramp as a string.
func (r *Ramp) String() string { return string(r.glyphs) }

// Glyph returns the glyph for a luma value.
func (r *Ramp) Glyph(luma uint8) rune {
	i := int(float64(luma) * r.lumaRatio)
	if i >= len(r.glyphs) {
		i = len(r.glyphs) - 1
	}
	return r.glyphs[i]
}

// GlyphFor returns the glyph for the luminance of c.
func (r *Ramp) GlyphFor(c color.NRGBA) rune {
	return r.Glyph(Luma(c))
}

// WideGlyphs returns the glyphs that do not occupy exactly one terminal cell.
// Each is reported once, in ramp order.
func (r *Ramp) WideGlyphs() []rune {
	var out []rune
	seen := make(map[rune]bool)
	for _, g := range r.glyphs {
		if seen[g] {
			continue
		}
		seen[g] = true
		if width.RuneCells(g) != 1 {
			out = append(out, g)
		}
	}
	return out
}

// Luma converts c to a single brightness value using the same weights as
// imaging.Grayscale. Alpha is ignored.
func Luma(c color.NRGBA) uint8 {
	f := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return uint8(f + 0.5)
}
