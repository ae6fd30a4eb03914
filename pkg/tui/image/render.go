// ABOUTME: Row-major pixel renderer emitting colorized glyphs through lipgloss
// ABOUTME: Transparent pixels become a bare space; every row ends with a newline

package image

import (
	"bufio"
	"fmt"
	goimage "image"
	"image/color"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer writes images as terminal text to an output stream.
type Renderer struct {
	out  *bufio.Writer
	base lipgloss.Style
}

// NewRenderer returns a Renderer writing to w with styles emitted for profile.
// termenv.Ascii produces plain text with no escape sequences. Glyphs are
// written as is, so a tab in the ramp stays a single tab.
func NewRenderer(w io.Writer, profile termenv.Profile) *Renderer {
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(profile)
	return &Renderer{
		out:  bufio.NewWriter(w),
		base: lr.NewStyle().Bold(true).TabWidth(lipgloss.NoTabConversion),
	}
}

// Render walks img row by row and writes one cell per pixel.
func (r *Renderer) Render(img goimage.Image, mode Mode) error {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if px.A == 0 {
				r.out.WriteByte(' ')
				continue
			}
			r.out.WriteString(r.cell(mode, px))
		}
		r.out.WriteByte('\n')
	}
	if err := r.out.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// cell returns the output for one opaque pixel.
func (r *Renderer) cell(mode Mode, px color.NRGBA) string {
	var g rune
	switch mode.Kind {
	case ModePixelated:
		g = FullBlock
	default:
		g = mode.Ramp.GlyphFor(px)
		if mode.dropped(g) {
			return " "
		}
	}
	return r.base.Foreground(hexColor(px)).Render(string(g))
}

// hexColor formats the RGB channels of px as a lipgloss color.
func hexColor(px color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", px.R, px.G, px.B))
}
