// ABOUTME: Rendering strategy as a closed tagged variant: ramp (with drop set) or pixelated
// ABOUTME: The renderer dispatches on Kind with a single switch per cell

package image

import "strings"

// FullBlock is the glyph emitted for every opaque pixel in pixelated mode.
const FullBlock = '█'

// ModeKind selects how an opaque pixel becomes a terminal cell.
type ModeKind int

const (
	ModeRamp      ModeKind = iota // glyph chosen from a CharacterRamp by luminance
	ModePixelated                 // FullBlock colored with the pixel
)

func (k ModeKind) String() string {
	switch k {
	case ModeRamp:
		return "ramp"
	case ModePixelated:
		return "pixelated"
	default:
		return "unknown"
	}
}

// Mode carries the state a render needs for its kind.
// Ramp and Drop are only read in ModeRamp.
type Mode struct {
	Kind ModeKind
	Ramp *Ramp
	Drop string
}

// RampMode renders glyphs from r. Glyphs contained in drop become blank cells.
func RampMode(r *Ramp, drop string) Mode {
	return Mode{Kind: ModeRamp, Ramp: r, Drop: drop}
}

// PixelatedMode renders every opaque pixel as a colored FullBlock.
func PixelatedMode() Mode {
	return Mode{Kind: ModePixelated}
}

// dropped reports whether g is suppressed in this mode.
func (m Mode) dropped(g rune) bool {
	return m.Drop != "" && strings.ContainsRune(m.Drop, g)
}
