// ABOUTME: Terminal cell widths of runes and strings, grapheme-aware
// ABOUTME: Used to flag ramp glyphs that would break the one-cell-per-pixel grid

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneCells returns the number of terminal cells r occupies.
// Control and combining runes report 0; East Asian wide runes report 2.
func RuneCells(r rune) int {
	return runewidth.RuneWidth(r)
}

// Cells returns the display width of s after stripping ANSI sequences,
// measuring each grapheme cluster by its first rune.
func Cells(s string) int {
	s = StripANSI(s)
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		w += runewidth.RuneWidth(r)
	}
	return w
}
