// ABOUTME: Color emission policy (always, auto, never) resolved to a termenv profile
// ABOUTME: auto emits true color only when the output is a terminal

package image

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/mauromedda/im2as-go/pkg/tui/terminal"
)

// ColorPolicy controls whether styled output is emitted.
type ColorPolicy int

const (
	ColorAlways ColorPolicy = iota // always emit 24-bit color
	ColorAuto                      // 24-bit color on a terminal, plain text otherwise
	ColorNever                     // plain text
)

// ColorNames lists the accepted policy names in display order.
var ColorNames = []string{"always", "auto", "never"}

func (p ColorPolicy) String() string {
	switch p {
	case ColorAlways:
		return "always"
	case ColorAuto:
		return "auto"
	case ColorNever:
		return "never"
	default:
		return fmt.Sprintf("ColorPolicy(%d)", int(p))
	}
}

// ParseColorPolicy resolves a case-insensitive policy name.
func ParseColorPolicy(name string) (ColorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "always":
		return ColorAlways, nil
	case "auto":
		return ColorAuto, nil
	case "never":
		return ColorNever, nil
	}
	return 0, &ConfigError{
		Field:  "color",
		Reason: fmt.Sprintf("%q is not one of %s", name, strings.Join(ColorNames, ", ")),
	}
}

// Set implements flag.Value.
func (p *ColorPolicy) Set(s string) error {
	v, err := ParseColorPolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *ColorPolicy) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return p.Set(s)
}

// Profile returns the termenv profile for output written to the file
// descriptor fd.
func (p ColorPolicy) Profile(fd uintptr) termenv.Profile {
	switch p {
	case ColorNever:
		return termenv.Ascii
	case ColorAuto:
		if terminal.IsTerminal(fd) {
			return termenv.TrueColor
		}
		return termenv.Ascii
	default:
		return termenv.TrueColor
	}
}
