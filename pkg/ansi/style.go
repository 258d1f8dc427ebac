// Package ansi provides the concrete terminal style attribute used with
// styledtext, plus rendering of styled text to ANSI escape sequences.
package ansi

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/skeinchat/skein/pkg/styledtext"
)

// Effect is a bitmask of text effects.
type Effect uint8

const (
	Bold Effect = 1 << iota
	Dim
	Italic
	Underline
)

// Has reports whether e includes the given effect.
func (e Effect) Has(effect Effect) bool {
	return e&effect != 0
}

// Color is a 24-bit terminal color. The zero value is "unset", which leaves
// the terminal default in place.
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB creates a set color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// ParseColor parses a hex color string like "#33aaff".
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("ansi: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// IsSet reports whether the color was explicitly chosen.
func (c Color) IsSet() bool {
	return c.set
}

// Hex returns the "#rrggbb" form of the color, or "" when unset.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// Style is the terminal style attribute attached to styled-text spans.
// The zero value is the plain, unstyled attribute.
type Style struct {
	FG      Color
	BG      Color
	Effects Effect
}

// IsPlain reports whether the style changes nothing.
func (s Style) IsPlain() bool {
	return !s.FG.IsSet() && !s.BG.IsSet() && s.Effects == 0
}

// Combine merges s with another attribute: effects accumulate, and the other
// style's colors win where set. Attributes that are not Styles replace s
// outright.
func (s Style) Combine(other styledtext.Attr) styledtext.Attr {
	o, ok := other.(Style)
	if !ok {
		return other
	}
	merged := s
	merged.Effects |= o.Effects
	if o.FG.IsSet() {
		merged.FG = o.FG
	}
	if o.BG.IsSet() {
		merged.BG = o.BG
	}
	return merged
}

// WithFG returns the style with the foreground color set.
func (s Style) WithFG(c Color) Style {
	s.FG = c
	return s
}

// WithBG returns the style with the background color set.
func (s Style) WithBG(c Color) Style {
	s.BG = c
	return s
}

// WithEffects returns the style with the given effects added.
func (s Style) WithEffects(e Effect) Style {
	s.Effects |= e
	return s
}
