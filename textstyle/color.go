package textstyle

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors are the color tokens accepted besides hex notation.
var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
	"orange": "#ffa500",
	"purple": "#800080",
	"pink":   "#ffc0cb",
	"cyan":   "#00ffff",
	"gray":   "#808080",
	"grey":   "#808080",
}

// Color wraps a non-alpha-premultiplied color.NRGBA, the color type used by
// Gio.
type Color struct {
	val color.NRGBA
}

// ParseColor parses "#RRGGBB", "#RGB" or one of the named color tokens.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		s = hex
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return Color{val: color.NRGBA{R: r, G: g, B: b, A: 0xff}}, nil
}

// MustParseColor is like ParseColor but panics on invalid input.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Color) NRGBA() color.NRGBA {
	return c.val
}

// IsSet reports whether the color holds a value.
func (c *Color) IsSet() bool {
	return c.val != (color.NRGBA{})
}

// Hex returns the color in #rrggbb notation.
func (c *Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.val.R, c.val.G, c.val.B)
}

// ColorPalette interns colors. Color is added and referenced by its ID(index)
// in the palette.
type ColorPalette struct {
	colors []*Color
}

// GetColor retrieves a Color by its ID. ID can be acquired when adding the color to
// the palette.
func (p *ColorPalette) GetColor(id int) Color {
	if id < 0 || id >= len(p.colors) {
		return Color{}
	}

	return *p.colors[id]
}

// AddColor adds a color to the palette and return its id(index).
func (p *ColorPalette) AddColor(cl Color) int {
	if idx := slices.IndexFunc(p.colors, func(c *Color) bool { return c.val == cl.val }); idx >= 0 {
		return idx
	}

	p.colors = append(p.colors, &Color{val: cl.val})
	return len(p.colors) - 1
}

// Len returns the number of interned colors.
func (p *ColorPalette) Len() int {
	return len(p.colors)
}

// Clear clear all added colors.
func (p *ColorPalette) Clear() {
	p.colors = p.colors[:0]
}
