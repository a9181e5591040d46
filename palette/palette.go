// Package palette defines the named colors used by the game.
// Values follow the CSS named-color table so both hosts render the same hues.
package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a named color with its sRGB value
type Color struct {
	Name  string
	Value colorful.Color
}

// RGB255 returns 8-bit channels
func (c Color) RGB255() (r, g, b uint8) {
	return c.Value.RGB255()
}

// Highlight blends toward white in Lab space, amount in [0,1]
func (c Color) Highlight(amount float64) Color {
	return Color{
		Name:  c.Name,
		Value: c.Value.BlendLab(white, amount).Clamped(),
	}
}

func (c Color) String() string { return c.Name }

var white = colorful.Color{R: 1, G: 1, B: 1}

func named(name, hex string) Color {
	return Color{Name: name, Value: mustHex(hex)}
}

// mustHex parses a fixed table entry; a bad literal is a programming error
func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic("palette: " + err.Error())
	}
	return c
}

// Squares is the fixed palette draggable squares are drawn from
var Squares = []Color{
	named("red", "#ff0000"),
	named("blue", "#0000ff"),
	named("green", "#008000"),
	named("purple", "#800080"),
	named("orange", "#ffa500"),
}

// Fixed scene colors
var (
	Target     = named("gray", "#808080")
	Background = named("whitesmoke", "#f5f5f5")
	Text       = named("black", "#000000")
)

// Lookup finds a square color by name
func Lookup(name string) (Color, bool) {
	for _, c := range Squares {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}
