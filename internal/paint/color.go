// Package paint defines the drawing contract consumed by templates and
// items, the color and scale values they carry, and the surfaces that
// implement the contract.
package paint

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 8-bit RGBA value (not premultiplied).
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA converts the color to the standard library representation.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// IsTransparent reports whether the color has zero alpha.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// String returns the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Well-known colors.
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 128, 0)
	Blue        = RGB(0, 0, 255)
	Gray        = RGB(128, 128, 128)
	LightGray   = RGB(211, 211, 211)
	DimGray     = RGB(105, 105, 105)
	Orange      = RGB(255, 165, 0)
	Yellow      = RGB(255, 255, 0)
	Purple      = RGB(128, 0, 128)
	SkyBlue     = RGB(135, 206, 235)
)

// NamedColors maps lower-case color names to their values.
var NamedColors = map[string]Color{
	"transparent": Transparent,
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"gray":        Gray,
	"grey":        Gray,
	"lightgray":   LightGray,
	"dimgray":     DimGray,
	"orange":      Orange,
	"yellow":      Yellow,
	"purple":      Purple,
	"skyblue":     SkyBlue,
}

// ParseColor parses a color name from NamedColors or a hex string
// (#rgb, #rrggbb or #rrggbbaa).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := NamedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("paint: unknown color %q", s)
	}

	alpha := uint8(255)
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("paint: bad alpha in %q: %w", s, err)
		}
		alpha = a
		s = s[:7]
	}

	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("paint: bad color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// BlockPalette is the fixed palette used to tint jigsaw blocks. Colors are
// evenly spaced hues at low saturation so digits stay readable.
var BlockPalette = buildPalette(9)

func buildPalette(n int) []Color {
	palette := make([]Color, n)
	for i := range palette {
		c := colorful.Hsl(float64(i)*360/float64(n), 0.55, 0.85)
		r, g, b := c.Clamped().RGB255()
		palette[i] = RGB(r, g, b)
	}
	return palette
}

// PaletteColor returns the palette entry for index i, wrapping around.
func PaletteColor(i int) Color {
	n := len(BlockPalette)
	return BlockPalette[((i%n)+n)%n]
}
