package paint

import (
	"image"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
)

// Style selects whether a shape is stroked or filled.
type Style uint8

const (
	StyleStroke Style = iota
	StyleFill
)

// Paint carries the style fields for one draw call.
type Paint struct {
	Color Color
	Style Style
	Width float64   // Stroke width in pixels
	Dash  []float64 // Optional dash pattern; nil for solid
}

// Stroke returns a solid stroke paint.
func Stroke(c Color, width float64) Paint {
	return Paint{Color: c, Style: StyleStroke, Width: width}
}

// Fill returns a fill paint.
func Fill(c Color) Paint {
	return Paint{Color: c, Style: StyleFill}
}

// Dashed returns a copy of p with the dash pattern set.
func (p Paint) Dashed(lengths ...float64) Paint {
	p.Dash = append([]float64(nil), lengths...)
	return p
}

// Path is a polyline in pixel space.
type Path struct {
	Points []geometry.Point
	Closed bool
}

// Polygon builds a closed path.
func Polygon(points ...geometry.Point) Path {
	return Path{Points: points, Closed: true}
}

// FontFamily names one of the built-in font faces.
type FontFamily string

const (
	FontRegular FontFamily = "regular"
	FontBold    FontFamily = "bold"
	FontItalic  FontFamily = "italic"
	FontMono    FontFamily = "mono"
)

// Font selects a family and a pixel size.
type Font struct {
	Family FontFamily
	Size   float64
}

// Surface is the minimal drawing contract. Implementations apply the paint
// fields; callers never touch the underlying rasterizer.
type Surface interface {
	DrawLine(from, to geometry.Point, p Paint)
	DrawPath(path Path, p Paint)
	DrawRect(r geometry.Rect, p Paint)
	DrawEllipse(r geometry.Rect, p Paint)
	DrawText(s string, at geometry.Point, align geometry.Alignment, font Font, p Paint)
	Clear(c Color)
}

// Backing is a Surface that owns pixels. Err reports the first error
// encountered by any draw call.
type Backing interface {
	Surface
	Image() image.Image
	Err() error
	Close() error
}
