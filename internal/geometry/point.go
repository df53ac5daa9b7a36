package geometry

import "fmt"

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Alignment selects a sampling point inside a cell.
type Alignment uint8

const (
	AlignCenter Alignment = iota
	AlignTopLeft
	AlignTopRight
	AlignBottomLeft
	AlignBottomRight
)

// factors returns the fraction of the cell size to add on each axis.
// Panics for an undefined alignment.
func (a Alignment) factors() (fx, fy float64) {
	switch a {
	case AlignCenter:
		return 0.5, 0.5
	case AlignTopLeft:
		return 0, 0
	case AlignTopRight:
		return 1, 0
	case AlignBottomLeft:
		return 0, 1
	case AlignBottomRight:
		return 1, 1
	default:
		panic(fmt.Sprintf("geometry: undefined alignment %d", a))
	}
}

// Anchor returns the text anchor for the alignment in [0,1] on each axis.
func (a Alignment) Anchor() (ax, ay float64) {
	return a.factors()
}

// String returns the string representation of an alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignTopLeft:
		return "top-left"
	case AlignTopRight:
		return "top-right"
	case AlignBottomLeft:
		return "bottom-left"
	case AlignBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// ParseAlignment parses the names produced by Alignment.String.
func ParseAlignment(s string) (Alignment, bool) {
	for a := AlignCenter; a <= AlignBottomRight; a++ {
		if a.String() == s {
			return a, true
		}
	}
	return AlignCenter, false
}
