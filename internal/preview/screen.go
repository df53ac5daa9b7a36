// Package preview renders canvases as box-drawing text for terminals.
package preview

import (
	"image"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
)

// Characters per cell on each axis. Terminal cells are about twice as tall
// as they are wide.
const (
	charsPerCellX = 4
	charsPerCellY = 2
)

// heavyRatio is the stroke width, as a ratio of the cell size, from which
// lines use heavy glyphs.
const heavyRatio = 0.03

var (
	lightGlyphs = [16]rune{' ', '╵', '╷', '│', '╴', '┘', '┐', '┤', '╶', '└', '┌', '├', '─', '┴', '┬', '┼'}
	heavyGlyphs = [16]rune{' ', '╹', '╻', '┃', '╸', '┛', '┓', '┫', '╺', '┗', '┏', '┣', '━', '┻', '┳', '╋'}
)

// Screen is a character buffer implementing paint.Backing. Lines become
// box-drawing glyphs that join where they cross; text is written over them.
type Screen struct {
	width  int
	height int
	sx, sy float64 // Pixels per character
	heavy  float64 // Minimum heavy stroke width in pixels
	arms   [][]geometry.Direction
	bold   [][]bool
	text   [][]rune
}

var _ paint.Backing = (*Screen)(nil)

// NewScreen creates a screen covering a pixel area of the given size drawn
// with cells of cellSize pixels.
func NewScreen(pixelWidth, pixelHeight int, cellSize float64) *Screen {
	s := &Screen{
		sx:    cellSize / charsPerCellX,
		sy:    cellSize / charsPerCellY,
		heavy: cellSize * heavyRatio,
	}
	s.width = int(math.Round(float64(pixelWidth)/s.sx)) + 1
	s.height = int(math.Round(float64(pixelHeight)/s.sy)) + 1
	s.allocate()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.arms = make([][]geometry.Direction, s.height)
	s.bold = make([][]bool, s.height)
	s.text = make([][]rune, s.height)
	for y := range s.height {
		s.arms[y] = make([]geometry.Direction, s.width)
		s.bold[y] = make([]bool, s.width)
		s.text[y] = make([]rune, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

func (s *Screen) col(x float64) int { return int(math.Round(x / s.sx)) }
func (s *Screen) row(y float64) int { return int(math.Round(y / s.sy)) }

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// addArm marks one arm of the glyph at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) addArm(x, y int, d geometry.Direction, heavy bool) {
	if !s.inBounds(x, y) {
		return
	}
	s.arms[y][x] |= d
	s.bold[y][x] = s.bold[y][x] || heavy
}

// DrawLine draws axis-aligned lines. Diagonal lines are skipped.
func (s *Screen) DrawLine(from, to geometry.Point, p paint.Paint) {
	heavy := p.Width >= s.heavy
	x0, y0, x1, y1 := s.col(from.X), s.row(from.Y), s.col(to.X), s.row(to.Y)
	switch {
	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			if x > x0 {
				s.addArm(x, y0, geometry.Left, heavy)
			}
			if x < x1 {
				s.addArm(x, y0, geometry.Right, heavy)
			}
		}
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			if y > y0 {
				s.addArm(x0, y, geometry.Up, heavy)
			}
			if y < y1 {
				s.addArm(x0, y, geometry.Down, heavy)
			}
		}
	}
}

// DrawPath draws each edge of the path.
func (s *Screen) DrawPath(path paint.Path, p paint.Paint) {
	if p.Style == paint.StyleFill {
		return
	}
	pts := path.Points
	for i := 1; i < len(pts); i++ {
		s.DrawLine(pts[i-1], pts[i], p)
	}
	if path.Closed && len(pts) > 2 {
		s.DrawLine(pts[len(pts)-1], pts[0], p)
	}
}

// DrawRect draws the outline of stroked rectangles. Fills are not shown.
func (s *Screen) DrawRect(r geometry.Rect, p paint.Paint) {
	if p.Style == paint.StyleFill {
		return
	}
	tl, tr := geometry.Pt(r.X, r.Y), geometry.Pt(r.Right(), r.Y)
	bl, br := geometry.Pt(r.X, r.Bottom()), geometry.Pt(r.Right(), r.Bottom())
	s.DrawLine(tl, tr, p)
	s.DrawLine(bl, br, p)
	s.DrawLine(tl, bl, p)
	s.DrawLine(tr, br, p)
}

// DrawEllipse marks the center of the ellipse.
func (s *Screen) DrawEllipse(r geometry.Rect, p paint.Paint) {
	c := r.Center()
	s.set(s.col(c.X), s.row(c.Y), '•')
}

// DrawText writes a string anchored at a point.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(str string, at geometry.Point, align geometry.Alignment, font paint.Font, p paint.Paint) {
	ax, _ := align.Anchor()
	n := utf8.RuneCountInString(str)
	x := s.col(at.X) - int(math.Round(ax*float64(n-1)))
	y := s.row(at.Y)
	for i, r := range []rune(str) {
		s.set(x+i, y, r)
	}
}

// Clear empties the screen.
func (s *Screen) Clear(paint.Color) {
	s.allocate()
}

func (s *Screen) set(x, y int, r rune) {
	if s.inBounds(x, y) {
		s.text[y][x] = r
	}
}

// Get returns the rune shown at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if !s.inBounds(x, y) {
		return ' '
	}
	if r := s.text[y][x]; r != 0 {
		return r
	}
	if s.bold[y][x] {
		return heavyGlyphs[s.arms[y][x]]
	}
	return lightGlyphs[s.arms[y][x]]
}

// String converts the screen buffer to a printable string with trailing
// spaces trimmed from each row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string with trailing spaces trimmed.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	rs := make([]rune, s.width)
	for x := range s.width {
		rs[x] = s.Get(x, y)
	}
	return strings.TrimRight(string(rs), " ")
}

// Image returns a blank image; a screen holds no pixels.
func (s *Screen) Image() image.Image {
	return image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
}

// Err always returns nil.
func (s *Screen) Err() error {
	return nil
}

// Close releases nothing.
func (s *Screen) Close() error {
	return nil
}
