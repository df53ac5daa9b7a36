package template

import (
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
)

// isqrt returns the integer square root of n and whether n is a perfect square.
func isqrt(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r, r*r == n
}

// drawRowLine draws the horizontal line on top of logical row `row`,
// spanning the full width. row == Rows draws the bottom edge.
func drawRowLine(s paint.Surface, m geometry.Mapper, row int, p paint.Paint) {
	rect := m.LogicalRect()
	y := rect.Y + float64(row)*m.CellSize
	s.DrawLine(geometry.Pt(rect.X, y), geometry.Pt(rect.Right(), y), p)
}

// drawColumnLine draws the vertical line left of logical column `col`,
// spanning the full height.
func drawColumnLine(s paint.Surface, m geometry.Mapper, col int, p paint.Paint) {
	rect := m.LogicalRect()
	x := rect.X + float64(col)*m.CellSize
	s.DrawLine(geometry.Pt(x, rect.Y), geometry.Pt(x, rect.Bottom()), p)
}

// drawCellGrid draws every interior row and column line with p.
func drawCellGrid(s paint.Surface, m geometry.Mapper, p paint.Paint) {
	for row := 1; row < m.Size.Rows; row++ {
		drawRowLine(s, m, row, p)
	}
	for col := 1; col < m.Size.Columns; col++ {
		drawColumnLine(s, m, col, p)
	}
}

// drawSegments draws every edge named by the segments.
func drawSegments(s paint.Surface, m geometry.Mapper, segs []geometry.LineSegment, p paint.Paint) {
	for _, seg := range segs {
		for _, dir := range geometry.Directions {
			if seg.Directions&dir == 0 {
				continue
			}
			from, to := m.EdgePoints(seg.Cell, dir)
			s.DrawLine(from, to, p)
		}
	}
}
