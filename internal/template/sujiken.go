package template

import (
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
)

// Sujiken is the lower-left triangle of an n×n grid, cut along the main
// diagonal. Row r holds the cells (r, 0) … (r, r).
//
// The interior step reads the row and column tables built by the border
// step of the same DrawLines call, so the two steps cannot be reordered.
type Sujiken struct {
	base
	blockSize int
}

var _ Template = (*Sujiken)(nil)

// NewSujiken creates a sujiken template. A zero block size is derived as the
// integer square root of the side length.
func NewSujiken(m geometry.Mapper, blockSize int) (*Sujiken, error) {
	if m.Size.Rows != m.Size.Columns {
		return nil, configErrorf(CodeMismatchedSize, "sujiken needs a square grid, got %dx%d", m.Size.Rows, m.Size.Columns)
	}
	if blockSize == 0 {
		b, ok := isqrt(m.Size.Rows)
		if !ok {
			return nil, configErrorf(CodeNotSquare, "side %d is not a perfect square; give the block size explicitly", m.Size.Rows)
		}
		blockSize = b
	}
	t := &Sujiken{base: base{mapper: m}, blockSize: blockSize}
	if err := t.Guard(); err != nil {
		return nil, err
	}
	return t, nil
}

// Kind returns KindSujiken.
func (t *Sujiken) Kind() Kind {
	return KindSujiken
}

// Guard checks the grid is square and the block size divides it.
func (t *Sujiken) Guard() error {
	if err := t.guardMapper(); err != nil {
		return err
	}
	size := t.mapper.Size
	if size.Rows != size.Columns {
		return configErrorf(CodeMismatchedSize, "sujiken needs a square grid, got %dx%d", size.Rows, size.Columns)
	}
	if t.blockSize <= 0 || size.Rows%t.blockSize != 0 {
		return configErrorf(CodeBadBlockSize, "block size %d does not divide side %d", t.blockSize, size.Rows)
	}
	return nil
}

// Contains reports whether a relative cell lies inside the triangle.
func (t *Sujiken) Contains(relative int) bool {
	n := t.mapper.Size.Columns
	return t.mapper.InRelativeBounds(relative) && relative%n <= relative/n
}

// cellAt returns the absolute index of logical cell (row, col).
func (t *Sujiken) cellAt(row, col int) int {
	return t.mapper.ToAbsolute(row*t.mapper.Size.Columns + col)
}

// drawBorder traces the staircase along the diagonal, then the bottom and
// left edges, recording the diagonal cell of each row and column on the way.
func (t *Sujiken) drawBorder(s paint.Surface, o LineOptions) borderState {
	n := t.mapper.Size.Rows
	st := borderState{rowEnds: make([]int, n), colStarts: make([]int, n)}

	points := []geometry.Point{t.mapper.Point(t.cellAt(0, 0), geometry.AlignTopLeft)}
	for i := 0; i < n; i++ {
		diag := t.cellAt(i, i)
		st.rowEnds[i] = diag
		st.colStarts[i] = diag
		points = append(points,
			t.mapper.Point(diag, geometry.AlignTopRight),
			t.mapper.Point(diag, geometry.AlignBottomRight),
		)
	}
	points = append(points, t.mapper.Point(t.cellAt(n-1, 0), geometry.AlignBottomLeft))

	s.DrawPath(paint.Polygon(points...), o.Border)
	return st
}

func (t *Sujiken) drawInterior(s paint.Surface, o LineOptions, st borderState) {
	n := t.mapper.Size.Rows
	for row := 1; row < n; row++ {
		p := o.Grid
		if row%t.blockSize == 0 {
			p = o.Block
		}
		from := t.mapper.Point(t.cellAt(row, 0), geometry.AlignTopLeft)
		to := t.mapper.Point(st.rowEnds[row-1], geometry.AlignBottomRight)
		s.DrawLine(from, to, p)
	}
	for col := 1; col < n; col++ {
		p := o.Grid
		if col%t.blockSize == 0 {
			p = o.Block
		}
		from := t.mapper.Point(st.colStarts[col], geometry.AlignTopLeft)
		to := t.mapper.Point(t.cellAt(n-1, col), geometry.AlignBottomLeft)
		s.DrawLine(from, to, p)
	}
}
