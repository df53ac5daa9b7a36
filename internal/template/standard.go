package template

import (
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
)

// Standard is a rectangular grid with uniform blocks. Interior lines on
// block boundaries are thick, all others thin.
type Standard struct {
	base
	blockRows    int
	blockColumns int
}

var _ Template = (*Standard)(nil)

// NewStandard creates a standard template. A zero block size is derived as
// the integer square root of the row (or column) count, which must then be
// a perfect square.
func NewStandard(m geometry.Mapper, blockRows, blockColumns int) (*Standard, error) {
	if blockRows == 0 {
		b, ok := isqrt(m.Size.Rows)
		if !ok {
			return nil, configErrorf(CodeNotSquare, "row count %d is not a perfect square; give the block size explicitly", m.Size.Rows)
		}
		blockRows = b
	}
	if blockColumns == 0 {
		b, ok := isqrt(m.Size.Columns)
		if !ok {
			return nil, configErrorf(CodeNotSquare, "column count %d is not a perfect square; give the block size explicitly", m.Size.Columns)
		}
		blockColumns = b
	}

	t := &Standard{base: base{mapper: m}, blockRows: blockRows, blockColumns: blockColumns}
	if err := t.Guard(); err != nil {
		return nil, err
	}
	return t, nil
}

// Kind returns KindStandard.
func (t *Standard) Kind() Kind {
	return KindStandard
}

// BlockSize returns the block height and width in cells.
func (t *Standard) BlockSize() (rows, columns int) {
	return t.blockRows, t.blockColumns
}

// Guard checks that the block size divides the grid on both axes.
func (t *Standard) Guard() error {
	if err := t.guardMapper(); err != nil {
		return err
	}
	size := t.mapper.Size
	if t.blockRows <= 0 || size.Rows%t.blockRows != 0 {
		return configErrorf(CodeBadBlockSize, "block height %d does not divide %d rows", t.blockRows, size.Rows)
	}
	if t.blockColumns <= 0 || size.Columns%t.blockColumns != 0 {
		return configErrorf(CodeBadBlockSize, "block width %d does not divide %d columns", t.blockColumns, size.Columns)
	}
	return nil
}

func (t *Standard) drawBorder(s paint.Surface, o LineOptions) borderState {
	s.DrawRect(t.mapper.LogicalRect(), o.Border)
	return borderState{}
}

func (t *Standard) drawInterior(s paint.Surface, o LineOptions, _ borderState) {
	for row := 1; row < t.mapper.Size.Rows; row++ {
		p := o.Grid
		if row%t.blockRows == 0 {
			p = o.Block
		}
		drawRowLine(s, t.mapper, row, p)
	}
	for col := 1; col < t.mapper.Size.Columns; col++ {
		p := o.Grid
		if col%t.blockColumns == 0 {
			p = o.Block
		}
		drawColumnLine(s, t.mapper, col, p)
	}
}

// Default is a plain cell grid without block lines.
type Default struct {
	base
	thickBorder bool
}

var _ Template = (*Default)(nil)

// NewDefault creates a default template. With thickBorder false the border
// uses the thin grid paint.
func NewDefault(m geometry.Mapper, thickBorder bool) (*Default, error) {
	t := &Default{base: base{mapper: m}, thickBorder: thickBorder}
	if err := t.Guard(); err != nil {
		return nil, err
	}
	return t, nil
}

// Kind returns KindDefault.
func (t *Default) Kind() Kind {
	return KindDefault
}

// Guard checks the mapper.
func (t *Default) Guard() error {
	return t.guardMapper()
}

func (t *Default) drawBorder(s paint.Surface, o LineOptions) borderState {
	p := o.Grid
	if t.thickBorder {
		p = o.Border
	}
	s.DrawRect(t.mapper.LogicalRect(), p)
	return borderState{}
}

func (t *Default) drawInterior(s paint.Surface, o LineOptions, _ borderState) {
	drawCellGrid(s, t.mapper, o.Grid)
}
