// Package template provides the grid shapes a puzzle is drawn on. Every
// template owns one geometry.Mapper and draws its lines through the paint
// contract in three fixed steps: guard, border, interior.
package template

import (
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
)

// Kind identifies a template variant.
type Kind string

const (
	KindStandard  Kind = "standard"
	KindDefault   Kind = "default"
	KindJigsaw    Kind = "jigsaw"
	KindSpecified Kind = "specified"
	KindSujiken   Kind = "sujiken"
	KindFormula   Kind = "formula"
)

// Template is a grid shape. The set of implementations is closed: the draw
// steps are unexported and only this package provides variants.
type Template interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Mapper returns the coordinate mapper the template draws against.
	Mapper() geometry.Mapper

	// Guard validates the configuration. It never draws.
	Guard() error

	drawBorder(s paint.Surface, o LineOptions) borderState
	drawInterior(s paint.Surface, o LineOptions, st borderState)
}

// borderState carries lookup tables from the border step to the interior
// step of a single DrawLines call. Only Sujiken fills it.
type borderState struct {
	rowEnds   []int // Absolute index of the last cell of each row
	colStarts []int // Absolute index of the first cell of each column
}

// DrawLines validates t and then draws its border followed by its interior
// lines. A configuration error is returned before any draw call is issued.
func DrawLines(t Template, s paint.Surface, o LineOptions) error {
	if err := t.Guard(); err != nil {
		return err
	}
	st := t.drawBorder(s, o)
	t.drawInterior(s, o, st)
	return nil
}

// Default stroke widths as a ratio of the cell size.
var (
	BorderWidth = paint.MustScale(0.07)
	BlockWidth  = paint.MustScale(0.045)
	GridWidth   = paint.MustScale(0.015)
)

// LineOptions holds the paints used for template lines.
type LineOptions struct {
	Border paint.Paint // Outer border
	Block  paint.Paint // Thick interior lines (block boundaries)
	Grid   paint.Paint // Thin interior lines (cell boundaries)
}

// DefaultLineOptions returns black lines sized for the given cell size.
func DefaultLineOptions(cellSize float64) LineOptions {
	return LineOptions{
		Border: paint.Stroke(paint.Black, BorderWidth.Measure(cellSize)),
		Block:  paint.Stroke(paint.Black, BlockWidth.Measure(cellSize)),
		Grid:   paint.Stroke(paint.Black, GridWidth.Measure(cellSize)),
	}
}

// base carries the mapper shared by every variant.
type base struct {
	mapper geometry.Mapper
}

func (b base) Mapper() geometry.Mapper {
	return b.mapper
}

// guardMapper checks the mapper fields every variant relies on.
func (b base) guardMapper() error {
	m := b.mapper
	if m.Size.Rows <= 0 || m.Size.Columns <= 0 {
		return configErrorf(CodeBadSize, "grid must have positive size, got %dx%d", m.Size.Rows, m.Size.Columns)
	}
	if !m.Size.Padding.Valid() {
		return configErrorf(CodeBadSize, "padding must not be negative, got %+v", m.Size.Padding)
	}
	if m.CellSize <= 0 {
		return configErrorf(CodeBadSize, "cell size must be positive, got %g", m.CellSize)
	}
	return nil
}
