package item

import (
	"fmt"
	"slices"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
)

const (
	defaultCageInset = paint.Scale(0.1)
	defaultCageWidth = paint.Scale(0.02)
	cageLabelSize    = paint.Scale(0.22)
)

// Cage outlines a group of cells with an inset dashed border and an
// optional label in the top-left of its first cell.
type Cage struct {
	Template int
	Cells    []int // Relative cells
	Color    paint.Color
	Label    string
	Inset    paint.Scale // Zero selects the default inset
	Width    paint.Scale // Zero selects the default stroke width
	Solid    bool
}

func (Cage) Category() Category   { return CategoryCage }
func (c Cage) TemplateIndex() int { return c.Template }
func (Cage) isItem()              {}

func (c Cage) Equal(other Item) bool {
	o, ok := other.(Cage)
	return ok && c.Category() == o.Category() &&
		c.Template == o.Template && c.Color == o.Color && c.Label == o.Label &&
		c.Inset == o.Inset && c.Width == o.Width && c.Solid == o.Solid &&
		sameCells(c.Cells, o.Cells)
}

// sameCells compares two cell groups ignoring order and repeats.
func sameCells(a, b []int) bool {
	norm := func(cells []int) []int {
		cells = slices.Clone(cells)
		slices.Sort(cells)
		return slices.Compact(cells)
	}
	return slices.Equal(norm(a), norm(b))
}

func (c Cage) Draw(t Target) error {
	_, m, err := resolve(t, c.Template)
	if err != nil {
		return err
	}
	if len(c.Cells) == 0 {
		return fmt.Errorf("%w: empty cage", ErrBadParameter)
	}
	for _, cell := range c.Cells {
		if !m.InRelativeBounds(cell) {
			return fmt.Errorf("%w: cage cell %d out of range", ErrBadParameter, cell)
		}
	}

	inset, width := c.Inset, c.Width
	if inset == 0 {
		inset = defaultCageInset
	}
	if width == 0 {
		width = defaultCageWidth
	}
	d := inset.Measure(m.CellSize)
	p := paint.Stroke(c.Color, width.Measure(m.CellSize))
	if !c.Solid {
		dash := m.CellSize / 10
		p = p.Dashed(dash, dash)
	}

	s := t.Surface()
	for _, seg := range geometry.Segments(geometry.OutlineRelative(c.Cells, false, m)) {
		for _, dir := range geometry.Directions {
			if seg.Directions.Has(dir) {
				from, to := insetEdge(m, seg, dir, d)
				s.DrawLine(from, to, p)
			}
		}
	}

	if c.Label != "" {
		first := m.ToAbsolute(slices.Min(c.Cells))
		at := m.Point(first, geometry.AlignTopLeft).Add(d*1.2, d*1.2)
		font := paint.Font{Family: paint.FontRegular, Size: cageLabelSize.Measure(m.CellSize)}
		s.DrawText(c.Label, at, geometry.AlignTopLeft, font, paint.Fill(c.Color))
	}
	return nil
}

// insetEdge moves an exposed edge d pixels into its cell. Each end is pulled
// in by d when the perpendicular edge at that corner is also exposed, so
// adjacent edges meet at the inset corner.
func insetEdge(m geometry.Mapper, seg geometry.LineSegment, dir geometry.Direction, d float64) (geometry.Point, geometry.Point) {
	from, to := m.EdgePoints(seg.Cell, dir)
	trim := func(side geometry.Direction) float64 {
		if seg.Directions.Has(side) {
			return d
		}
		return 0
	}
	switch dir {
	case geometry.Up:
		return from.Add(trim(geometry.Left), d), to.Add(-trim(geometry.Right), d)
	case geometry.Down:
		return from.Add(trim(geometry.Left), -d), to.Add(-trim(geometry.Right), -d)
	case geometry.Left:
		return from.Add(d, trim(geometry.Up)), to.Add(d, -trim(geometry.Down))
	default:
		return from.Add(-d, trim(geometry.Up)), to.Add(-d, -trim(geometry.Down))
	}
}
