package template

import (
	"sort"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
)

// Placement is one linear formula laid on the grid: Length cells starting
// at relative cell Start and expanding in Direction.
type Placement struct {
	Start     int
	Direction geometry.Direction
	Length    int
}

// Formula is a crossmath grid: only cells covered by a placement are boxed.
type Formula struct {
	base
	placements []Placement
}

var _ Template = (*Formula)(nil)

// NewFormula creates a formula template.
func NewFormula(m geometry.Mapper, placements []Placement) (*Formula, error) {
	t := &Formula{base: base{mapper: m}, placements: append([]Placement(nil), placements...)}
	if err := t.Guard(); err != nil {
		return nil, err
	}
	return t, nil
}

// Kind returns KindFormula.
func (t *Formula) Kind() Kind {
	return KindFormula
}

// Guard checks every placement starts on a logical cell and stays inside
// the logical area for its whole length.
func (t *Formula) Guard() error {
	if err := t.guardMapper(); err != nil {
		return err
	}
	for i, p := range t.placements {
		if p.Length < 1 {
			return configErrorf(CodeBadLength, "placement %d: length %d must be positive", i, p.Length)
		}
		if !p.Direction.Single() {
			return configErrorf(CodeBadDirection, "placement %d: direction %v is not a single direction", i, p.Direction)
		}
		if !t.mapper.InRelativeBounds(p.Start) {
			return configErrorf(CodeOutOfRange, "placement %d: start %d outside [0, %d)", i, p.Start, t.mapper.Size.CellCount())
		}
		if _, ok := t.walk(p); !ok {
			return configErrorf(CodeOutOfRange, "placement %d: %d cells %v from %d leave the grid", i, p.Length, p.Direction, p.Start)
		}
	}
	return nil
}

// walk returns the absolute cells of a placement by repeated adjacency
// steps, and false if a step leaves the logical area.
func (t *Formula) walk(p Placement) ([]int, bool) {
	cells := make([]int, 0, p.Length)
	cell := t.mapper.ToAbsolute(p.Start)
	for i := 0; i < p.Length; i++ {
		if i > 0 {
			cell = t.mapper.Adjacent(cell, p.Direction, false)
			if cell == geometry.NoNeighbor {
				return nil, false
			}
		}
		row, col := t.mapper.RowColumn(cell)
		if _, inside := t.mapper.RelativeCell(row, col); !inside {
			return nil, false
		}
		cells = append(cells, cell)
	}
	return cells, true
}

// Cells returns the sorted absolute cells covered by any placement.
func (t *Formula) Cells() []int {
	seen := make(map[int]struct{})
	for _, p := range t.placements {
		cells, _ := t.walk(p)
		for _, c := range cells {
			seen[c] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

// Segments returns one full-box segment per covered cell.
func (t *Formula) Segments() []geometry.LineSegment {
	cells := t.Cells()
	segs := make([]geometry.LineSegment, len(cells))
	for i, c := range cells {
		segs[i] = geometry.LineSegment{Cell: c, Directions: geometry.AllDirections}
	}
	return segs
}

// drawBorder outlines the union of all covered cells.
func (t *Formula) drawBorder(s paint.Surface, o LineOptions) borderState {
	outline := geometry.Segments(geometry.Outline(t.Cells(), false, t.mapper))
	drawSegments(s, t.mapper, outline, o.Border)
	return borderState{}
}

func (t *Formula) drawInterior(s paint.Surface, o LineOptions, _ borderState) {
	drawSegments(s, t.mapper, t.Segments(), o.Grid)
}
