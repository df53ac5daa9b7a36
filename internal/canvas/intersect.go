package canvas

import (
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/item"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/template"
)

// Intersection is one cell shared by two templates, given as a relative
// cell of each.
type Intersection struct {
	First, Second         int // Template indices, First < Second
	FirstCell, SecondCell int // Relative cells
}

// Intersections projects every cell of each template into the absolute
// space of every later template and reports those landing inside its
// logical grid. Results are ordered by template pair, then by cell.
func (c *Canvas) Intersections() []Intersection {
	c.mustLive()
	var out []Intersection
	for i, a := range c.templates {
		ma := a.Mapper()
		for j := i + 1; j < len(c.templates); j++ {
			mb := c.templates[j].Mapper()
			for rel := range ma.Size.CellCount() {
				row, col := ma.RowColumn(ma.ToAbsolute(rel))
				other, ok := mb.RelativeCell(row, col)
				if !ok {
					continue
				}
				out = append(out, Intersection{First: i, Second: j, FirstCell: rel, SecondCell: other})
			}
		}
	}
	return out
}

// Layer returns a copy of s extended with the lines of every template and,
// when fill is non-nil, a cell fill on the first template of each
// intersection. Drawing the result layers fills under lines and lines under
// marks and text.
func (c *Canvas) Layer(s *item.Set, o template.LineOptions, fill *paint.Color) *item.Set {
	c.mustLive()
	out := s.Clone()
	if fill != nil {
		for _, in := range c.Intersections() {
			out.Add(item.CellFill{Template: in.First, Cell: in.FirstCell, Color: *fill})
		}
	}
	for i := range c.templates {
		out.Add(item.TemplateLines{Template: i, Lines: o})
	}
	return out
}
