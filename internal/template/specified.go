package template

import (
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
)

// Specified draws an explicit list of thick and thin line segments.
type Specified struct {
	base
	thick    []geometry.LineSegment
	thin     []geometry.LineSegment
	bordered bool
}

var _ Template = (*Specified)(nil)

// NewSpecified creates a template from explicit segments. Segment cells are
// absolute indices. With bordered set the logical area also gets a border.
func NewSpecified(m geometry.Mapper, thick, thin []geometry.LineSegment, bordered bool) (*Specified, error) {
	t := &Specified{
		base:     base{mapper: m},
		thick:    append([]geometry.LineSegment(nil), thick...),
		thin:     append([]geometry.LineSegment(nil), thin...),
		bordered: bordered,
	}
	if err := t.Guard(); err != nil {
		return nil, err
	}
	return t, nil
}

// Kind returns KindSpecified.
func (t *Specified) Kind() Kind {
	return KindSpecified
}

// Guard checks every segment cell and direction mask.
func (t *Specified) Guard() error {
	if err := t.guardMapper(); err != nil {
		return err
	}
	for _, group := range [][]geometry.LineSegment{t.thick, t.thin} {
		for _, seg := range group {
			if !t.mapper.InAbsoluteBounds(seg.Cell) {
				return configErrorf(CodeOutOfRange, "segment cell %d outside [0, %d)", seg.Cell, t.mapper.Size.AbsoluteCellCount())
			}
			if !seg.Directions.Valid() {
				return configErrorf(CodeBadDirection, "segment cell %d: direction mask %d exceeds %d", seg.Cell, seg.Directions, geometry.AllDirections)
			}
		}
	}
	return nil
}

func (t *Specified) drawBorder(s paint.Surface, o LineOptions) borderState {
	if t.bordered {
		s.DrawRect(t.mapper.LogicalRect(), o.Border)
	}
	return borderState{}
}

func (t *Specified) drawInterior(s paint.Surface, o LineOptions, _ borderState) {
	drawSegments(s, t.mapper, t.thin, o.Grid)
	drawSegments(s, t.mapper, t.thick, o.Block)
}
