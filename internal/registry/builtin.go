package registry

import (
	"fmt"
	"math"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/jigsaw"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/template"
)

func init() {
	Register(template.KindStandard, "Standard sudoku grid with rectangular blocks", newStandard)
	Register(template.KindDefault, "Plain grid without blocks", newDefault)
	Register(template.KindJigsaw, "Irregular blocks, given or generated from a seed", newJigsaw)
	Register(template.KindSpecified, "Explicit thick and thin line segments", newSpecified)
	Register(template.KindSujiken, "Lower-left triangular grid", newSujiken)
	Register(template.KindFormula, "Horizontal and vertical runs of cells", newFormula)
}

func newStandard(s Definition) (template.Template, error) {
	return template.NewStandard(s.Mapper(), s.BlockRows, s.BlockColumns)
}

func newDefault(s Definition) (template.Template, error) {
	return template.NewDefault(s.Mapper(), s.ThickBorder)
}

func newJigsaw(s Definition) (template.Template, error) {
	m := s.Mapper()
	blocks := s.Blocks
	if len(blocks) == 0 {
		if s.Seed == nil {
			return nil, fmt.Errorf("%w: jigsaw needs blocks or a seed", ErrBadDefinition)
		}
		if m.Size.Rows != m.Size.Columns {
			return nil, fmt.Errorf("%w: generated jigsaw must be square, got %dx%d", ErrBadDefinition, m.Size.Rows, m.Size.Columns)
		}
		b := int(math.Round(math.Sqrt(float64(m.Size.Rows))))
		if b*b != m.Size.Rows {
			return nil, fmt.Errorf("%w: generated jigsaw size %d is not a perfect square", ErrBadDefinition, m.Size.Rows)
		}
		layout, err := jigsaw.Generate(b, *s.Seed)
		if err != nil {
			return nil, err
		}
		blocks = layout.Blocks()
	}
	return template.NewJigsaw(m, blocks, template.JigsawOptions{Wrap: s.Wrap, FillBlocks: s.FillBlocks})
}

func newSpecified(s Definition) (template.Template, error) {
	thick, err := segments(s.Thick)
	if err != nil {
		return nil, err
	}
	thin, err := segments(s.Thin)
	if err != nil {
		return nil, err
	}
	return template.NewSpecified(s.Mapper(), thick, thin, s.Bordered)
}

func newSujiken(s Definition) (template.Template, error) {
	return template.NewSujiken(s.Mapper(), s.BlockSize)
}

func newFormula(s Definition) (template.Template, error) {
	ps, err := placements(s.Placements)
	if err != nil {
		return nil, err
	}
	return template.NewFormula(s.Mapper(), ps)
}
