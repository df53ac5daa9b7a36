package item

import (
	"fmt"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/template"
)

// Background clears the whole surface.
type Background struct {
	Color paint.Color
}

func (Background) Category() Category      { return CategoryBackground }
func (Background) TemplateIndex() int      { return -1 }
func (b Background) Equal(other Item) bool { return equalValue(b, other) }
func (Background) isItem()                 {}

func (b Background) Draw(t Target) error {
	t.Surface().Clear(b.Color)
	return nil
}

// CellFill fills one logical cell.
type CellFill struct {
	Template int
	Cell     int // Relative cell
	Color    paint.Color
}

func (CellFill) Category() Category      { return CategoryCellFill }
func (f CellFill) TemplateIndex() int    { return f.Template }
func (f CellFill) Equal(other Item) bool { return equalValue(f, other) }
func (CellFill) isItem()                 {}

func (f CellFill) Draw(t Target) error {
	_, m, err := resolve(t, f.Template)
	if err != nil {
		return err
	}
	abs, err := cellAbsolute(m, f.Cell)
	if err != nil {
		return err
	}
	t.Surface().DrawRect(m.CellRect(abs), paint.Fill(f.Color))
	return nil
}

// CandidateFill fills one candidate sub-cell.
type CandidateFill struct {
	Template int
	Cell     int // Relative cell
	Split    int // Sub-grid split factor
	Inner    int // Index in [0, Split*Split)
	Color    paint.Color
}

func (CandidateFill) Category() Category      { return CategoryCandidateFill }
func (f CandidateFill) TemplateIndex() int    { return f.Template }
func (f CandidateFill) Equal(other Item) bool { return equalValue(f, other) }
func (CandidateFill) isItem()                 {}

func (f CandidateFill) Draw(t Target) error {
	_, m, err := resolve(t, f.Template)
	if err != nil {
		return err
	}
	pos, err := candidatePosition(m, f.Cell, f.Split, f.Inner)
	if err != nil {
		return err
	}
	t.Surface().DrawRect(m.CandidateRect(pos), paint.Fill(f.Color))
	return nil
}

func candidatePosition(m geometry.Mapper, cell, split, inner int) (geometry.CandidatePosition, error) {
	abs, err := cellAbsolute(m, cell)
	if err != nil {
		return geometry.CandidatePosition{}, err
	}
	if split <= 0 || inner < 0 || inner >= split*split {
		return geometry.CandidatePosition{}, fmt.Errorf("%w: candidate %d of split %d", ErrBadParameter, inner, split)
	}
	return geometry.Candidate(abs, split, inner), nil
}

// TemplateLines draws a template's border and interior lines.
type TemplateLines struct {
	Template int
	Lines    template.LineOptions
}

func (TemplateLines) Category() Category   { return CategoryTemplateLines }
func (l TemplateLines) TemplateIndex() int { return l.Template }
func (TemplateLines) isItem()              {}

func (l TemplateLines) Equal(other Item) bool {
	o, ok := other.(TemplateLines)
	return ok && l.Category() == o.Category() && l.Template == o.Template &&
		paintEqual(l.Lines.Border, o.Lines.Border) &&
		paintEqual(l.Lines.Block, o.Lines.Block) &&
		paintEqual(l.Lines.Grid, o.Lines.Grid)
}

func (l TemplateLines) Draw(t Target) error {
	tpl, _, err := resolve(t, l.Template)
	if err != nil {
		return err
	}
	return template.DrawLines(tpl, t.Surface(), l.Lines)
}

func paintEqual(a, b paint.Paint) bool {
	if a.Color != b.Color || a.Style != b.Style || a.Width != b.Width || len(a.Dash) != len(b.Dash) {
		return false
	}
	for i := range a.Dash {
		if a.Dash[i] != b.Dash[i] {
			return false
		}
	}
	return true
}
