package item

import (
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
)

const (
	defaultValueSize     = paint.Scale(0.65)
	defaultCandidateSize = paint.Scale(0.8) // Of the candidate sub-cell
)

// Given is a clue digit or symbol drawn centered in a cell.
type Given struct {
	Template int
	Cell     int
	Text     string
	Color    paint.Color
	Font     paint.FontFamily // Empty selects bold
	Size     paint.Scale
}

func (Given) Category() Category      { return CategoryGiven }
func (g Given) TemplateIndex() int    { return g.Template }
func (g Given) Equal(other Item) bool { return equalValue(g, other) }
func (Given) isItem()                 {}

func (g Given) Draw(t Target) error {
	return drawValue(t, g.Template, g.Cell, g.Text, g.Color, orFamily(g.Font, paint.FontBold), g.Size)
}

// Modifiable is a solver-entered value drawn centered in a cell.
type Modifiable struct {
	Template int
	Cell     int
	Text     string
	Color    paint.Color
	Font     paint.FontFamily // Empty selects regular
	Size     paint.Scale
}

func (Modifiable) Category() Category      { return CategoryModifiable }
func (v Modifiable) TemplateIndex() int    { return v.Template }
func (v Modifiable) Equal(other Item) bool { return equalValue(v, other) }
func (Modifiable) isItem()                 {}

func (v Modifiable) Draw(t Target) error {
	return drawValue(t, v.Template, v.Cell, v.Text, v.Color, orFamily(v.Font, paint.FontRegular), v.Size)
}

func drawValue(t Target, index, cell int, text string, c paint.Color, family paint.FontFamily, size paint.Scale) error {
	_, m, err := resolve(t, index)
	if err != nil {
		return err
	}
	abs, err := cellAbsolute(m, cell)
	if err != nil {
		return err
	}
	font := paint.Font{Family: family, Size: orDefault(size, defaultValueSize).Measure(m.CellSize)}
	t.Surface().DrawText(text, m.Point(abs, geometry.AlignCenter), geometry.AlignCenter, font, paint.Fill(c))
	return nil
}

// Candidate is a pencil mark drawn centered in a candidate sub-cell.
type Candidate struct {
	Template int
	Cell     int
	Split    int
	Inner    int
	Text     string
	Color    paint.Color
	Size     paint.Scale // Ratio of the sub-cell
}

func (Candidate) Category() Category      { return CategoryCandidate }
func (c Candidate) TemplateIndex() int    { return c.Template }
func (c Candidate) Equal(other Item) bool { return equalValue(c, other) }
func (Candidate) isItem()                 {}

func (c Candidate) Draw(t Target) error {
	_, m, err := resolve(t, c.Template)
	if err != nil {
		return err
	}
	pos, err := candidatePosition(m, c.Cell, c.Split, c.Inner)
	if err != nil {
		return err
	}
	sub := m.CellSize / float64(c.Split)
	font := paint.Font{Family: paint.FontRegular, Size: orDefault(c.Size, defaultCandidateSize).Measure(sub)}
	at := m.CandidatePoint(pos, geometry.AlignCenter)
	t.Surface().DrawText(c.Text, at, geometry.AlignCenter, font, paint.Fill(c.Color))
	return nil
}

func orFamily(f, def paint.FontFamily) paint.FontFamily {
	if f == "" {
		return def
	}
	return f
}
