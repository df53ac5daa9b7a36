package item

import (
	"fmt"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
)

const (
	defaultDiceSize      = paint.Scale(0.7)
	defaultTetrominoSize = paint.Scale(0.6)
	defaultTriangleSize  = paint.Scale(0.3)
	defaultSymbolSize    = paint.Scale(0.35)
)

// pipSlots maps a dice value to its occupied slots in a 3×3 grid.
var pipSlots = [10][]int{
	1: {4},
	2: {0, 8},
	3: {0, 4, 8},
	4: {0, 2, 6, 8},
	5: {0, 2, 4, 6, 8},
	6: {0, 2, 3, 5, 6, 8},
	7: {0, 2, 3, 4, 5, 6, 8},
	8: {0, 1, 2, 3, 5, 6, 7, 8},
	9: {0, 1, 2, 3, 4, 5, 6, 7, 8},
}

// Dice draws a dice face with 1 to 9 pips centered in a cell.
type Dice struct {
	Template int
	Cell     int
	Pips     int
	Color    paint.Color
	Size     paint.Scale
}

func (Dice) Category() Category      { return CategoryDice }
func (d Dice) TemplateIndex() int    { return d.Template }
func (d Dice) Equal(other Item) bool { return equalValue(d, other) }
func (Dice) isItem()                 {}

func (d Dice) Draw(t Target) error {
	_, m, err := resolve(t, d.Template)
	if err != nil {
		return err
	}
	abs, err := cellAbsolute(m, d.Cell)
	if err != nil {
		return err
	}
	if d.Pips < 1 || d.Pips > 9 {
		return fmt.Errorf("%w: dice value %d", ErrBadParameter, d.Pips)
	}

	face := squareIn(m.CellRect(abs), orDefault(d.Size, defaultDiceSize).Measure(m.CellSize))
	s := t.Surface()
	s.DrawRect(face, paint.Stroke(d.Color, m.CellSize/30))
	slot := face.W / 3
	for _, i := range pipSlots[d.Pips] {
		r, c := i/3, i%3
		pip := geometry.Rect{X: face.X + float64(c)*slot, Y: face.Y + float64(r)*slot, W: slot, H: slot}.Inset(slot * 0.25)
		s.DrawEllipse(pip, paint.Fill(d.Color))
	}
	return nil
}

// Tetromino shapes as (row, column) blocks inside a 4×4 box.
var tetrominoes = map[string][4][2]int{
	"I": {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	"O": {{1, 1}, {1, 2}, {2, 1}, {2, 2}},
	"T": {{1, 0}, {1, 1}, {1, 2}, {2, 1}},
	"S": {{1, 1}, {1, 2}, {2, 0}, {2, 1}},
	"Z": {{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	"J": {{0, 2}, {1, 2}, {2, 2}, {2, 1}},
	"L": {{0, 1}, {1, 1}, {2, 1}, {2, 2}},
}

// Tetromino draws one of the seven tetromino shapes inside a cell.
type Tetromino struct {
	Template int
	Cell     int
	Shape    string // One of I O T S Z J L
	Color    paint.Color
	Size     paint.Scale
}

func (Tetromino) Category() Category      { return CategoryTetromino }
func (p Tetromino) TemplateIndex() int    { return p.Template }
func (p Tetromino) Equal(other Item) bool { return equalValue(p, other) }
func (Tetromino) isItem()                 {}

func (p Tetromino) Draw(t Target) error {
	_, m, err := resolve(t, p.Template)
	if err != nil {
		return err
	}
	abs, err := cellAbsolute(m, p.Cell)
	if err != nil {
		return err
	}
	blocks, ok := tetrominoes[p.Shape]
	if !ok {
		return fmt.Errorf("%w: tetromino shape %q", ErrBadParameter, p.Shape)
	}

	box := squareIn(m.CellRect(abs), orDefault(p.Size, defaultTetrominoSize).Measure(m.CellSize))
	unit := box.W / 4
	s := t.Surface()
	for _, b := range blocks {
		r := geometry.Rect{X: box.X + float64(b[1])*unit, Y: box.Y + float64(b[0])*unit, W: unit, H: unit}
		s.DrawRect(r, paint.Fill(p.Color))
	}
	return nil
}

// Triangle fills a right triangle in one corner of a cell.
type Triangle struct {
	Template int
	Cell     int
	Corner   geometry.Alignment // Any alignment except AlignCenter
	Color    paint.Color
	Size     paint.Scale
}

func (Triangle) Category() Category      { return CategoryTriangle }
func (g Triangle) TemplateIndex() int    { return g.Template }
func (g Triangle) Equal(other Item) bool { return equalValue(g, other) }
func (Triangle) isItem()                 {}

func (g Triangle) Draw(t Target) error {
	_, m, err := resolve(t, g.Template)
	if err != nil {
		return err
	}
	abs, err := cellAbsolute(m, g.Cell)
	if err != nil {
		return err
	}

	leg := orDefault(g.Size, defaultTriangleSize).Measure(m.CellSize)
	corner := m.Point(abs, g.Corner)
	var dx, dy float64
	switch g.Corner {
	case geometry.AlignTopLeft:
		dx, dy = leg, leg
	case geometry.AlignTopRight:
		dx, dy = -leg, leg
	case geometry.AlignBottomLeft:
		dx, dy = leg, -leg
	case geometry.AlignBottomRight:
		dx, dy = -leg, -leg
	default:
		return fmt.Errorf("%w: triangle corner %v", ErrBadParameter, g.Corner)
	}
	t.Surface().DrawPath(paint.Polygon(corner, corner.Add(dx, 0), corner.Add(0, dy)), paint.Fill(g.Color))
	return nil
}

// Exclamation draws a "!" mark at an alignment point of a cell.
type Exclamation struct {
	Template int
	Cell     int
	Align    geometry.Alignment
	Color    paint.Color
	Size     paint.Scale
}

func (Exclamation) Category() Category      { return CategoryExclamation }
func (e Exclamation) TemplateIndex() int    { return e.Template }
func (e Exclamation) Equal(other Item) bool { return equalValue(e, other) }
func (Exclamation) isItem()                 {}

func (e Exclamation) Draw(t Target) error {
	return drawSymbol(t, "!", e.Template, e.Cell, e.Align, e.Color, e.Size)
}

// Question draws a "?" mark at an alignment point of a cell.
type Question struct {
	Template int
	Cell     int
	Align    geometry.Alignment
	Color    paint.Color
	Size     paint.Scale
}

func (Question) Category() Category      { return CategoryQuestion }
func (q Question) TemplateIndex() int    { return q.Template }
func (q Question) Equal(other Item) bool { return equalValue(q, other) }
func (Question) isItem()                 {}

func (q Question) Draw(t Target) error {
	return drawSymbol(t, "?", q.Template, q.Cell, q.Align, q.Color, q.Size)
}

func drawSymbol(t Target, symbol string, index, cell int, align geometry.Alignment, c paint.Color, size paint.Scale) error {
	_, m, err := resolve(t, index)
	if err != nil {
		return err
	}
	abs, err := cellAbsolute(m, cell)
	if err != nil {
		return err
	}
	if align > geometry.AlignBottomRight {
		return fmt.Errorf("%w: alignment %d", ErrBadParameter, align)
	}
	font := paint.Font{Family: paint.FontBold, Size: orDefault(size, defaultSymbolSize).Measure(m.CellSize)}
	t.Surface().DrawText(symbol, m.Point(abs, align), align, font, paint.Fill(c))
	return nil
}

// squareIn returns a square of the given side centered in r.
func squareIn(r geometry.Rect, side float64) geometry.Rect {
	return r.Inset((r.W - side) / 2)
}

func orDefault(s, def paint.Scale) paint.Scale {
	if s == 0 {
		return def
	}
	return s
}
