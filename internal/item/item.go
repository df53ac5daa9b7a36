// Package item provides the drawable scene primitives and the ordered,
// deduplicating Set that holds them.
package item

import (
	"errors"
	"fmt"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/template"
)

var (
	ErrUnknownTemplate = errors.New("unknown template index")
	ErrBadParameter    = errors.New("invalid item parameter")
)

// Category is the draw priority of an item. Lower categories draw first.
type Category uint8

const (
	CategoryBackground Category = iota
	CategoryCellFill
	CategoryCandidateFill
	CategoryTemplateLines
	CategoryCage
	CategoryDice
	CategoryTetromino
	CategoryTriangle
	CategoryExclamation
	CategoryQuestion
	CategoryGiven
	CategoryModifiable
	CategoryCandidate

	categoryCount
)

var categoryNames = [categoryCount]string{
	"background", "cell-fill", "candidate-fill", "template-lines", "cage",
	"dice", "tetromino", "triangle", "exclamation", "question",
	"given", "modifiable", "candidate",
}

// String returns the string representation of a category.
func (c Category) String() string {
	if c < categoryCount {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Categories returns every category in draw order.
func Categories() []Category {
	out := make([]Category, categoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Target is what items draw onto: a surface plus the templates addressed by
// index. The canvas implements it.
type Target interface {
	Surface() paint.Surface
	Template(index int) (template.Template, error)
}

// Item is a drawable scene primitive. The variants in this package are the
// only implementations.
type Item interface {
	// Category returns the draw priority tag.
	Category() Category

	// TemplateIndex returns the template the item draws against, or -1.
	TemplateIndex() int

	// Equal reports whether other is the same variant with equal fields.
	Equal(other Item) bool

	// Draw paints the item. It never mutates the item.
	Draw(t Target) error

	isItem()
}

// equalValue implements Equal for comparable variants.
func equalValue[T interface {
	comparable
	Item
}](a T, other Item) bool {
	b, ok := other.(T)
	return ok && a.Category() == b.Category() && a == b
}

// resolve looks up the item's template and mapper.
func resolve(t Target, index int) (template.Template, geometry.Mapper, error) {
	tpl, err := t.Template(index)
	if err != nil {
		return nil, geometry.Mapper{}, err
	}
	return tpl, tpl.Mapper(), nil
}

// cellAbsolute validates a relative cell and converts it.
func cellAbsolute(m geometry.Mapper, cell int) (int, error) {
	if !m.InRelativeBounds(cell) {
		return 0, fmt.Errorf("%w: cell %d outside [0, %d)", ErrBadParameter, cell, m.Size.CellCount())
	}
	return m.ToAbsolute(cell), nil
}
