package config

import (
	"errors"
	"fmt"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/item"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/registry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/template"
)

// ErrInvalidScene is returned for scene documents that cannot be built.
var ErrInvalidScene = errors.New("invalid scene")

// Built is a scene resolved into drawable values.
type Built struct {
	Templates     []template.Template
	Lines         template.LineOptions
	Items         *item.Set
	Background    paint.Color
	Intersections *paint.Color // Nil when intersections are not filled
}

// Build resolves the scene's templates, colors and items.
func (s Scene) Build() (Built, error) {
	if len(s.Templates) == 0 {
		return Built{}, fmt.Errorf("%w: no templates", ErrInvalidScene)
	}

	var b Built
	for i, def := range s.Templates {
		t, err := registry.Create(def)
		if err != nil {
			return Built{}, fmt.Errorf("template %d: %w", i, err)
		}
		b.Templates = append(b.Templates, t)
	}

	bg, err := colorOr(s.Background, paint.White)
	if err != nil {
		return Built{}, fmt.Errorf("background: %w", err)
	}
	b.Background = bg

	if s.Intersections != "" {
		c, err := paint.ParseColor(s.Intersections)
		if err != nil {
			return Built{}, fmt.Errorf("intersections: %w", err)
		}
		b.Intersections = &c
	}

	cell := b.Templates[0].Mapper().CellSize
	if b.Lines, err = s.Lines.options(cell); err != nil {
		return Built{}, err
	}

	b.Items = item.NewSet()
	for i, ic := range s.Items {
		if ic.Template < 0 || ic.Template >= len(b.Templates) {
			return Built{}, fmt.Errorf("%w: item %d references template %d of %d", ErrInvalidScene, i, ic.Template, len(b.Templates))
		}
		it, err := ic.Item()
		if err != nil {
			return Built{}, fmt.Errorf("item %d: %w", i, err)
		}
		b.Items.Add(it)
	}
	return b, nil
}

func (l LinesConfig) options(cellSize float64) (template.LineOptions, error) {
	o := template.DefaultLineOptions(cellSize)
	var err error
	if o.Border, err = l.Border.apply(o.Border, cellSize); err != nil {
		return o, fmt.Errorf("border line: %w", err)
	}
	if o.Block, err = l.Block.apply(o.Block, cellSize); err != nil {
		return o, fmt.Errorf("block line: %w", err)
	}
	if o.Grid, err = l.Grid.apply(o.Grid, cellSize); err != nil {
		return o, fmt.Errorf("grid line: %w", err)
	}
	return o, nil
}

func (l LineConfig) apply(p paint.Paint, cellSize float64) (paint.Paint, error) {
	if l.Color != "" {
		c, err := paint.ParseColor(l.Color)
		if err != nil {
			return p, err
		}
		p.Color = c
	}
	if l.Width != 0 {
		s, err := paint.NewScale(l.Width)
		if err != nil {
			return p, err
		}
		p.Width = s.Measure(cellSize)
	}
	if len(l.Dash) > 0 {
		p = p.Dashed(l.Dash...)
	}
	return p, nil
}

// Item converts the config into an item.
func (c ItemConfig) Item() (item.Item, error) {
	col, err := colorOr(c.Color, defaultColor(c.Type))
	if err != nil {
		return nil, err
	}
	size, err := paint.NewScale(c.Size)
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}

	switch c.Type {
	case "background":
		return item.Background{Color: col}, nil
	case "fill":
		return item.CellFill{Template: c.Template, Cell: c.Cell, Color: col}, nil
	case "candidate-fill":
		return item.CandidateFill{Template: c.Template, Cell: c.Cell, Split: c.Split, Inner: c.Inner, Color: col}, nil
	case "lines":
		return nil, fmt.Errorf("%w: template lines come from the scene's lines section", ErrInvalidScene)
	case "cage":
		inset, err := paint.NewScale(c.Inset)
		if err != nil {
			return nil, fmt.Errorf("inset: %w", err)
		}
		return item.Cage{Template: c.Template, Cells: c.Cells, Color: col, Label: c.Label, Inset: inset, Width: size, Solid: c.Solid}, nil
	case "dice":
		return item.Dice{Template: c.Template, Cell: c.Cell, Pips: c.Pips, Color: col, Size: size}, nil
	case "tetromino":
		return item.Tetromino{Template: c.Template, Cell: c.Cell, Shape: c.Shape, Color: col, Size: size}, nil
	case "triangle":
		corner, err := alignment(c.Corner, geometry.AlignTopLeft)
		if err != nil {
			return nil, err
		}
		return item.Triangle{Template: c.Template, Cell: c.Cell, Corner: corner, Color: col, Size: size}, nil
	case "exclamation", "question":
		align, err := alignment(c.Align, geometry.AlignCenter)
		if err != nil {
			return nil, err
		}
		if c.Type == "question" {
			return item.Question{Template: c.Template, Cell: c.Cell, Align: align, Color: col, Size: size}, nil
		}
		return item.Exclamation{Template: c.Template, Cell: c.Cell, Align: align, Color: col, Size: size}, nil
	case "given":
		return item.Given{Template: c.Template, Cell: c.Cell, Text: c.Text, Color: col, Font: paint.FontFamily(c.Font), Size: size}, nil
	case "value":
		return item.Modifiable{Template: c.Template, Cell: c.Cell, Text: c.Text, Color: col, Font: paint.FontFamily(c.Font), Size: size}, nil
	case "candidate":
		return item.Candidate{Template: c.Template, Cell: c.Cell, Split: c.Split, Inner: c.Inner, Text: c.Text, Color: col, Size: size}, nil
	default:
		return nil, fmt.Errorf("%w: unknown item type %q", ErrInvalidScene, c.Type)
	}
}

// defaultColor returns the color used when an item omits one.
func defaultColor(itemType string) paint.Color {
	switch itemType {
	case "background":
		return paint.White
	case "fill":
		return paint.LightGray
	case "candidate-fill":
		return paint.Yellow.WithAlpha(128)
	case "value":
		return paint.Blue
	case "candidate":
		return paint.DimGray
	case "cage", "triangle", "tetromino":
		return paint.Gray
	default:
		return paint.Black
	}
}

func colorOr(s string, def paint.Color) (paint.Color, error) {
	if s == "" {
		return def, nil
	}
	return paint.ParseColor(s)
}

func alignment(s string, def geometry.Alignment) (geometry.Alignment, error) {
	if s == "" {
		return def, nil
	}
	a, ok := geometry.ParseAlignment(s)
	if !ok {
		return 0, fmt.Errorf("%w: alignment %q", ErrInvalidScene, s)
	}
	return a, nil
}
