package template

import (
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
)

// JigsawOptions tunes a jigsaw template.
type JigsawOptions struct {
	Wrap       bool // Treat opposite grid edges as adjacent when outlining blocks
	FillBlocks bool // Tint each block from paint.BlockPalette
}

// Jigsaw is a grid whose blocks are arbitrary groups of relative cells.
type Jigsaw struct {
	base
	blocks [][]int
	opts   JigsawOptions
}

var _ Template = (*Jigsaw)(nil)

// NewJigsaw creates a jigsaw template. Blocks hold relative cell indices.
func NewJigsaw(m geometry.Mapper, blocks [][]int, opts JigsawOptions) (*Jigsaw, error) {
	copied := make([][]int, len(blocks))
	for i, b := range blocks {
		copied[i] = append([]int(nil), b...)
	}
	t := &Jigsaw{base: base{mapper: m}, blocks: copied, opts: opts}
	if err := t.Guard(); err != nil {
		return nil, err
	}
	return t, nil
}

// Kind returns KindJigsaw.
func (t *Jigsaw) Kind() Kind {
	return KindJigsaw
}

// Blocks returns a copy of the block cell lists.
func (t *Jigsaw) Blocks() [][]int {
	out := make([][]int, len(t.blocks))
	for i, b := range t.blocks {
		out[i] = append([]int(nil), b...)
	}
	return out
}

// Guard checks that every block cell is a logical cell and that no cell
// belongs to two blocks.
func (t *Jigsaw) Guard() error {
	if err := t.guardMapper(); err != nil {
		return err
	}
	owner := make(map[int]int)
	for i, block := range t.blocks {
		for _, cell := range block {
			if !t.mapper.InRelativeBounds(cell) {
				return configErrorf(CodeOutOfRange, "block %d: cell %d outside [0, %d)", i, cell, t.mapper.Size.CellCount())
			}
			if prev, dup := owner[cell]; dup {
				return configErrorf(CodeDuplicateCell, "cell %d belongs to blocks %d and %d", cell, prev, i)
			}
			owner[cell] = i
		}
	}
	return nil
}

// BlockOutlines returns the exposed-edge segments of every block.
func (t *Jigsaw) BlockOutlines() [][]geometry.LineSegment {
	out := make([][]geometry.LineSegment, len(t.blocks))
	for i, block := range t.blocks {
		out[i] = geometry.Segments(geometry.OutlineRelative(block, t.opts.Wrap, t.mapper))
	}
	return out
}

func (t *Jigsaw) drawBorder(s paint.Surface, o LineOptions) borderState {
	if t.opts.FillBlocks {
		for i, block := range t.blocks {
			fill := paint.Fill(paint.PaletteColor(i))
			for _, cell := range block {
				s.DrawRect(t.mapper.CellRect(t.mapper.ToAbsolute(cell)), fill)
			}
		}
	}
	s.DrawRect(t.mapper.LogicalRect(), o.Border)
	return borderState{}
}

func (t *Jigsaw) drawInterior(s paint.Surface, o LineOptions, _ borderState) {
	drawCellGrid(s, t.mapper, o.Grid)
	for _, segs := range t.BlockOutlines() {
		drawSegments(s, t.mapper, segs, o.Block)
	}
}
