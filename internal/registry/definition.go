package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/template"
)

// ErrBadDefinition is returned when a definition cannot be turned into constructor
// arguments.
var ErrBadDefinition = errors.New("invalid template definition")

const (
	DefaultCellSize = 64
	DefaultMargin   = 16
)

// Definition declares one template. Fields not used by a kind are ignored.
type Definition struct {
	Kind     template.Kind            `yaml:"kind"`
	Rows     int                      `yaml:"rows"`
	Columns  int                      `yaml:"columns,omitempty"`
	CellSize float64                  `yaml:"cell_size,omitempty"`
	Margin   *float64                 `yaml:"margin,omitempty"`
	Padding  geometry.DirectionVector `yaml:"padding,omitempty"`

	// standard
	BlockRows    int `yaml:"block_rows,omitempty"`
	BlockColumns int `yaml:"block_columns,omitempty"`

	// default
	ThickBorder bool `yaml:"thick_border,omitempty"`

	// jigsaw; Seed generates random blocks when Blocks is empty
	Blocks     [][]int `yaml:"blocks,omitempty"`
	Seed       *int64  `yaml:"seed,omitempty"`
	Wrap       bool    `yaml:"wrap,omitempty"`
	FillBlocks bool    `yaml:"fill_blocks,omitempty"`

	// specified
	Thick    []SegmentDef `yaml:"thick,omitempty"`
	Thin     []SegmentDef `yaml:"thin,omitempty"`
	Bordered bool         `yaml:"bordered,omitempty"`

	// sujiken
	BlockSize int `yaml:"block_size,omitempty"`

	// formula
	Placements []PlacementDef `yaml:"placements,omitempty"`
}

// SegmentDef is a line segment with edges written as "up|left".
type SegmentDef struct {
	Cell  int    `yaml:"cell"` // Absolute cell
	Edges string `yaml:"edges"`
}

// PlacementDef is a formula run written with a direction name.
type PlacementDef struct {
	Start     int    `yaml:"start"`
	Direction string `yaml:"direction"`
	Length    int    `yaml:"length"`
}

// Mapper builds the definition's coordinate mapper, applying default cell size
// and margin.
func (s Definition) Mapper() geometry.Mapper {
	cell := s.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}
	margin := float64(DefaultMargin)
	if s.Margin != nil {
		margin = *s.Margin
	}
	columns := s.Columns
	if columns == 0 {
		columns = s.Rows
	}
	size := geometry.NewGridSize(s.Rows, columns)
	size.Padding = s.Padding
	return geometry.NewMapper(cell, margin, size)
}

// ParseEdges parses a "|"-separated list of direction names.
func ParseEdges(s string) (geometry.Direction, error) {
	var mask geometry.Direction
	for _, name := range strings.Split(s, "|") {
		d, ok := geometry.ParseDirection(name)
		if !ok {
			return geometry.None, fmt.Errorf("%w: edge %q", ErrBadDefinition, name)
		}
		mask |= d
	}
	return mask, nil
}

func segments(defs []SegmentDef) ([]geometry.LineSegment, error) {
	out := make([]geometry.LineSegment, 0, len(defs))
	for _, s := range defs {
		mask, err := ParseEdges(s.Edges)
		if err != nil {
			return nil, err
		}
		out = append(out, geometry.LineSegment{Cell: s.Cell, Directions: mask})
	}
	return out, nil
}

func placements(defs []PlacementDef) ([]template.Placement, error) {
	out := make([]template.Placement, 0, len(defs))
	for _, p := range defs {
		d, ok := geometry.ParseDirection(p.Direction)
		if !ok {
			return nil, fmt.Errorf("%w: direction %q", ErrBadDefinition, p.Direction)
		}
		out = append(out, template.Placement{Start: p.Start, Direction: d, Length: p.Length})
	}
	return out, nil
}
