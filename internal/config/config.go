// Package config provides YAML scene documents: the templates, line styles,
// items and export settings of one rendering.
package config

import (
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/export"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/registry"
)

// Scene contains everything needed to render one image.
type Scene struct {
	Name          string                `yaml:"name"`
	Output        string                `yaml:"output"`
	Quality       export.Quality        `yaml:"quality"`
	Background    string                `yaml:"background"`
	Intersections string                `yaml:"intersections"` // Fill color for shared cells; empty disables
	Lines         LinesConfig           `yaml:"lines"`
	Templates     []registry.Definition `yaml:"templates"`
	Items         []ItemConfig          `yaml:"items"`
}

// LinesConfig overrides the default line styles.
type LinesConfig struct {
	Border LineConfig `yaml:"border"`
	Block  LineConfig `yaml:"block"`
	Grid   LineConfig `yaml:"grid"`
}

// LineConfig defines one line style. Width is a ratio of the cell size.
type LineConfig struct {
	Color string    `yaml:"color"`
	Width float64   `yaml:"width"`
	Dash  []float64 `yaml:"dash"`
}

// ItemConfig declares one item. Type selects the variant; fields it does
// not use are ignored.
type ItemConfig struct {
	Type     string  `yaml:"type"`
	Template int     `yaml:"template"`
	Cell     int     `yaml:"cell"`
	Cells    []int   `yaml:"cells"`
	Split    int     `yaml:"split"`
	Inner    int     `yaml:"inner"`
	Text     string  `yaml:"text"`
	Label    string  `yaml:"label"`
	Color    string  `yaml:"color"`
	Font     string  `yaml:"font"`
	Size     float64 `yaml:"size"` // Ratio of the cell size; stroke width for cages
	Inset    float64 `yaml:"inset"`
	Solid    bool    `yaml:"solid"`
	Pips     int     `yaml:"pips"`
	Shape    string  `yaml:"shape"`
	Corner   string  `yaml:"corner"`
	Align    string  `yaml:"align"`
}
