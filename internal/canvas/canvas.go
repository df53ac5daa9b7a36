// Package canvas composes grid templates and item sets onto one backing
// surface and exports the result.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/export"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/item"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/template"
)

var (
	ErrNoTemplates = errors.New("canvas needs at least one template")
	ErrDisposed    = errors.New("canvas is disposed")
)

// SurfaceFactory creates the backing surface for a canvas.
type SurfaceFactory func(width, height int) paint.Backing

// Options configures a canvas. The zero value rasterizes with gg and logs
// nothing.
type Options struct {
	Surface SurfaceFactory
	Logger  *log.Logger
}

// Canvas owns one backing surface and the templates items are drawn against.
// Template indices are fixed at construction. A Canvas is not safe for
// concurrent use.
type Canvas struct {
	templates     []template.Template
	backing       paint.Backing
	width, height int
	logger        *log.Logger
	disposed      bool
}

var _ item.Target = (*Canvas)(nil)

// New creates a canvas sized to the widest and tallest absolute extent of
// the templates, measured with the first template's cell size and margin.
func New(templates []template.Template, opts Options) (*Canvas, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("canvas: %w", ErrNoTemplates)
	}

	first := templates[0].Mapper()
	rows, cols := 0, 0
	for _, t := range templates {
		size := t.Mapper().Size
		rows = max(rows, size.AbsoluteRows())
		cols = max(cols, size.AbsoluteColumns())
	}
	width := int(math.Ceil(2*first.Margin + first.CellSize*float64(cols)))
	height := int(math.Ceil(2*first.Margin + first.CellSize*float64(rows)))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: %w: surface %dx%d", template.ErrInvalidConfig, width, height)
	}

	factory := opts.Surface
	if factory == nil {
		factory = func(w, h int) paint.Backing { return paint.NewImageSurface(w, h) }
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Canvas{
		templates: append([]template.Template(nil), templates...),
		backing:   factory(width, height),
		width:     width,
		height:    height,
		logger:    logger,
	}
	logger.Debug("canvas created", "width", width, "height", height, "templates", len(templates))
	return c, nil
}

// Width returns the surface width in pixels.
func (c *Canvas) Width() int {
	c.mustLive()
	return c.width
}

// Height returns the surface height in pixels.
func (c *Canvas) Height() int {
	c.mustLive()
	return c.height
}

// Len returns the number of templates.
func (c *Canvas) Len() int {
	c.mustLive()
	return len(c.templates)
}

// Template returns the template at index i.
func (c *Canvas) Template(i int) (template.Template, error) {
	c.mustLive()
	if i < 0 || i >= len(c.templates) {
		return nil, fmt.Errorf("%w: %d of %d", item.ErrUnknownTemplate, i, len(c.templates))
	}
	return c.templates[i], nil
}

// Surface returns the drawing surface.
func (c *Canvas) Surface() paint.Surface {
	c.mustLive()
	return c.backing
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	c.mustLive()
	return c.backing.Image()
}

// FillBackground clears the whole surface to col.
func (c *Canvas) FillBackground(col paint.Color) {
	c.mustLive()
	c.backing.Clear(col)
}

// DrawLines draws the border and interior lines of every template in index
// order. Configuration errors stop drawing before the failing template
// touches the surface.
func (c *Canvas) DrawLines(o template.LineOptions) error {
	c.mustLive()
	for i, t := range c.templates {
		if err := template.DrawLines(t, c.backing, o); err != nil {
			return fmt.Errorf("canvas: template %d (%s): %w", i, t.Kind(), err)
		}
	}
	c.logger.Debug("lines drawn", "templates", len(c.templates))
	return nil
}

// DrawLinesWithIntersections fills the cells shared by two or more
// templates with fill, then draws lines as DrawLines does.
func (c *Canvas) DrawLinesWithIntersections(o template.LineOptions, fill paint.Color) error {
	c.mustLive()
	for _, t := range c.templates {
		if err := t.Guard(); err != nil {
			return fmt.Errorf("canvas: %w", err)
		}
	}

	seen := make(map[int]struct{})
	for _, in := range c.Intersections() {
		m := c.templates[in.First].Mapper()
		abs := m.ToAbsolute(in.FirstCell)
		if _, ok := seen[abs]; ok {
			continue
		}
		seen[abs] = struct{}{}
		c.backing.DrawRect(m.CellRect(abs), paint.Fill(fill))
	}
	c.logger.Debug("intersections filled", "cells", len(seen))
	return c.DrawLines(o)
}

// DrawItems draws every item of s in category order.
func (c *Canvas) DrawItems(s *item.Set) error {
	c.mustLive()
	if err := s.Draw(c); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	c.logger.Debug("items drawn", "count", s.Len())
	return nil
}

// Export writes the rendered image to path, choosing the format from its
// extension.
func (c *Canvas) Export(path string, q export.Quality) error {
	c.mustLive()
	if err := c.backing.Err(); err != nil {
		return fmt.Errorf("canvas: rasterizer: %w", err)
	}
	if err := export.WriteFile(path, c.backing.Image(), q); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	c.logger.Info("exported", "path", path, "width", c.width, "height", c.height)
	return nil
}

// Dispose releases the backing surface. Calling it twice panics, as does
// any other method after it.
func (c *Canvas) Dispose() error {
	c.mustLive()
	c.disposed = true
	if err := c.backing.Close(); err != nil {
		return fmt.Errorf("canvas: release surface: %w", err)
	}
	return nil
}

func (c *Canvas) mustLive() {
	if c.disposed {
		panic(ErrDisposed)
	}
}
