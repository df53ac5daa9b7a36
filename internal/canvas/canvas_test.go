package canvas_test

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/canvas"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/export"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/item"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/template"
)

func standard(t *testing.T, pad geometry.DirectionVector) template.Template {
	t.Helper()
	size := geometry.NewGridSize(9, 9)
	size.Padding = pad
	st, err := template.NewStandard(geometry.NewMapper(10, 5, size), 0, 0)
	if err != nil {
		t.Fatalf("NewStandard: %v", err)
	}
	return st
}

// recorded builds a canvas over a recorder and returns both.
func recorded(t *testing.T, templates ...template.Template) (*canvas.Canvas, *paint.Recorder) {
	t.Helper()
	var rec *paint.Recorder
	c, err := canvas.New(templates, canvas.Options{
		Surface: func(w, h int) paint.Backing {
			rec = paint.NewRecorder(w, h)
			return rec
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, rec
}

func TestNewSizesToLargestExtent(t *testing.T) {
	c, rec := recorded(t,
		standard(t, geometry.DirectionVector{}),
		standard(t, geometry.DirectionVector{Up: 6, Left: 6}),
	)
	// 15 absolute cells of 10px plus a 5px margin on each side.
	if c.Width() != 160 || c.Height() != 160 {
		t.Errorf("size = %dx%d, expected 160x160", c.Width(), c.Height())
	}
	if rec.Width != 160 || rec.Height != 160 {
		t.Errorf("surface = %dx%d, expected 160x160", rec.Width, rec.Height)
	}
}

func TestNewRequiresTemplates(t *testing.T) {
	if _, err := canvas.New(nil, canvas.Options{}); !errors.Is(err, canvas.ErrNoTemplates) {
		t.Errorf("New(nil) error = %v, expected ErrNoTemplates", err)
	}
}

func TestIntersections(t *testing.T) {
	c, _ := recorded(t,
		standard(t, geometry.DirectionVector{}),
		standard(t, geometry.DirectionVector{Up: 6, Left: 6}),
	)
	got := c.Intersections()
	if len(got) != 9 {
		t.Fatalf("found %d intersections, expected 9", len(got))
	}
	want := canvas.Intersection{First: 0, Second: 1, FirstCell: 60, SecondCell: 0}
	if got[0] != want {
		t.Errorf("first intersection = %+v, expected %+v", got[0], want)
	}
	if last := got[8]; last.FirstCell != 80 || last.SecondCell != 20 {
		t.Errorf("last intersection = %+v", last)
	}
}

func TestIntersectionsDisjoint(t *testing.T) {
	c, _ := recorded(t,
		standard(t, geometry.DirectionVector{}),
		standard(t, geometry.DirectionVector{Left: 9}),
	)
	if n := len(c.Intersections()); n != 0 {
		t.Errorf("disjoint templates share %d cells", n)
	}
}

func TestDrawLinesWithIntersections(t *testing.T) {
	c, rec := recorded(t,
		standard(t, geometry.DirectionVector{}),
		standard(t, geometry.DirectionVector{Up: 6, Left: 6}),
	)
	fill := paint.RGB(255, 240, 200)
	if err := c.DrawLinesWithIntersections(template.DefaultLineOptions(10), fill); err != nil {
		t.Fatalf("DrawLinesWithIntersections: %v", err)
	}
	for i := range 9 {
		call := rec.Calls[i]
		if call.Op != paint.OpRect || call.Paint.Style != paint.StyleFill || call.Paint.Color != fill {
			t.Fatalf("call %d = %+v, expected an intersection fill", i, call)
		}
	}
	// Cell (6,6) of the first template sits at 5 + 6*10.
	if r := rec.Calls[0].Rect; r.X != 65 || r.Y != 65 {
		t.Errorf("first fill at %v,%v, expected 65,65", r.X, r.Y)
	}
	// Each 9x9 template draws 16 interior lines.
	if n := rec.Count(paint.OpLine); n != 32 {
		t.Errorf("drew %d lines, expected 32", n)
	}
}

func TestDrawItemsUsesTemplateIndex(t *testing.T) {
	c, rec := recorded(t,
		standard(t, geometry.DirectionVector{}),
		standard(t, geometry.DirectionVector{Up: 6, Left: 6}),
	)
	s := item.NewSet(item.CellFill{Template: 1, Cell: 0, Color: paint.Black})
	if err := c.DrawItems(s); err != nil {
		t.Fatalf("DrawItems: %v", err)
	}
	if r := rec.Calls[0].Rect; r.X != 65 || r.Y != 65 {
		t.Errorf("cell 0 of template 1 at %v,%v, expected 65,65", r.X, r.Y)
	}

	bad := item.NewSet(item.CellFill{Template: 2, Cell: 0})
	if err := c.DrawItems(bad); !errors.Is(err, item.ErrUnknownTemplate) {
		t.Errorf("DrawItems error = %v, expected ErrUnknownTemplate", err)
	}
}

func TestDisposeTwicePanics(t *testing.T) {
	c, rec := recorded(t, standard(t, geometry.DirectionVector{}))
	if err := c.Dispose(); err != nil {
		t.Fatalf("Dispose: %v", err)
	}
	if !rec.Closed() {
		t.Error("Dispose did not close the surface")
	}
	defer func() {
		if r := recover(); r != canvas.ErrDisposed {
			t.Errorf("second Dispose panicked with %v, expected ErrDisposed", r)
		}
	}()
	_ = c.Dispose()
}

func TestUseAfterDisposePanics(t *testing.T) {
	ops := map[string]func(*canvas.Canvas){
		"FillBackground": func(c *canvas.Canvas) { c.FillBackground(paint.White) },
		"DrawLines":      func(c *canvas.Canvas) { _ = c.DrawLines(template.DefaultLineOptions(10)) },
		"DrawItems":      func(c *canvas.Canvas) { _ = c.DrawItems(item.NewSet()) },
		"Intersections":  func(c *canvas.Canvas) { c.Intersections() },
		"Export":         func(c *canvas.Canvas) { _ = c.Export("x.png", export.Quality{}) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			c, _ := recorded(t, standard(t, geometry.DirectionVector{}))
			_ = c.Dispose()
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s after Dispose did not panic", name)
				}
			}()
			op(c)
		})
	}
}

func TestRenderAndExport(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	c, err := canvas.New([]template.Template{standard(t, geometry.DirectionVector{})}, canvas.Options{Logger: logger})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Dispose()

	c.FillBackground(paint.White)
	if err := c.DrawLines(template.DefaultLineOptions(10)); err != nil {
		t.Fatalf("DrawLines: %v", err)
	}
	if err := c.DrawItems(item.NewSet(item.Given{Cell: 40, Text: "5", Color: paint.Black})); err != nil {
		t.Fatalf("DrawItems: %v", err)
	}

	path := filepath.Join(t.TempDir(), "grid.png")
	if err := c.Export(path, export.Quality{}); err != nil {
		t.Fatalf("Export: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("exported %v, expected 100x100", b)
	}
	if !strings.Contains(logs.String(), "canvas created") {
		t.Errorf("debug log missing creation entry: %q", logs.String())
	}
}

func TestExportUnknownFormat(t *testing.T) {
	c, _ := recorded(t, standard(t, geometry.DirectionVector{}))
	err := c.Export(filepath.Join(t.TempDir(), "grid.tiff"), export.Quality{})
	if !errors.Is(err, export.ErrUnknownFormat) {
		t.Errorf("Export error = %v, expected ErrUnknownFormat", err)
	}
}

func TestLayer(t *testing.T) {
	c, rec := recorded(t,
		standard(t, geometry.DirectionVector{}),
		standard(t, geometry.DirectionVector{Up: 6, Left: 6}),
	)
	given := item.Given{Cell: 0, Text: "1"}
	base := item.NewSet(given)
	fill := paint.Yellow

	layered := c.Layer(base, template.DefaultLineOptions(10), &fill)
	if base.Len() != 1 {
		t.Error("Layer() modified its input")
	}
	if n := len(collect(layered, item.CategoryCellFill)); n != 9 {
		t.Errorf("layered %d intersection fills, expected 9", n)
	}
	if n := len(collect(layered, item.CategoryTemplateLines)); n != 2 {
		t.Errorf("layered %d template lines, expected 2", n)
	}

	if err := c.DrawItems(layered); err != nil {
		t.Fatalf("DrawItems: %v", err)
	}
	if rec.Calls[0].Paint.Color != fill {
		t.Error("intersection fills did not draw first")
	}
	if last := rec.Calls[len(rec.Calls)-1]; last.Op != paint.OpText {
		t.Errorf("last call = %v, expected the given text on top", last.Op)
	}

	if n := len(collect(c.Layer(base, template.DefaultLineOptions(10), nil), item.CategoryCellFill)); n != 0 {
		t.Errorf("nil fill layered %d fills", n)
	}
}

func collect(s *item.Set, c item.Category) []item.Item {
	var out []item.Item
	for it := range s.InCategory(c) {
		out = append(out, it)
	}
	return out
}
