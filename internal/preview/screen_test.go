package preview

import (
	"strings"
	"testing"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/canvas"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/item"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/template"
)

var (
	light = paint.Stroke(paint.Black, 0.1)
	heavy = paint.Stroke(paint.Black, 1)
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(16, 16, 8)

	if s.Width() != 9 {
		t.Errorf("Width() = %d, expected 9", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, expected 5", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenRect(t *testing.T) {
	s := NewScreen(16, 16, 8)
	s.DrawRect(geometry.Rect{W: 8, H: 8}, light)

	want := []string{"┌───┐", "│   │", "└───┘"}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenLinesJoin(t *testing.T) {
	s := NewScreen(16, 16, 8)
	s.DrawLine(geometry.Pt(0, 4), geometry.Pt(16, 4), light)
	s.DrawLine(geometry.Pt(8, 16), geometry.Pt(8, 0), light)

	if got := s.Get(4, 1); got != '┼' {
		t.Errorf("crossing = %q, expected '┼'", got)
	}
	if got := s.Get(0, 1); got != '╶' {
		t.Errorf("line start = %q, expected '╶'", got)
	}
}

func TestScreenHeavyLines(t *testing.T) {
	s := NewScreen(16, 16, 8)
	s.DrawLine(geometry.Pt(0, 4), geometry.Pt(16, 4), heavy)
	if got := s.Get(3, 1); got != '━' {
		t.Errorf("heavy line = %q, expected '━'", got)
	}
}

func TestScreenSkipsFillsAndDiagonals(t *testing.T) {
	s := NewScreen(16, 16, 8)
	s.DrawRect(geometry.Rect{W: 8, H: 8}, paint.Fill(paint.Black))
	s.DrawLine(geometry.Pt(0, 0), geometry.Pt(16, 16), light)
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("expected a blank screen, got\n%s", s.String())
	}
}

func TestScreenTextOverLines(t *testing.T) {
	s := NewScreen(16, 16, 8)
	s.DrawLine(geometry.Pt(0, 4), geometry.Pt(16, 4), light)
	s.DrawText("12", geometry.Pt(4, 4), geometry.AlignCenter, paint.Font{}, paint.Fill(paint.Black))

	if got := s.Row(1); got != "╶12─────╴" {
		t.Errorf("Row(1) = %q", got)
	}

	s.DrawText("x", geometry.Pt(100, 100), geometry.AlignCenter, paint.Font{}, paint.Fill(paint.Black))
	s.Clear(paint.White)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Clear() left content behind")
	}
}

func TestScreenAsCanvasSurface(t *testing.T) {
	st, err := template.NewStandard(geometry.NewMapper(8, 0, geometry.NewGridSize(4, 4)), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	var screen *Screen
	c, err := canvas.New([]template.Template{st}, canvas.Options{
		Surface: func(w, h int) paint.Backing {
			screen = NewScreen(w, h, 8)
			return screen
		},
	})
	if err != nil {
		t.Fatalf("canvas.New: %v", err)
	}
	defer c.Dispose()

	if err := c.DrawLines(template.DefaultLineOptions(8)); err != nil {
		t.Fatalf("DrawLines: %v", err)
	}
	if err := c.DrawItems(item.NewSet(item.Given{Cell: 0, Text: "5"})); err != nil {
		t.Fatalf("DrawItems: %v", err)
	}

	if got, want := screen.Row(0), "┏━━━┳━━━┳━━━┳━━━┓"; got != want {
		t.Errorf("top row = %q, expected %q", got, want)
	}
	if got := screen.Get(8, 4); got != '╋' {
		t.Errorf("block crossing = %q, expected '╋'", got)
	}
	if got := screen.Get(2, 1); got != '5' {
		t.Errorf("given at cell 0 = %q, expected '5'", got)
	}
}
