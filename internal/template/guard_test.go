package template

import (
	"testing"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
)

func TestDrawLinesGuardsBeforeDrawing(t *testing.T) {
	m := geometry.NewMapper(10, 0, geometry.NewGridSize(3, 3))
	bad := &Specified{
		base:     base{mapper: m},
		thick:    []geometry.LineSegment{{Cell: 0, Directions: geometry.AllDirections + 1}},
		bordered: true,
	}

	rec := paint.NewRecorder(30, 30)
	if err := DrawLines(bad, rec, DefaultLineOptions(10)); err == nil {
		t.Fatal("expected a configuration error")
	}
	if len(rec.Calls) != 0 {
		t.Errorf("guard failure issued %d draw calls", len(rec.Calls))
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n, root int
		square  bool
	}{
		{0, 0, true},
		{1, 1, true},
		{9, 3, true},
		{10, 3, false},
		{16, 4, true},
		{-4, 0, false},
	}
	for _, tc := range tests {
		root, ok := isqrt(tc.n)
		if root != tc.root || ok != tc.square {
			t.Errorf("isqrt(%d) = %d,%v, expected %d,%v", tc.n, root, ok, tc.root, tc.square)
		}
	}
}
