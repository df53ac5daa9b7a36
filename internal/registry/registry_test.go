package registry

import (
	"errors"
	"testing"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/template"
)

func TestBuiltinsRegistered(t *testing.T) {
	kinds := []template.Kind{
		template.KindDefault, template.KindFormula, template.KindJigsaw,
		template.KindSpecified, template.KindStandard, template.KindSujiken,
	}
	list := List()
	if len(list) != len(kinds) {
		t.Fatalf("List() has %d kinds, expected %d", len(list), len(kinds))
	}
	for i, k := range kinds {
		if list[i].Kind != k {
			t.Errorf("List()[%d] = %s, expected %s (sorted)", i, list[i].Kind, k)
		}
		if list[i].Title == "" {
			t.Errorf("kind %s has no title", k)
		}
		if !Exists(k) {
			t.Errorf("Exists(%s) = false", k)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate kind did not panic")
		}
	}()
	Register(template.KindStandard, "again", newStandard)
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create(Definition{Kind: "hexagon", Rows: 9}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Create(hexagon) error = %v, expected ErrUnknownKind", err)
	}
}

func TestCreateEachKind(t *testing.T) {
	seed := int64(7)
	tests := []Definition{
		{Kind: template.KindStandard, Rows: 9},
		{Kind: template.KindStandard, Rows: 6, BlockRows: 2, BlockColumns: 3},
		{Kind: template.KindDefault, Rows: 4, Columns: 6, ThickBorder: true},
		{Kind: template.KindJigsaw, Rows: 4, Blocks: [][]int{
			{0, 1, 4, 5}, {2, 3, 6, 7}, {8, 9, 12, 13}, {10, 11, 14, 15},
		}},
		{Kind: template.KindJigsaw, Rows: 9, Seed: &seed, FillBlocks: true},
		{Kind: template.KindSpecified, Rows: 3, Bordered: true,
			Thick: []SegmentDef{{Cell: 4, Edges: "up|down|left|right"}},
			Thin:  []SegmentDef{{Cell: 0, Edges: "right"}}},
		{Kind: template.KindSujiken, Rows: 9},
		{Kind: template.KindFormula, Rows: 5, Placements: []PlacementDef{
			{Start: 0, Direction: "right", Length: 5},
			{Start: 0, Direction: "down", Length: 3},
		}},
	}
	for _, def := range tests {
		t.Run(string(def.Kind), func(t *testing.T) {
			tpl, err := Create(def)
			if err != nil {
				t.Fatalf("Create error: %v", err)
			}
			if tpl.Kind() != def.Kind {
				t.Errorf("Kind() = %s, expected %s", tpl.Kind(), def.Kind)
			}
		})
	}
}

func TestCreatePropagatesConfigErrors(t *testing.T) {
	_, err := Create(Definition{Kind: template.KindStandard, Rows: 10})
	if !errors.Is(err, template.ErrInvalidConfig) {
		t.Errorf("Create(10 rows) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestJigsawDefinitionErrors(t *testing.T) {
	seed := int64(1)
	tests := []struct {
		name string
		def  Definition
	}{
		{"no blocks or seed", Definition{Kind: template.KindJigsaw, Rows: 9}},
		{"not square", Definition{Kind: template.KindJigsaw, Rows: 9, Columns: 6, Seed: &seed}},
		{"not perfect square", Definition{Kind: template.KindJigsaw, Rows: 6, Seed: &seed}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Create(tt.def); !errors.Is(err, ErrBadDefinition) {
				t.Errorf("Create error = %v, expected ErrBadDefinition", err)
			}
		})
	}
}

func TestGeneratedJigsawIsDeterministic(t *testing.T) {
	seed := int64(99)
	def := Definition{Kind: template.KindJigsaw, Rows: 9, Seed: &seed}
	a, err := Create(def)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Create(def)
	if err != nil {
		t.Fatal(err)
	}
	ab, bb := a.(*template.Jigsaw).Blocks(), b.(*template.Jigsaw).Blocks()
	for i := range ab {
		if len(ab[i]) != 9 {
			t.Fatalf("block %d has %d cells", i, len(ab[i]))
		}
		for j := range ab[i] {
			if ab[i][j] != bb[i][j] {
				t.Fatalf("block %d differs between runs", i)
			}
		}
	}
}

func TestDefinitionMapperDefaults(t *testing.T) {
	m := Definition{Rows: 9}.Mapper()
	if m.CellSize != DefaultCellSize || m.Margin != DefaultMargin {
		t.Errorf("mapper = %v, expected default cell size and margin", m)
	}
	if m.Size.Columns != 9 {
		t.Errorf("Columns = %d, expected to default to Rows", m.Size.Columns)
	}

	zero := 0.0
	m = Definition{Rows: 4, Columns: 6, CellSize: 20, Margin: &zero, Padding: geometry.Uniform(1)}.Mapper()
	if m.Margin != 0 || m.CellSize != 20 || m.Size.AbsoluteColumns() != 8 {
		t.Errorf("mapper = %v", m)
	}
}

func TestParseEdges(t *testing.T) {
	tests := []struct {
		in      string
		want    geometry.Direction
		wantErr bool
	}{
		{"up", geometry.Up, false},
		{"up|left", geometry.Up | geometry.Left, false},
		{"Down | Right", geometry.Down | geometry.Right, false},
		{"up|diagonal", geometry.None, true},
		{"", geometry.None, true},
	}
	for _, tt := range tests {
		got, err := ParseEdges(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEdges(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEdges(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}
