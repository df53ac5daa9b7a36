package paint

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
	}{
		{"black", Black},
		{"White", White},
		{" skyblue ", SkyBlue},
		{"#ff0000", RGB(255, 0, 0)},
		{"#0f0", RGB(0, 255, 0)},
		{"#00000080", Color{A: 0x80}},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestParseColorRejectsUnknown(t *testing.T) {
	for _, in := range []string{"chartreuse-ish", "#12", "#zzzzzz", ""} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}

func TestPaletteWraps(t *testing.T) {
	n := len(BlockPalette)
	if n == 0 {
		t.Fatal("palette is empty")
	}
	if PaletteColor(n) != PaletteColor(0) || PaletteColor(-1) != PaletteColor(n-1) {
		t.Error("PaletteColor should wrap modulo palette size")
	}
	seen := make(map[Color]bool)
	for _, c := range BlockPalette {
		if c.A != 255 {
			t.Errorf("palette color %v should be opaque", c)
		}
		seen[c] = true
	}
	if len(seen) != n {
		t.Errorf("palette has %d distinct colors, expected %d", len(seen), n)
	}
}

func TestScale(t *testing.T) {
	s, err := NewScale(0.25)
	if err != nil {
		t.Fatalf("NewScale(0.25) error: %v", err)
	}
	if got := s.Measure(60); got != 15 {
		t.Errorf("Measure(60) = %g, expected 15", got)
	}

	for _, bad := range []float64{-0.1, 1.5} {
		if _, err := NewScale(bad); !errors.Is(err, ErrScaleOutOfRange) {
			t.Errorf("NewScale(%g) error = %v, expected ErrScaleOutOfRange", bad, err)
		}
	}
}
