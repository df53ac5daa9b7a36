// Package geometry maps between logical puzzle cells and pixel geometry.
// It has no external dependencies so the template, item and canvas layers
// can share it without import cycles.
package geometry

import (
	"fmt"
	"strings"
)

// Direction is a bit set of cell edges.
type Direction uint8

const (
	Up Direction = 1 << iota
	Down
	Left
	Right
)

// None is the empty direction set; AllDirections has every edge set.
const (
	None          Direction = 0
	AllDirections           = Up | Down | Left | Right
)

// Directions lists the single directions in canonical order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Valid reports whether d only uses the four edge bits.
func (d Direction) Valid() bool {
	return d&^AllDirections == 0
}

// Has reports whether every bit of other is set in d.
func (d Direction) Has(other Direction) bool {
	return d&other == other
}

// Single reports whether d is exactly one of Up, Down, Left, Right.
func (d Direction) Single() bool {
	return d == Up || d == Down || d == Left || d == Right
}

// Opposite returns the opposite of a single direction.
// Panics if d is not a single direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		panic(fmt.Sprintf("geometry: opposite of non-single direction %v", d))
	}
}

// Delta returns the (row, column) step for a single direction.
// Panics if d is not a single direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		panic(fmt.Sprintf("geometry: delta of non-single direction %v", d))
	}
}

// String returns the names of the set bits joined by '|'.
func (d Direction) String() string {
	if d == None {
		return "None"
	}
	var parts []string
	for _, s := range Directions {
		if d&s != 0 {
			parts = append(parts, singleName(s))
		}
	}
	if rest := d &^ AllDirections; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

func singleName(d Direction) string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Right"
	}
}

// ParseDirection parses a direction name ("up", "down", "left", "right").
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	default:
		return None, false
	}
}

// DirectionVector holds padding counts on each side of the logical grid.
type DirectionVector struct {
	Up    int `yaml:"up"`
	Down  int `yaml:"down"`
	Left  int `yaml:"left"`
	Right int `yaml:"right"`
}

// ZeroVector is the vector with no padding.
var ZeroVector = DirectionVector{}

// IsZero reports whether all four counts are zero.
func (v DirectionVector) IsZero() bool {
	return v == ZeroVector
}

// Add returns the component-wise sum of two vectors.
func (v DirectionVector) Add(other DirectionVector) DirectionVector {
	return DirectionVector{
		Up:    v.Up + other.Up,
		Down:  v.Down + other.Down,
		Left:  v.Left + other.Left,
		Right: v.Right + other.Right,
	}
}

// Valid reports whether no component is negative.
func (v DirectionVector) Valid() bool {
	return v.Up >= 0 && v.Down >= 0 && v.Left >= 0 && v.Right >= 0
}

// Uniform returns a vector with n on every side.
func Uniform(n int) DirectionVector {
	return DirectionVector{Up: n, Down: n, Left: n, Right: n}
}
