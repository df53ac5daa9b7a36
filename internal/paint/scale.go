package paint

import (
	"errors"
	"fmt"
)

// ErrScaleOutOfRange is returned when a scale ratio is outside [0, 1].
var ErrScaleOutOfRange = errors.New("scale must be between 0 and 1")

// Scale is a ratio of the cell size.
type Scale float64

// NewScale validates and returns a scale.
func NewScale(ratio float64) (Scale, error) {
	if ratio < 0 || ratio > 1 {
		return 0, fmt.Errorf("%w: got %g", ErrScaleOutOfRange, ratio)
	}
	return Scale(ratio), nil
}

// MustScale is like NewScale but panics on an out-of-range ratio.
// Use only with constants.
func MustScale(ratio float64) Scale {
	s, err := NewScale(ratio)
	if err != nil {
		panic(err)
	}
	return s
}

// Measure converts the ratio into pixels for the given cell size.
func (s Scale) Measure(cellSize float64) float64 {
	return float64(s) * cellSize
}
