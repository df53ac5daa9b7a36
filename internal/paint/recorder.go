package paint

import (
	"image"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
)

// Op identifies a recorded draw call.
type Op uint8

const (
	OpLine Op = iota
	OpPath
	OpRect
	OpEllipse
	OpText
	OpClear
)

// String returns the string representation of an op.
func (o Op) String() string {
	switch o {
	case OpLine:
		return "line"
	case OpPath:
		return "path"
	case OpRect:
		return "rect"
	case OpEllipse:
		return "ellipse"
	case OpText:
		return "text"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Call is one recorded draw call. Only the fields relevant to Op are set.
type Call struct {
	Op    Op
	From  geometry.Point
	To    geometry.Point
	Path  Path
	Rect  geometry.Rect
	Text  string
	Align geometry.Alignment
	Font  Font
	Paint Paint
	Color Color // Clear color
}

// Recorder is a Backing that records draw calls instead of rasterizing.
// It is used to inspect what templates and items draw.
type Recorder struct {
	Width, Height int
	Calls         []Call
	closed        bool
}

var _ Backing = (*Recorder)(nil)

// NewRecorder creates a recorder reporting the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) DrawLine(from, to geometry.Point, p Paint) {
	r.Calls = append(r.Calls, Call{Op: OpLine, From: from, To: to, Paint: p})
}

func (r *Recorder) DrawPath(path Path, p Paint) {
	r.Calls = append(r.Calls, Call{Op: OpPath, Path: path, Paint: p})
}

func (r *Recorder) DrawRect(rect geometry.Rect, p Paint) {
	r.Calls = append(r.Calls, Call{Op: OpRect, Rect: rect, Paint: p})
}

func (r *Recorder) DrawEllipse(rect geometry.Rect, p Paint) {
	r.Calls = append(r.Calls, Call{Op: OpEllipse, Rect: rect, Paint: p})
}

func (r *Recorder) DrawText(s string, at geometry.Point, align geometry.Alignment, font Font, p Paint) {
	r.Calls = append(r.Calls, Call{Op: OpText, From: at, Text: s, Align: align, Font: font, Paint: p})
}

func (r *Recorder) Clear(c Color) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: c})
}

// Image returns a blank image of the recorder's size.
func (r *Recorder) Image() image.Image {
	return image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
}

// Err always returns nil.
func (r *Recorder) Err() error {
	return nil
}

// Close marks the recorder closed.
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	return r.closed
}

// Reset discards recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Count returns how many calls match op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the calls for which keep returns true.
func (r *Recorder) Filter(keep func(Call) bool) []Call {
	var out []Call
	for _, c := range r.Calls {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
