package paint

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/geometry"
)

// fontData holds the embedded TrueType data per family.
var fontData = map[FontFamily][]byte{
	FontRegular: goregular.TTF,
	FontBold:    gobold.TTF,
	FontItalic:  goitalic.TTF,
	FontMono:    gomono.TTF,
}

// ImageSurface is a Backing that rasterizes into a gg drawing context.
type ImageSurface struct {
	dc      *gg.Context
	sources map[FontFamily]*text.FontSource
	faces   map[Font]text.Face
	err     error
}

var _ Backing = (*ImageSurface)(nil)

// NewImageSurface creates a surface with the given pixel dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{
		dc:      gg.NewContext(width, height),
		sources: make(map[FontFamily]*text.FontSource),
		faces:   make(map[Font]text.Face),
	}
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int {
	return s.dc.Width()
}

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int {
	return s.dc.Height()
}

// DrawLine strokes a straight line.
func (s *ImageSurface) DrawLine(from, to geometry.Point, p Paint) {
	s.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	s.finish(p)
}

// DrawPath strokes or fills a polyline.
func (s *ImageSurface) DrawPath(path Path, p Paint) {
	if len(path.Points) == 0 {
		return
	}
	first := path.Points[0]
	s.dc.MoveTo(first.X, first.Y)
	for _, pt := range path.Points[1:] {
		s.dc.LineTo(pt.X, pt.Y)
	}
	if path.Closed {
		s.dc.ClosePath()
	}
	s.finish(p)
}

// DrawRect strokes or fills a rectangle.
func (s *ImageSurface) DrawRect(r geometry.Rect, p Paint) {
	s.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	s.finish(p)
}

// DrawEllipse strokes or fills the ellipse inscribed in r.
func (s *ImageSurface) DrawEllipse(r geometry.Rect, p Paint) {
	c := r.Center()
	s.dc.DrawEllipse(c.X, c.Y, r.W/2, r.H/2)
	s.finish(p)
}

// DrawText draws s anchored at the given point.
func (s *ImageSurface) DrawText(str string, at geometry.Point, align geometry.Alignment, font Font, p Paint) {
	face, err := s.face(font)
	if err != nil {
		s.setErr(err)
		return
	}
	ax, ay := align.Anchor()
	s.dc.SetFont(face)
	s.dc.SetColor(p.Color.RGBA())
	s.dc.DrawStringAnchored(str, at.X, at.Y, ax, ay)
}

// Clear fills the whole surface with c.
func (s *ImageSurface) Clear(c Color) {
	s.dc.ClearWithColor(gg.FromColor(c.RGBA()))
}

// Image returns the rendered pixels.
func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the surface as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// EncodeJPEG writes the surface as JPEG with the given quality (1-100).
func (s *ImageSurface) EncodeJPEG(w io.Writer, quality int) error {
	return s.dc.EncodeJPEG(w, quality)
}

// Err returns the first error reported by the rasterizer.
func (s *ImageSurface) Err() error {
	return s.err
}

// Close releases the drawing context and any loaded fonts.
func (s *ImageSurface) Close() error {
	var errs []error
	for _, src := range s.sources {
		if err := src.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.sources, s.faces = nil, nil
	if err := s.dc.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// finish applies p and strokes or fills the current path.
func (s *ImageSurface) finish(p Paint) {
	s.dc.SetColor(p.Color.RGBA())
	if p.Style == StyleFill {
		s.setErr(s.dc.Fill())
		return
	}
	s.dc.SetLineWidth(p.Width)
	if len(p.Dash) > 0 {
		s.dc.SetDash(p.Dash...)
	} else {
		s.dc.ClearDash()
	}
	s.setErr(s.dc.Stroke())
}

func (s *ImageSurface) setErr(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// face returns a cached face for the font, loading its source on first use.
func (s *ImageSurface) face(font Font) (text.Face, error) {
	if f, ok := s.faces[font]; ok {
		return f, nil
	}
	family := font.Family
	if family == "" {
		family = FontRegular
	}
	src, ok := s.sources[family]
	if !ok {
		data, known := fontData[family]
		if !known {
			return nil, fmt.Errorf("paint: unknown font family %q", family)
		}
		var err error
		src, err = text.NewFontSource(data)
		if err != nil {
			return nil, fmt.Errorf("paint: loading font %q: %w", family, err)
		}
		s.sources[family] = src
	}
	f := src.Face(font.Size)
	s.faces[font] = f
	return f, nil
}
