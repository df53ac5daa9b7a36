// Package export encodes rendered images to files by extension.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/bmp"
)

var (
	ErrUnknownFormat      = errors.New("unknown image format")
	ErrEncoderUnavailable = errors.New("no encoder available for format")
)

// Format is an output image format.
type Format uint8

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatGIF
	FormatBMP
	FormatWebP
)

// String returns the string representation of a format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	case FormatWebP:
		return "webp"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// Available reports whether Encode can write the format.
func (f Format) Available() bool {
	return f <= FormatBMP
}

var extensions = map[string]Format{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".webp": FormatWebP,
}

// FormatFromPath maps a file extension, case-insensitively, to a format.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extensions[ext]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return f, nil
}

// Quality holds per-format encoder settings. Zero fields select defaults.
type Quality struct {
	JPEG      int `yaml:"jpeg"`       // 1-100
	GIFColors int `yaml:"gif_colors"` // 1-256
}

const (
	defaultJPEGQuality = 90
	defaultGIFColors   = 256
)

func (q Quality) jpeg() int {
	if q.JPEG <= 0 || q.JPEG > 100 {
		return defaultJPEGQuality
	}
	return q.JPEG
}

func (q Quality) gifColors() int {
	if q.GIFColors <= 0 || q.GIFColors > 256 {
		return defaultGIFColors
	}
	return q.GIFColors
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format, q Quality) error {
	switch f {
	case FormatPNG, FormatJPEG:
		dc := gg.NewContextForImage(img)
		defer dc.Close()
		if f == FormatPNG {
			return dc.EncodePNG(w)
		}
		return dc.EncodeJPEG(w, q.jpeg())
	case FormatGIF:
		return gif.Encode(w, img, &gif.Options{NumColors: q.gifColors()})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatWebP:
		return fmt.Errorf("%w: %s", ErrEncoderUnavailable, f)
	default:
		panic(fmt.Sprintf("export: undefined format %d", f))
	}
}

// WriteFile encodes img into path, choosing the format from the extension.
// Parent directories are created as needed.
func WriteFile(path string, img image.Image, q Quality) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if !f.Available() {
		return fmt.Errorf("export: %w: %s", ErrEncoderUnavailable, f)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close file: %w", cerr)
		}
	}()

	if err := Encode(file, img, f, q); err != nil {
		return fmt.Errorf("export: encode %s: %w", f, err)
	}
	return nil
}
