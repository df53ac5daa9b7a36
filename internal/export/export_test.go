package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := range 6 {
		for x := range 8 {
			img.Set(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 40), B: 200, A: 255})
		}
	}
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.png", FormatPNG},
		{"out.PNG", FormatPNG},
		{"dir/out.jpg", FormatJPEG},
		{"out.jpeg", FormatJPEG},
		{"out.gif", FormatGIF},
		{"out.bmp", FormatBMP},
		{"out.webp", FormatWebP},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if err != nil {
				t.Fatalf("FormatFromPath(%q) error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, expected %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatFromPathUnknown(t *testing.T) {
	for _, path := range []string{"out.tiff", "out", "out.png.bak"} {
		if _, err := FormatFromPath(path); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("FormatFromPath(%q) error = %v, expected ErrUnknownFormat", path, err)
		}
	}
}

func TestEncodeDecodes(t *testing.T) {
	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		FormatPNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		FormatJPEG: func(r *bytes.Reader) (image.Image, error) { return jpeg.Decode(r) },
		FormatGIF:  func(r *bytes.Reader) (image.Image, error) { return gif.Decode(r) },
		FormatBMP:  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
	}
	for f, decode := range decoders {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, testImage(), f, Quality{}); err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			img, err := decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("decode error: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
				t.Errorf("decoded bounds = %v, expected 8x6", b)
			}
		})
	}
}

func TestEncodeWebPUnavailable(t *testing.T) {
	err := Encode(&bytes.Buffer{}, testImage(), FormatWebP, Quality{})
	if !errors.Is(err, ErrEncoderUnavailable) {
		t.Errorf("Encode(webp) error = %v, expected ErrEncoderUnavailable", err)
	}
}

func TestQualityDefaults(t *testing.T) {
	if q := (Quality{}).jpeg(); q != defaultJPEGQuality {
		t.Errorf("jpeg() = %d", q)
	}
	if q := (Quality{JPEG: 101}).jpeg(); q != defaultJPEGQuality {
		t.Errorf("jpeg() out of range = %d", q)
	}
	if q := (Quality{JPEG: 40}).jpeg(); q != 40 {
		t.Errorf("jpeg() = %d, expected 40", q)
	}
	if n := (Quality{GIFColors: 16}).gifColors(); n != 16 {
		t.Errorf("gifColors() = %d, expected 16", n)
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "grid.png")
	if err := WriteFile(path, testImage(), Quality{}); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("written file is empty")
	}
}

func TestWriteFileUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.tiff")
	if err := WriteFile(path, testImage(), Quality{}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("WriteFile error = %v, expected ErrUnknownFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file was created for an unknown format")
	}
}

func TestWriteFileWebPLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.webp")
	if err := WriteFile(path, testImage(), Quality{}); !errors.Is(err, ErrEncoderUnavailable) {
		t.Errorf("WriteFile error = %v, expected ErrEncoderUnavailable", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file was created for an unavailable encoder")
	}
}
