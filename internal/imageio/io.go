// Package imageio loads sprite sheets and writes rendered rasters.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file extension names a format
	// that cannot be decoded.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Load loads an image from the given file path. The decoder is chosen by
// extension (PNG, JPEG, BMP, TIFF); files without a known extension are
// sniffed from their content.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return decodeWith("PNG", png.Decode, f)
	case ".jpg", ".jpeg":
		return decodeWith("JPEG", jpeg.Decode, f)
	case ".bmp":
		return decodeWith("BMP", bmp.Decode, f)
	case ".tif", ".tiff":
		return decodeWith("TIFF", tiff.Decode, f)
	case ".gif", ".webp":
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	default:
		return Decode(f)
	}
}

// LoadFromBytes decodes an image from a byte slice, auto-detecting the format.
func LoadFromBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return img, nil
}

func decodeWith(name string, decode func(io.Reader) (image.Image, error), r io.Reader) (image.Image, error) {
	img, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", name, err)
	}
	return img, nil
}

// SavePNG writes img to path as a PNG file, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes img as PNG to the given writer.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return nil
}

// ToNRGBA returns img as a zero-origin *image.NRGBA. The result never
// aliases img's pixels.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	// Fast path for NRGBA images. Row copies also keep the color of fully
	// transparent pixels, which a premultiplied draw would zero.
	if src, ok := img.(*image.NRGBA); ok {
		for y := range b.Dy() {
			start := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], src.Pix[start:start+b.Dx()*4])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
