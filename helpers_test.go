package subglyph

import (
	"image"
	"image/color"
	"sync"
	"testing"
)

// Test helper functions shared across package tests.

var (
	testSheetOnce sync.Once
	testSheet     *Sheet
	testSheetErr  error
)

// sheetPixel is the deterministic pattern of the synthetic sheet. Red is
// zero on roughly a third of the pixels; green and blue are noise that
// packing must ignore.
func sheetPixel(x, y int) color.NRGBA {
	red := uint8(0)
	if (x*7+y*13)%3 != 0 {
		red = uint8(1 + (x*31+y*17)%255)
	}
	return color.NRGBA{R: red, G: uint8(x ^ y), B: uint8(x + y), A: 255}
}

// newTestImage returns a full-size synthetic sheet image.
func newTestImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, SheetWidth, SheetHeight))
	for y := 0; y < SheetHeight; y++ {
		for x := 0; x < SheetWidth; x++ {
			img.SetNRGBA(x, y, sheetPixel(x, y))
		}
	}
	return img
}

// newTestSheet returns a shared synthetic sheet. Sheets are immutable, so
// tests may share one.
func newTestSheet(t testing.TB) *Sheet {
	t.Helper()
	testSheetOnce.Do(func() {
		testSheet, testSheetErr = NewSheet(newTestImage())
	})
	if testSheetErr != nil {
		t.Fatalf("NewSheet failed: %v", testSheetErr)
	}
	return testSheet
}

// assertOpaqueBlack fails if any pixel of r in img is not opaque black.
func assertOpaqueBlack(t *testing.T, img *image.NRGBA, r image.Rectangle) {
	t.Helper()
	black := color.NRGBA{A: 255}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c := img.NRGBAAt(x, y); c != black {
				t.Fatalf("pixel (%d,%d) = %+v, want opaque black", x, y, c)
			}
		}
	}
}

// assertSameRegion fails if img's pixels in r differ from want's pixels
// starting at want's origin.
func assertSameRegion(t *testing.T, img *image.NRGBA, r image.Rectangle, want *image.NRGBA) {
	t.Helper()
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			got := img.NRGBAAt(r.Min.X+x, r.Min.Y+y)
			w := want.NRGBAAt(want.Rect.Min.X+x, want.Rect.Min.Y+y)
			if got != w {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", r.Min.X+x, r.Min.Y+y, got, w)
			}
		}
	}
}
