package filter

import (
	"image"
	"image/color"
)

// Test helper functions shared across filter tests.

// filled returns a w×h image filled with c.
func filled(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// nearlyEqual compares two colors channel by channel with tolerance.
func nearlyEqual(a, b color.NRGBA, tolerance int) bool {
	return absInt(int(a.R)-int(b.R)) <= tolerance &&
		absInt(int(a.G)-int(b.G)) <= tolerance &&
		absInt(int(a.B)-int(b.B)) <= tolerance &&
		absInt(int(a.A)-int(b.A)) <= tolerance
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
