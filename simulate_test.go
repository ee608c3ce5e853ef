package subglyph

import (
	"image"
	"image/color"
	"testing"
)

func TestSimulateDimensions(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{1, 1},
		{4, 12},
		{20, 36},
		{7, 3},
	}

	for _, tt := range tests {
		out := Simulate(image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h)))
		if got, want := out.Bounds(), image.Rect(0, 0, 9*tt.w, 9*tt.h); got != want {
			t.Errorf("Simulate(%dx%d) bounds = %v, want %v", tt.w, tt.h, got, want)
		}
	}
}

func TestSimulateEmpty(t *testing.T) {
	tests := []struct {
		w, h int
		want image.Rectangle
	}{
		{0, 12, image.Rect(0, 0, 0, 108)},
		{4, 0, image.Rect(0, 0, 36, 0)},
		{0, 0, image.Rect(0, 0, 0, 0)},
	}

	for _, tt := range tests {
		out := Simulate(image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h)))
		if got := out.Bounds(); got != tt.want {
			t.Errorf("Simulate(%dx%d) bounds = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestSimulateTransparentPixelsCarryNoColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	out := Simulate(src, WithBlurSigma(0))

	for y := 0; y < out.Rect.Dy(); y++ {
		for x := 0; x < out.Rect.Dx(); x++ {
			if c := out.NRGBAAt(x, y); c.A == 0 && c != (color.NRGBA{}) {
				t.Fatalf("pixel (%d,%d) = %+v, want transparent black", x, y, c)
			}
		}
	}
}

func TestClearTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{G: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 1})
	img.SetNRGBA(2, 0, color.NRGBA{R: 255, B: 9})

	clearTransparent(img)

	want := []color.NRGBA{{}, {R: 10, G: 20, B: 30, A: 1}, {}}
	for x, w := range want {
		if c := img.NRGBAAt(x, 0); c != w {
			t.Errorf("pixel %d = %+v, want %+v", x, c, w)
		}
	}
}

func TestSimulateSpread(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	out := Simulate(src, WithUpscale(1), WithBlurSigma(0))

	if got := out.Bounds(); got != image.Rect(0, 0, 6, 3) {
		t.Fatalf("bounds = %v, want 6x3", got)
	}
	want := []color.NRGBA{
		{R: 255, A: 255}, {G: 0, A: 255}, {B: 255, A: 255},
		{R: 10, A: 255}, {G: 20, A: 255}, {B: 30, A: 255},
	}
	for x, w := range want {
		if c := out.NRGBAAt(x, 0); c != w {
			t.Errorf("subpixel (%d,0) = %+v, want %+v", x, c, w)
		}
	}
	for y := 1; y < 3; y++ {
		for x := 0; x < 6; x++ {
			if c := out.NRGBAAt(x, y); c != (color.NRGBA{}) {
				t.Errorf("pixel (%d,%d) = %+v, want transparent black", x, y, c)
			}
		}
	}
}

func TestSimulateSpreadHonorsOrigin(t *testing.T) {
	full := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	full.SetNRGBA(3, 3, color.NRGBA{G: 200, A: 255})

	out := Simulate(full.SubImage(image.Rect(2, 2, 4, 4)), WithUpscale(1), WithBlurSigma(0))

	if c := out.NRGBAAt(4, 3); c != (color.NRGBA{G: 200, A: 255}) {
		t.Errorf("green subpixel = %+v, want {0 200 0 255}", c)
	}
}

func TestSimulateKeepsChannelsApart(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	src.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255})

	out := Simulate(src)

	var maxR uint8
	for i := 0; i < len(out.Pix); i += 4 {
		maxR = max(maxR, out.Pix[i])
		if out.Pix[i+1] != 0 || out.Pix[i+2] != 0 {
			t.Fatalf("green/blue leaked at byte %d: %v", i, out.Pix[i:i+4])
		}
	}
	if maxR == 0 {
		t.Error("red channel vanished from the preview")
	}
}

func TestSimulateBlackStaysBlack(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 12))
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
	}

	out := Simulate(src)

	var maxA uint8
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0 || out.Pix[i+1] != 0 || out.Pix[i+2] != 0 {
			t.Fatalf("color at byte %d: %v", i, out.Pix[i:i+4])
		}
		maxA = max(maxA, out.Pix[i+3])
	}
	if maxA == 0 {
		t.Error("preview is fully transparent")
	}
}

func TestSimulateOptions(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))

	if got := Simulate(src, WithUpscale(0)).Bounds(); got != image.Rect(0, 0, 6, 6) {
		t.Errorf("WithUpscale(0) bounds = %v, want 6x6", got)
	}
	if got := Simulate(src, WithUpscale(2)).Bounds(); got != image.Rect(0, 0, 12, 12) {
		t.Errorf("WithUpscale(2) bounds = %v, want 12x12", got)
	}
}

func BenchmarkSimulateGlyph(b *testing.B) {
	src := image.NewNRGBA(image.Rect(0, 0, PackedCellWidth, CellSize))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Simulate(src)
	}
}
