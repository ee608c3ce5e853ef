package subglyph

import (
	"image"
	"image/color"

	"github.com/disintegration/gift"

	"github.com/gogpu/subglyph/internal/filter"
)

// Simulate renders how src would look on an LCD with horizontal RGB
// subpixels. Any raster is accepted; the result is always NRGBA and
// (3·[DefaultUpscale])× the size of src in both directions with the default
// options.
//
// The pipeline:
//  1. Spread: source pixel (x, y) becomes three opaque pixels at
//     (3x, 3y), (3x+1, 3y), (3x+2, 3y) carrying only its red, green and
//     blue channel. Every other pixel stays transparent black.
//  2. Upscale with a 3-lobe Lanczos filter.
//  3. Gaussian blur.
func Simulate(src image.Image, opts ...SimulateOption) *image.NRGBA {
	o := defaultSimulateOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := spreadSubpixels(src)
	if out.Rect.Empty() {
		return image.NewNRGBA(image.Rect(0, 0, out.Rect.Dx()*o.upscale, out.Rect.Dy()*o.upscale))
	}

	if o.upscale > 1 {
		g := gift.New(gift.Resize(out.Rect.Dx()*o.upscale, out.Rect.Dy()*o.upscale, gift.LanczosResampling))
		up := image.NewNRGBA(g.Bounds(out.Rect))
		g.Draw(up, out)
		clearTransparent(up)
		out = up
	}

	out = filter.Gaussian(out, o.blurSigma)
	Logger().Debug("subpixel preview ready", "width", out.Rect.Dx(), "height", out.Rect.Dy())
	return out
}

// clearTransparent zeroes the color of fully transparent pixels. The
// resampler leaves unpremultiplied color behind at alpha 0, which the
// straight-alpha blur would otherwise spread into visible pixels.
func clearTransparent(img *image.NRGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i+3] == 0 {
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 0, 0, 0
		}
	}
}

// spreadSubpixels writes each source pixel's channels into three adjacent
// horizontal pixels of a raster SubpixelsPerPixel times larger.
func spreadSubpixels(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*SubpixelsPerPixel, b.Dy()*SubpixelsPerPixel))

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			dx, dy := x*SubpixelsPerPixel, y*SubpixelsPerPixel
			dst.SetNRGBA(dx, dy, color.NRGBA{R: c.R, A: 0xff})
			dst.SetNRGBA(dx+1, dy, color.NRGBA{G: c.G, A: 0xff})
			dst.SetNRGBA(dx+2, dy, color.NRGBA{B: c.B, A: 0xff})
		}
	}
	return dst
}
