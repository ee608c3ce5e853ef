package subglyph

import (
	"image"
	"image/color"
)

// Pack compresses src horizontally by [SubpixelsPerPixel]. Output pixel
// (x, y) takes the red channel of source columns 3x, 3x+1 and 3x+2 at row
// y, binarizes each and stores them as its red, green and blue channels.
// Green and blue of the source are ignored. Trailing columns that do not
// fill a whole pixel are dropped.
//
// The result is opaque and has a zero origin.
func Pack(src image.Image) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx()/SubpixelsPerPixel, b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	red := redReader(src)
	for y := 0; y < h; y++ {
		sy := b.Min.Y + y
		for x := 0; x < w; x++ {
			sx := b.Min.X + x*SubpixelsPerPixel
			i := y*dst.Stride + x*4
			dst.Pix[i+0] = Binarize(red(sx, sy))
			dst.Pix[i+1] = Binarize(red(sx+1, sy))
			dst.Pix[i+2] = Binarize(red(sx+2, sy))
			dst.Pix[i+3] = 0xff
		}
	}
	return dst
}

// redReader returns a function reading the non-premultiplied red channel
// of img, with a fast path for *image.NRGBA.
func redReader(img image.Image) func(x, y int) uint8 {
	if n, ok := img.(*image.NRGBA); ok {
		return func(x, y int) uint8 { return n.Pix[n.PixOffset(x, y)] }
	}
	return func(x, y int) uint8 {
		return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).R
	}
}
