package filter

import (
	"image"
)

// Gaussian returns a copy of src blurred with a separable Gaussian of the
// given sigma. Channels are convolved independently on their stored
// (non-premultiplied) values, and samples outside the image are clamped
// to the nearest edge pixel.
//
// The two-pass algorithm runs in O(w*h*k) instead of O(w*h*k²):
//  1. Horizontal pass: convolve each row into a float buffer
//  2. Vertical pass: convolve each column of the buffer into dst
func Gaussian(src *image.NRGBA, sigma float64) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if b.Empty() {
		return dst
	}

	if sigma <= 0 {
		for y := 0; y < b.Dy(); y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Dx()*4], src.Pix[si:si+b.Dx()*4])
		}
		return dst
	}

	kernel := GaussianKernel(sigma)
	temp := make([]float32, b.Dx()*b.Dy()*4)

	blurHorizontal(src, temp, kernel)
	blurVertical(temp, dst, kernel)

	return dst
}

// blurHorizontal applies 1D horizontal convolution from src into temp.
func blurHorizontal(src *image.NRGBA, temp []float32, kernel []float32) {
	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]

		for x := 0; x < width; x++ {
			var r, g, bl, a float32

			for k, weight := range kernel {
				kx := clampInt(x+k-half, 0, width-1)
				i := kx * 4

				r += float32(row[i+0]) * weight
				g += float32(row[i+1]) * weight
				bl += float32(row[i+2]) * weight
				a += float32(row[i+3]) * weight
			}

			ti := (y*width + x) * 4
			temp[ti+0] = r
			temp[ti+1] = g
			temp[ti+2] = bl
			temp[ti+3] = a
		}
	}
}

// blurVertical applies 1D vertical convolution from temp into dst.
func blurVertical(temp []float32, dst *image.NRGBA, kernel []float32) {
	width, height := dst.Rect.Dx(), dst.Rect.Dy()
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, height-1)
				ti := (ky*width + x) * 4

				r += temp[ti+0] * weight
				g += temp[ti+1] * weight
				b += temp[ti+2] * weight
				a += temp[ti+3] * weight
			}

			di := y*dst.Stride + x*4
			dst.Pix[di+0] = clampUint8(r)
			dst.Pix[di+1] = clampUint8(g)
			dst.Pix[di+2] = clampUint8(b)
			dst.Pix[di+3] = clampUint8(a)
		}
	}
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
