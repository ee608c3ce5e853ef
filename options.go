package subglyph

// SimulateOption configures [Simulate].
//
// Example:
//
//	// Preview without the final blur
//	img := subglyph.Simulate(packed, subglyph.WithBlurSigma(0))
type SimulateOption func(*simulateOptions)

// simulateOptions holds the preview pipeline settings.
type simulateOptions struct {
	upscale   int
	blurSigma float64
}

// Preview defaults.
const (
	// DefaultUpscale is the resampling factor applied after the
	// subpixel spread.
	DefaultUpscale = 3

	// DefaultBlurSigma is the Gaussian sigma of the final blur.
	DefaultBlurSigma = 1.0
)

func defaultSimulateOptions() simulateOptions {
	return simulateOptions{
		upscale:   DefaultUpscale,
		blurSigma: DefaultBlurSigma,
	}
}

// WithUpscale sets the Lanczos upscale factor. Values below 1 are treated
// as 1 (no resampling).
func WithUpscale(n int) SimulateOption {
	return func(o *simulateOptions) {
		o.upscale = max(n, 1)
	}
}

// WithBlurSigma sets the Gaussian blur sigma. Zero or negative disables
// the blur.
func WithBlurSigma(sigma float64) SimulateOption {
	return func(o *simulateOptions) {
		o.blurSigma = sigma
	}
}
