// Package filter provides the blur used to soften simulated subpixel
// previews.
//
// The blur is a separable Gaussian over *image.NRGBA:
//   - Kernel size 2*ceil(3σ)+1, normalized to sum 1
//   - Edge extension (clamped sampling) at the image borders
//   - Channels filtered independently, alpha included
package filter
