package subglyph

// Binarize maps a channel intensity to 0 when it is exactly 0 and to 255
// otherwise. The sheet is assumed to be pre-quantized, so there is no
// midpoint threshold.
func Binarize(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return 255
}
