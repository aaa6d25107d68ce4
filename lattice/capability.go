package lattice

// Optional payload capabilities. The substrate never requires these;
// renderers and exporters discover them by type assertion on the payload.

// GrayScaler exposes a payload as a grayscale pixel intensity, scaled by a
// caller-supplied normalization context (for the wave rule, the smallest
// local amplitude maximum across the board).
type GrayScaler interface {
	GrayValue(context float64) uint8
}

// Glypher renders a payload as a single rune in text dumps.
type Glypher interface {
	Glyph() rune
}
