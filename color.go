package universe

import "image/color"

var (
	Black = color.RGBA{0, 0, 0, 0xFF}
	White = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

// ColorOf maps a binary digit to its pixel color: 0 is black, anything else white.
func ColorOf(bit uint8) color.RGBA {
	if bit == 0 {
		return Black
	}
	return White
}
