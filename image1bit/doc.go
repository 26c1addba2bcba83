// Package image1bit provides a packed black and white image format.
//
// Pixels are stored one bit each in horizontal packing: every byte holds 8
// consecutive pixels of a row, the most significant bit being the leftmost.
// Rows are padded to a whole number of bytes.
//
// Memory layout example for a 10-pixel row:
//
//	Pixels: 0 1 2 3 4 5 6 7 | 8 9
//	Values: 1 0 1 1 0 0 0 1 | 1 1
//	Bytes:  0xB1            | 0xC0
//
// This package provides:
//
// - Bit: a color type that is either Off (black) or On (white)
// - Palette: the two-color palette {Off, On}, indexed by bit value
// - BitModel: a color model converting standard Go colors to Bit by luminance
// - Packed: an image.PalettedImage and draw.Image backed by packed bits
//
// Because Packed reports a two-entry palette, image/png encodes it as a
// 1-bit-per-pixel file.
//
// Example usage:
//
//	img := image1bit.New(image.Rect(0, 0, 100, 100))
//	img.SetBit(99, 99, image1bit.On)
//	println(img.BitAt(99, 99)) // Output: true
package image1bit
