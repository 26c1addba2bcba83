package image1bit

import (
	"image"
	"image/color"
	"image/draw"
)

// Bit is a black (Off) or white (On) pixel.
type Bit bool

const (
	Off Bit = false
	On  Bit = true
)

// RGBA implements color.Color.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// String returns "On" or "Off".
func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// Index returns the palette index of b, which is also its digit value.
func (b Bit) Index() uint8 {
	if b {
		return 1
	}
	return 0
}

// Palette holds Off at index 0 and On at index 1.
var Palette = color.Palette{Off, On}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luma weights as image/color.GrayModel, 16-bit domain.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit, thresholding luminance at half intensity.
var BitModel = color.ModelFunc(toBit)

// Packed is a black and white image with one bit per pixel.
type Packed struct {
	Pix    []byte          // Pixel data (8 pixels per byte, MSB first)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

var (
	_ image.PalettedImage = (*Packed)(nil)
	_ draw.Image          = (*Packed)(nil)
)

// New creates a Packed image with the given bounds, all pixels Off.
func New(r image.Rectangle) *Packed {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Packed{Rect: r}
	}
	stride := (w + 7) / 8
	return &Packed{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns Palette, so encoders treat the image as 1-bit paletted.
func (p *Packed) ColorModel() color.Model {
	return Palette
}

// Bounds returns the image bounds.
func (p *Packed) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Packed) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the pixel at (x, y). Out of bounds pixels are Off.
func (p *Packed) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// ColorIndexAt implements image.PalettedImage.
func (p *Packed) ColorIndexAt(x, y int) uint8 {
	return p.BitAt(x, y).Index()
}

// Set converts c with BitModel and stores it.
func (p *Packed) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetColorIndex sets the pixel to Palette[index]; any non-zero index is On.
func (p *Packed) SetColorIndex(x, y int, index uint8) {
	p.SetBit(x, y, index != 0)
}

// SetBit stores b at (x, y). Out of bounds writes are ignored.
func (p *Packed) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// The leftmost pixel of each byte is bit 7.
func (p *Packed) pixOffset(x, y int) (offset int, mask byte) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/8
	mask = 0x80 >> uint(dx%8)
	return
}
