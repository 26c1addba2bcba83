package output

import (
	"image"

	"periph.io/x/conn/v3/display"

	"github.com/flavioheleno/universe"
	"github.com/flavioheleno/universe/image1bit"
)

// Drawer shows each image on a periph.io display, scaled with nearest
// neighbour sampling to the largest centered square the panel can hold.
type Drawer struct {
	D display.Drawer
}

// Put implements universe.Sink.
func (d *Drawer) Put(r *universe.Rendered) error {
	dst := d.D.Bounds()
	return d.D.Draw(dst, Fit(r.Image, dst), dst.Min)
}

// Fit returns an image with bounds dst holding src scaled to a centered
// square of side min(dst.Dx(), dst.Dy()). The margins are black.
func Fit(src image.Image, dst image.Rectangle) *image1bit.Packed {
	out := image1bit.New(dst)
	sb := src.Bounds()
	side := min(dst.Dx(), dst.Dy())
	if side <= 0 || sb.Empty() {
		return out
	}

	// Top-left corner of the centered square.
	ox := dst.Min.X + (dst.Dx()-side)/2
	oy := dst.Min.Y + (dst.Dy()-side)/2
	for y := 0; y < side; y++ {
		sy := sb.Min.Y + y*sb.Dy()/side
		for x := 0; x < side; x++ {
			sx := sb.Min.X + x*sb.Dx()/side
			b := image1bit.BitModel.Convert(src.At(sx, sy)).(image1bit.Bit)
			out.SetBit(ox+x, oy+y, b)
		}
	}
	return out
}
