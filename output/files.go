package output

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/sergeymakinen/go-bmp"

	"github.com/flavioheleno/universe"
	"github.com/flavioheleno/universe/image1bit"
)

// Format is an on-disk image encoding.
type Format string

const (
	PNG Format = "png" // 1-bit paletted PNG
	BMP Format = "bmp" // 1-bit paletted BMP
	Raw Format = "raw" // Packed rows, 8 pixels per byte, MSB leftmost
)

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case PNG, BMP, Raw:
		return f, nil
	}
	return "", fmt.Errorf("output: unknown format %q (want png, bmp or raw)", s)
}

// Files writes each image to Dir as <Prefix><index>.<format>.
type Files struct {
	Dir    string // Output directory (default: current directory)
	Format Format // Encoding (default: PNG)
	Prefix string // File name prefix (default: "output")
}

// Name returns the file name used for the image at index.
func (f *Files) Name(index int) string {
	prefix := f.Prefix
	if prefix == "" {
		prefix = "output"
	}
	return fmt.Sprintf("%s%d.%s", prefix, index, f.format())
}

// Path returns the full path used for the image at index.
func (f *Files) Path(index int) string {
	return filepath.Join(f.Dir, f.Name(index))
}

// Put implements universe.Sink.
func (f *Files) Put(r *universe.Rendered) (err error) {
	path := f.Path(r.Index)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if err := Encode(file, r.Image, f.format()); err != nil {
		return fmt.Errorf("output: %s: %w", path, err)
	}
	return nil
}

func (f *Files) format() Format {
	if f.Format == "" {
		return PNG
	}
	return f.Format
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, toPaletted(img))
	case Raw:
		_, err := w.Write(pack(img).Pix)
		return err
	default:
		return fmt.Errorf("output: unknown format %q", format)
	}
}

// pack returns img as a Packed image, converting if needed.
func pack(img image.Image) *image1bit.Packed {
	b := img.Bounds()
	if p, ok := img.(*image1bit.Packed); ok && p.Stride == (b.Dx()+7)/8 {
		return p
	}
	p := image1bit.New(b)
	draw.Draw(p, b, img, b.Min, draw.Src)
	return p
}

// toPaletted copies img into a black and white *image.Paletted, the form
// the BMP encoder writes at 1 bit per pixel.
func toPaletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	pal := color.Palette{universe.Black, universe.White}
	p := image.NewPaletted(b, pal)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if image1bit.BitModel.Convert(img.At(x, y)).(image1bit.Bit) {
				p.SetColorIndex(x, y, 1)
			}
		}
	}
	return p
}
