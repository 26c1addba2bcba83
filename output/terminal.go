package output

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/flavioheleno/universe"
	"github.com/flavioheleno/universe/image1bit"
	"github.com/flavioheleno/universe/ordinal"
)

// Terminal prints each image as text.
type Terminal struct {
	W      io.Writer
	Color  bool   // Half-block cells instead of ASCII
	Styles Styles // Used when Color is set
}

// NewTerminal returns a Terminal writing to f, using colored half blocks when
// f is a terminal.
func NewTerminal(f *os.File) *Terminal {
	fd := f.Fd()
	return &Terminal{
		W:      f,
		Color:  isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Styles: NewStyles(lipgloss.NewRenderer(f)),
	}
}

// Put implements universe.Sink.
func (t *Terminal) Put(r *universe.Rendered) error {
	body := ASCII(r.Image)
	if t.Color {
		body = t.Styles.Render(r.Image)
	}
	_, err := fmt.Fprintf(t.W, "#%d side=%d ordinal=%s\n%s", r.Index, r.Side, ordinal.Approx(r.Ordinal), body)
	return err
}

// ASCII renders img one character per pixel: '#' for white, '.' for black.
func ASCII(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	sb.Grow((b.Dx() + 1) * b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if bitAt(img, x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Styles paints two pixel rows per text line with the upper half block glyph:
// the foreground is the upper pixel, the background the lower one.
type Styles struct {
	cells [4]lipgloss.Style // index: upper<<1 | lower
	last  [2]lipgloss.Style // odd final row, no lower pixel
}

const halfBlock = "▀"

// NewStyles builds cell styles for re.
func NewStyles(re *lipgloss.Renderer) Styles {
	black := lipgloss.Color("#000000")
	white := lipgloss.Color("#FFFFFF")
	pick := func(on bool) lipgloss.Color {
		if on {
			return white
		}
		return black
	}

	var s Styles
	for i := range s.cells {
		s.cells[i] = re.NewStyle().
			Foreground(pick(i&2 != 0)).
			Background(pick(i&1 != 0))
	}
	for i := range s.last {
		s.last[i] = re.NewStyle().Foreground(pick(i != 0))
	}
	return s
}

// Render draws img with half blocks, side x ceil(side/2) characters.
func (s Styles) Render(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			upper := bitIndex(img, x, y)
			if y+1 >= b.Max.Y {
				sb.WriteString(s.last[upper].Render(halfBlock))
				continue
			}
			sb.WriteString(s.cells[upper<<1|bitIndex(img, x, y+1)].Render(halfBlock))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func bitAt(img image.Image, x, y int) bool {
	if p, ok := img.(*image1bit.Packed); ok {
		return bool(p.BitAt(x, y))
	}
	return bool(image1bit.BitModel.Convert(img.At(x, y)).(image1bit.Bit))
}

func bitIndex(img image.Image, x, y int) int {
	if bitAt(img, x, y) {
		return 1
	}
	return 0
}
