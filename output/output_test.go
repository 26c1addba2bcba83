package output

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergeymakinen/go-bmp"

	"github.com/flavioheleno/universe"
	"github.com/flavioheleno/universe/image1bit"
)

func render(t *testing.T, side int, n int64) *universe.Rendered {
	t.Helper()
	r, err := universe.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	out, err := r.Render(side, big.NewInt(n))
	if err != nil {
		t.Fatalf("Render(%d, %d) error = %v", side, n, err)
	}
	return out
}

func white(c color.Color) bool {
	return bool(image1bit.BitModel.Convert(c).(image1bit.Bit))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", PNG, false},
		{"bmp", BMP, false},
		{"raw", Raw, false},
		{"gif", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestFilesName(t *testing.T) {
	tests := []struct {
		files Files
		index int
		want  string
	}{
		{Files{}, 0, "output0.png"},
		{Files{Format: BMP}, 3, "output3.bmp"},
		{Files{Format: Raw, Prefix: "img"}, 12, "img12.raw"},
	}
	for _, tt := range tests {
		if got := tt.files.Name(tt.index); got != tt.want {
			t.Errorf("Name(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestFilesPNG(t *testing.T) {
	dir := t.TempDir()
	files := &Files{Dir: dir, Format: PNG}
	if err := files.Put(render(t, 2, 1)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "output0.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	checkOne(t, img)
}

func TestFilesBMP(t *testing.T) {
	dir := t.TempDir()
	files := &Files{Dir: dir, Format: BMP}
	if err := files.Put(render(t, 2, 1)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "output0.bmp"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("bmp.Decode() error = %v", err)
	}
	checkOne(t, img)
}

// checkOne verifies the image of side 2, ordinal 1.
func checkOne(t *testing.T, img image.Image) {
	t.Helper()
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("Bounds() = %v", img.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := x == 1 && y == 1
			if got := white(img.At(x, y)); got != want {
				t.Errorf("pixel (%d, %d) white = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEncodeRaw(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want []byte
	}{
		{"packed side 2 ordinal 1", render(t, 2, 1).Image, []byte{0x00, 0x40}},
		{"packed side 3 max", render(t, 3, 511).Image, []byte{0xE0, 0xE0, 0xE0}},
		{"rgba converted", rgbaWithWhite(9, 1, 8, 0), []byte{0x00, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, tt.img, Raw); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf.Bytes(), tt.want) {
				t.Errorf("raw = %x, want %x", buf.Bytes(), tt.want)
			}
		})
	}
}

func rgbaWithWhite(w, h, x, y int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	img.Set(x, y, color.White)
	return img
}

func TestEncodeUnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, image1bit.New(image.Rect(0, 0, 1, 1)), "tiff"); err == nil {
		t.Error("Encode with unknown format should fail")
	}
}

func TestFilesMissingDir(t *testing.T) {
	files := &Files{Dir: filepath.Join(t.TempDir(), "missing")}
	if err := files.Put(render(t, 2, 0)); err == nil {
		t.Error("Put into a missing directory should fail")
	}
}

func TestFilesBatchFailFast(t *testing.T) {
	dir := t.TempDir()
	r, err := universe.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	files := &Files{Dir: dir, Format: PNG}
	_, err = r.RenderBatch(2, []*big.Int{big.NewInt(0), big.NewInt(16)}, files)
	if !errors.Is(err, universe.ErrOrdinalOutOfRange) {
		t.Fatalf("RenderBatch() error = %v, want ErrOrdinalOutOfRange", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "output0.png")); err != nil {
		t.Errorf("output0.png missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "output1.png")); !os.IsNotExist(err) {
		t.Errorf("output1.png should not exist, stat error = %v", err)
	}
}

type fakeDrawer struct {
	rect  image.Rectangle
	drawn *image1bit.Packed
	err   error
}

func (f *fakeDrawer) String() string          { return "fake" }
func (f *fakeDrawer) Halt() error             { return nil }
func (f *fakeDrawer) ColorModel() color.Model { return image1bit.BitModel }
func (f *fakeDrawer) Bounds() image.Rectangle { return f.rect }

func (f *fakeDrawer) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if f.err != nil {
		return f.err
	}
	f.drawn = image1bit.New(f.rect)
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			f.drawn.Set(x, y, src.At(sp.X+x-dst.Min.X, sp.Y+y-dst.Min.Y))
		}
	}
	return nil
}

func TestDrawer(t *testing.T) {
	dev := &fakeDrawer{rect: image.Rect(0, 0, 8, 4)}
	sink := &Drawer{D: dev}
	if err := sink.Put(render(t, 2, 1)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	// Side 2 scaled to a 4x4 square centered at x 2..5; the lit pixel
	// becomes the block x 4..5, y 2..3.
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			want := x >= 4 && x <= 5 && y >= 2
			if got := bool(dev.drawn.BitAt(x, y)); got != want {
				t.Errorf("display (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawerError(t *testing.T) {
	halted := errors.New("halted")
	sink := &Drawer{D: &fakeDrawer{rect: image.Rect(0, 0, 4, 4), err: halted}}
	if err := sink.Put(render(t, 2, 0)); !errors.Is(err, halted) {
		t.Errorf("Put() error = %v, want %v", err, halted)
	}
}

func TestFitDownscale(t *testing.T) {
	src := image1bit.New(image.Rect(0, 0, 8, 8))
	// Left half white.
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			src.SetBit(x, y, image1bit.On)
		}
	}
	out := Fit(src, image.Rect(0, 0, 2, 2))
	if !out.BitAt(0, 0) || !out.BitAt(0, 1) || out.BitAt(1, 0) || out.BitAt(1, 1) {
		t.Errorf("Fit() = %x, want left column white", out.Pix)
	}
}

func TestFitEmpty(t *testing.T) {
	out := Fit(image1bit.New(image.Rect(0, 0, 2, 2)), image.Rect(0, 0, 0, 0))
	if len(out.Pix) != 0 {
		t.Errorf("Fit into empty rect returned %d bytes", len(out.Pix))
	}
}

func TestASCII(t *testing.T) {
	got := ASCII(render(t, 3, 0b100011000).Image)
	want := "#..\n.##\n...\n"
	if got != want {
		t.Errorf("ASCII() = %q, want %q", got, want)
	}
}

func TestTerminalPlain(t *testing.T) {
	var buf bytes.Buffer
	term := &Terminal{W: &buf}
	if err := term.Put(render(t, 2, 15)); err != nil {
		t.Fatal(err)
	}
	want := "#0 side=2 ordinal=15\n##\n##\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestStylesRender(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(lipgloss.NewRenderer(&buf))

	out := styles.Render(render(t, 3, 5).Image)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 for side 3", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, halfBlock); n != 3 {
			t.Errorf("line %d has %d cells, want 3", i, n)
		}
	}
}

func TestTerminalColor(t *testing.T) {
	var buf bytes.Buffer
	term := &Terminal{W: &buf, Color: true, Styles: NewStyles(lipgloss.NewRenderer(&buf))}
	if err := term.Put(render(t, 4, 0)); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), halfBlock); n != 8 {
		t.Errorf("preview has %d cells, want 8", n)
	}
}

func TestMulti(t *testing.T) {
	var calls []string
	stop := errors.New("stop")
	m := Multi{
		universe.SinkFunc(func(*universe.Rendered) error { calls = append(calls, "a"); return nil }),
		universe.SinkFunc(func(*universe.Rendered) error { calls = append(calls, "b"); return stop }),
		universe.SinkFunc(func(*universe.Rendered) error { calls = append(calls, "c"); return nil }),
	}
	if err := m.Put(render(t, 1, 0)); !errors.Is(err, stop) {
		t.Errorf("Put() error = %v, want %v", err, stop)
	}
	if strings.Join(calls, "") != "ab" {
		t.Errorf("calls = %v, want [a b]", calls)
	}
}
