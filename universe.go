package universe

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log"
	"math/big"
	"math/rand/v2"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/flavioheleno/universe/image1bit"
	"github.com/flavioheleno/universe/ordinal"
)

const (
	DefaultSide      = 100
	DefaultSideLimit = 1000

	// MaxSideLimit caps Opts.SideLimit. An image of this side holds 2^30
	// pixels, and side*side never overflows int.
	MaxSideLimit = 1 << 15
)

// Opts is the configuration for a Renderer.
type Opts struct {
	SideLimit int // Largest accepted side (default: 1000, at most MaxSideLimit)

	// Bit layout
	Padding ordinal.Padding // Where zero padding goes (default: PadHigh)
	Order   ordinal.Order   // How bits fill the grid (default: RowMajor)

	// Source feeds the random sampling path. nil uses the math/rand/v2
	// package generator; a seeded source makes sampling reproducible.
	Source rand.Source

	// Canvas creates the image each ordinal is painted on
	// (default: image1bit.New).
	Canvas func(r image.Rectangle) draw.Image

	Logger    *log.Logger // Optional, nil disables logging
	CacheSize int         // Number of per-side bounds kept (default: 16)
}

// Rendered is one image produced by a Renderer.
type Rendered struct {
	Index   int      // Zero-based position within the batch
	Side    int      // Edge length in pixels
	Ordinal *big.Int // The ordinal the image was built from
	Image   draw.Image
}

// Renderer validates requests and turns ordinals into images.
//
// A Renderer holds no per-request state. When Opts.Source is set it must not
// be shared across goroutines, since rand.Source is not safe for concurrent use.
type Renderer struct {
	opts   Opts
	bounds *lru.Cache[int, *big.Int] // side -> 2^(side*side)-1
}

// New creates a Renderer. opts can be nil to use defaults.
func New(opts *Opts) (*Renderer, error) {
	o := Opts{}
	if opts != nil {
		o = *opts
	}

	if o.SideLimit < 0 {
		return nil, errors.New("universe: side limit must not be negative")
	}
	if o.SideLimit > MaxSideLimit {
		return nil, fmt.Errorf("universe: side limit %d exceeds %d", o.SideLimit, MaxSideLimit)
	}
	if o.SideLimit == 0 {
		o.SideLimit = DefaultSideLimit
	}
	if o.Padding != ordinal.PadHigh && o.Padding != ordinal.PadLow {
		return nil, fmt.Errorf("universe: unknown padding %v", o.Padding)
	}
	if o.Order != ordinal.RowMajor && o.Order != ordinal.ColumnMajor {
		return nil, fmt.Errorf("universe: unknown order %v", o.Order)
	}
	if o.Canvas == nil {
		o.Canvas = func(r image.Rectangle) draw.Image { return image1bit.New(r) }
	}
	if o.CacheSize < 0 {
		return nil, errors.New("universe: cache size must not be negative")
	}
	if o.CacheSize == 0 {
		o.CacheSize = 16
	}

	cache, err := lru.New[int, *big.Int](o.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("universe: bound cache: %w", err)
	}
	return &Renderer{opts: o, bounds: cache}, nil
}

// SideLimit returns the largest side the Renderer accepts.
func (r *Renderer) SideLimit() int {
	return r.opts.SideLimit
}

// Max returns 2^(side*side) - 1, the largest valid ordinal for side.
// The returned value is a copy the caller may modify.
func (r *Renderer) Max(side int) (*big.Int, error) {
	if err := r.validateSide(side); err != nil {
		return nil, err
	}
	return new(big.Int).Set(r.max(side)), nil
}

// Validate checks that side is within [1, SideLimit] and n within
// [0, 2^(side*side) - 1]. The bound is compared exactly, whatever its size.
func (r *Renderer) Validate(side int, n *big.Int) error {
	if err := r.validateSide(side); err != nil {
		return err
	}
	limit := r.max(side)
	if n == nil {
		return &OrdinalError{Side: side, Max: new(big.Int).Set(limit)}
	}
	if n.Sign() < 0 || n.Cmp(limit) > 0 {
		return &OrdinalError{Side: side, Ordinal: new(big.Int).Set(n), Max: new(big.Int).Set(limit)}
	}
	return nil
}

// Sample draws an ordinal uniformly from [0, 2^(side*side) - 1].
// Only the side can fail validation.
func (r *Renderer) Sample(side int) (*big.Int, error) {
	if err := r.validateSide(side); err != nil {
		return nil, err
	}
	n := ordinal.Uniform(r.opts.Source, r.max(side))
	r.logf("sampled ordinal %s for side %d", ordinal.Approx(n), side)
	return n, nil
}

// Render validates a single request and renders it with index 0.
func (r *Renderer) Render(side int, n *big.Int) (*Rendered, error) {
	if err := r.Validate(side, n); err != nil {
		return nil, err
	}
	return r.render(0, side, n), nil
}

// RenderBatch renders ordinals in order, handing each image to sink as soon
// as it is produced. sink can be nil.
//
// The batch stops at the first invalid ordinal or sink failure: images already
// handed to sink stay, later ordinals are not rendered. The returned slice holds
// every image rendered before the failure. With no ordinals, one is sampled.
func (r *Renderer) RenderBatch(side int, ordinals []*big.Int, sink Sink) ([]*Rendered, error) {
	if err := r.validateSide(side); err != nil {
		return nil, err
	}
	if len(ordinals) == 0 {
		n, err := r.Sample(side)
		if err != nil {
			return nil, err
		}
		ordinals = []*big.Int{n}
	}

	out := make([]*Rendered, 0, len(ordinals))
	for i, n := range ordinals {
		if err := r.Validate(side, n); err != nil {
			return out, fmt.Errorf("request %d: %w", i, err)
		}
		img := r.render(i, side, n)
		if sink != nil {
			if err := sink.Put(img); err != nil {
				return out, fmt.Errorf("request %d: %w", i, err)
			}
		}
		out = append(out, img)
	}
	return out, nil
}

// render paints a validated ordinal. Any failure here is a bug.
func (r *Renderer) render(index, side int, n *big.Int) *Rendered {
	bits, err := ordinal.Encode(n, ordinal.Size(side), r.opts.Padding)
	if err != nil {
		panic(fmt.Sprintf("universe: validated ordinal failed to encode: %v", err))
	}
	grid, err := ordinal.Reshape(bits, side, r.opts.Order)
	if err != nil {
		panic(fmt.Sprintf("universe: %v", err))
	}

	img := r.opts.Canvas(image.Rect(0, 0, side, side))
	packed, fast := img.(*image1bit.Packed)
	for y, row := range grid {
		for x, bit := range row {
			if fast {
				packed.SetBit(x, y, bit != 0)
				continue
			}
			img.Set(x, y, ColorOf(bit))
		}
	}

	r.logf("rendered #%d side=%d ordinal=%s", index, side, ordinal.Approx(n))
	return &Rendered{
		Index:   index,
		Side:    side,
		Ordinal: new(big.Int).Set(n),
		Image:   img,
	}
}

func (r *Renderer) validateSide(side int) error {
	if side < 1 || side > r.opts.SideLimit {
		return &SideError{Side: side, Limit: r.opts.SideLimit}
	}
	return nil
}

// max returns the cached bound for side. Callers must not modify it.
func (r *Renderer) max(side int) *big.Int {
	if m, ok := r.bounds.Get(side); ok {
		return m
	}
	m := ordinal.Max(ordinal.Size(side))
	r.bounds.Add(side, m)
	return m
}

func (r *Renderer) logf(format string, args ...any) {
	if r.opts.Logger != nil {
		r.opts.Logger.Printf(format, args...)
	}
}
