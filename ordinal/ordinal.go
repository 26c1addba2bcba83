package ordinal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

var (
	// ErrValueOutOfRange is wrapped by RangeError.
	ErrValueOutOfRange = errors.New("ordinal: value out of range")
	// ErrShapeMismatch is returned when a bit sequence cannot fill a square grid.
	ErrShapeMismatch = errors.New("ordinal: shape mismatch")
)

// RangeError reports an ordinal that does not fit in Size bits.
type RangeError struct {
	Ordinal *big.Int
	Max     *big.Int
	Size    int
}

// Error implements error.
func (e *RangeError) Error() string {
	return fmt.Sprintf("ordinal: %s does not fit in %d bits (max %s)", Approx(e.Ordinal), e.Size, Approx(e.Max))
}

// Unwrap returns ErrValueOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrValueOutOfRange
}

// Padding selects where zero bits go when the minimal representation is
// shorter than the sequence.
//
// Only PadHigh is a bijection. PadLow appends the zeros after the pattern, so
// trailing zeros of the ordinal are lost: n and 2n give the same bits whenever
// 2n fits (1 and 2 both encode as 1000 in 4 bits). It reproduces the layout of
// the first universe iterator script and is kept for matching its output.
type Padding int

const (
	PadHigh Padding = iota // Zeros before the pattern (canonical, lossless)
	PadLow                 // Zeros after the pattern (lossy, n and 2n collide)
)

// String returns the flag name of p.
func (p Padding) String() string {
	switch p {
	case PadHigh:
		return "high"
	case PadLow:
		return "low"
	default:
		return fmt.Sprintf("Padding(%d)", int(p))
	}
}

// Order selects how a flat sequence fills the grid.
type Order int

const (
	RowMajor    Order = iota // grid[r][c] = bits[r*side+c] (canonical)
	ColumnMajor              // grid[r][c] = bits[c*side+r]
)

// String returns the flag name of o.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row"
	case ColumnMajor:
		return "col"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Bits is a sequence of binary digits, one per element, most significant first.
// Every element is 0 or 1.
type Bits []uint8

// Grid is a square matrix of binary digits indexed as grid[row][col].
type Grid [][]uint8

// Side returns the edge length of the grid.
func (g Grid) Side() int {
	return len(g)
}

// Size returns the pixel count of a square image of the given side.
// It panics if side is negative or side*side overflows int.
func Size(side int) int {
	if side < 0 || (side > 0 && side > math.MaxInt/side) {
		panic(fmt.Sprintf("ordinal: side %d out of range", side))
	}
	return side * side
}

// Max returns 2^size - 1, the largest ordinal representable in size bits.
func Max(size int) *big.Int {
	if size <= 0 {
		return new(big.Int)
	}
	m := new(big.Int).Lsh(big.NewInt(1), uint(size))
	return m.Sub(m, big.NewInt(1))
}

// EncodeBits returns the big-endian binary digits of ordinal, zero padded on
// the high end to exactly size digits.
func EncodeBits(ordinal *big.Int, size int) (Bits, error) {
	return Encode(ordinal, size, PadHigh)
}

// Encode is EncodeBits with an explicit padding policy.
//
// The minimal representation of 0 is the single digit 0, so every size >= 1
// accepts it. An ordinal needing more than size digits, or a negative one,
// yields a *RangeError.
func Encode(ordinal *big.Int, size int, pad Padding) (Bits, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ordinal: size %d must be positive", size)
	}
	if ordinal == nil {
		return nil, errors.New("ordinal: nil ordinal")
	}
	n := ordinal.BitLen()
	if ordinal.Sign() < 0 || n > size {
		return nil, &RangeError{Ordinal: new(big.Int).Set(ordinal), Max: Max(size), Size: size}
	}
	if n == 0 {
		n = 1
	}

	bits := make(Bits, size)
	// offset is the index of the most significant digit of the minimal form.
	offset := size - n
	if pad == PadLow {
		offset = 0
	}
	for i := 0; i < n; i++ {
		bits[offset+n-1-i] = uint8(ordinal.Bit(i))
	}
	return bits, nil
}

// ToGrid reshapes bits into side rows of side digits each, row-major.
func ToGrid(bits Bits, side int) (Grid, error) {
	return Reshape(bits, side, RowMajor)
}

// Reshape is ToGrid with an explicit fill order.
// It fails with ErrShapeMismatch unless len(bits) == side*side.
func Reshape(bits Bits, side int, order Order) (Grid, error) {
	if side <= 0 || len(bits)%side != 0 || len(bits)/side != side {
		return nil, fmt.Errorf("%w: %d bits for side %d", ErrShapeMismatch, len(bits), side)
	}

	// Single backing array, rows are windows into it.
	cells := make([]uint8, len(bits))
	switch order {
	case ColumnMajor:
		for r := 0; r < side; r++ {
			for c := 0; c < side; c++ {
				cells[r*side+c] = bits[c*side+r]
			}
		}
	default:
		copy(cells, bits)
	}

	grid := make(Grid, side)
	for r := range grid {
		grid[r] = cells[r*side : (r+1)*side : (r+1)*side]
	}
	return grid, nil
}

// Approx renders n for humans. Values that fit in 64 bits are printed exactly,
// larger ones in scientific notation.
func Approx(n *big.Int) string {
	if n == nil {
		return "<nil>"
	}
	if n.BitLen() <= 64 {
		return n.String()
	}
	return new(big.Float).SetPrec(64).SetInt(n).Text('e', 6)
}
