// Package ordinal maps arbitrary-precision non-negative integers ("ordinals")
// to fixed-length bit sequences and square bit grids.
//
// Every black and white image of side s is one of 2^(s*s) bit patterns. The
// ordinal of an image is the big-endian binary number read from its pixels, so
// ordinal 0 is the all-black image and 2^(s*s)-1 the all-white one.
//
// Memory layout example for side 2, ordinal 6 (binary 110):
//
//	Minimal:  1 1 0
//	PadHigh:  0 1 1 0   (zeros prepended, canonical)
//	PadLow:   1 1 0 0   (zeros appended)
//
//	RowMajor grid      ColumnMajor grid
//	  0 1                0 1
//	  1 0                1 0
//
// Example usage:
//
//	n, _ := new(big.Int).SetString("6", 10)
//	bits, err := ordinal.EncodeBits(n, ordinal.Size(2))
//	if err != nil {
//		// n does not fit in 4 bits
//	}
//	grid, _ := ordinal.ToGrid(bits, 2)
//	println(grid[1][0]) // Output: 1
//
// PadHigh is the only lossless layout. PadLow drops the trailing zeros of the
// ordinal, so ordinals n and 2n map to the same image; it exists to reproduce
// images made by the first universe iterator script.
//
// All functions are pure: identical inputs give identical outputs.
package ordinal
