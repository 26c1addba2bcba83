package ordinal

import (
	"encoding/binary"
	"math/big"
	"math/rand/v2"
)

// Uniform returns an integer drawn uniformly from [0, limit].
//
// It draws limit.BitLen() random bits and rejects draws above limit, so each
// attempt succeeds with probability above one half. A nil src uses the
// package-level generator of math/rand/v2.
func Uniform(src rand.Source, limit *big.Int) *big.Int {
	if limit == nil || limit.Sign() <= 0 {
		return new(big.Int)
	}
	next := rand.Uint64
	if src != nil {
		next = src.Uint64
	}

	n := limit.BitLen()
	buf := make([]byte, (n+7)/8)
	// Bits of the leading byte above the bit length of limit.
	excess := uint(len(buf)*8 - n)
	v := new(big.Int)
	for {
		fill(buf, next)
		buf[0] &= 0xFF >> excess
		v.SetBytes(buf)
		if v.Cmp(limit) <= 0 {
			return v
		}
	}
}

// Sample returns an ordinal drawn uniformly over all images of size pixels,
// that is from [0, 2^size - 1].
func Sample(src rand.Source, size int) *big.Int {
	return Uniform(src, Max(size))
}

func fill(buf []byte, next func() uint64) {
	var word [8]byte
	for i := 0; i < len(buf); i += 8 {
		binary.BigEndian.PutUint64(word[:], next())
		copy(buf[i:], word[:])
	}
}
