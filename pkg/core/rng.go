package core

import (
	"math"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper that adds bounded and typed draws on top of
// any Source.
type RNG struct {
	src Source
	r   *rand.Rand
}

// NewRNG wraps src. The RNG does not copy src; draws advance it.
func NewRNG(src Source) *RNG {
	return &RNG{src: src, r: rand.New(src)}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.src.Bits(1) == 1
}

// Uint8n returns a random uint8 in [0, n).
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(Uint32n(r.src, uint32(n)))
}

// IntN returns a random int in [0, n), or 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	if uint64(n) <= math.MaxUint32 {
		return int(Uint32n(r.src, uint32(n)))
	}
	return r.r.IntN(n)
}

// Between returns a random int in [lo, hi). It returns lo when hi <= lo.
func (r *RNG) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo)
}

// Float64 returns a random float64 in [0, 1) with 53 bits of precision.
func (r *RNG) Float64() float64 {
	return float64(r.src.Uint64()>>11) * 0x1p-53
}

// FillBinary fills the buffer with 0/1 values using the RNG.
func FillBinary(r *RNG, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.src.Bits(1))
	}
}

// Source exposes the wrapped generator.
func (r *RNG) Source() Source { return r.src }

// Rand exposes a math/rand/v2 view of the same generator for advanced use.
func (r *RNG) Rand() *rand.Rand { return r.r }
