// Package core defines the contract every generator in procrand satisfies,
// the registry generators add themselves to, and small helpers built on top
// of any Source.
package core

import "math/rand/v2"

// Source produces uniformly distributed 64-bit values. Every Source also
// satisfies math/rand/v2.Source.
type Source interface {
	// Uint64 advances the state and returns the next 64-bit output.
	Uint64() uint64
	// Bits advances the state and returns the top n bits of the next 64-bit
	// output. n is clamped to [1, 32].
	Bits(n int) uint32
}

// Stateful is a Source whose complete state can be read back and restored.
// Restoring a state read from another instance of the same algorithm makes the
// two produce identical output from then on.
type Stateful interface {
	Source
	// Name is the registry name of the algorithm.
	Name() string
	// Seed reinitializes every register from a single seed.
	Seed(seed uint64)
	// State returns a copy of the registers, in a fixed per-algorithm order.
	State() []uint64
	// SetState overwrites the registers. Missing words read as zero and extra
	// words are ignored. Structural invariants (odd registers, registers that
	// must not be zero) are re-applied.
	SetState(words ...uint64)
}

// Copier is implemented by generators and shufflers that can produce an
// independent deep copy of themselves with the same future output.
type Copier[T any] interface {
	Copy() T
}

var _ rand.Source = Source(nil)

// TopBits returns the top n bits of x, with n clamped to [1, 32]. Generators
// use it to implement Bits.
func TopBits(x uint64, n int) uint32 {
	if n < 1 {
		n = 1
	} else if n > 32 {
		n = 32
	}
	return uint32(x >> (64 - n))
}
