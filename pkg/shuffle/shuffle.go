// Package shuffle walks the integers [0, bound) in a seeded pseudo-random
// order without storing the permutation. Two constructions are provided: a
// Feistel network over the next power of four (LowStorage) and a swap-or-not
// network over exactly [0, bound) (SwapOrNot). Both can step forwards and
// backwards, and Infinite chains fresh permutations end to end.
//
// Nothing in this package is safe for concurrent use. Copy an Indexer to hand
// it to another goroutine.
package shuffle

import (
	"fmt"

	"procrand/pkg/mix"
)

// MaxBound is the largest supported bound. Larger bounds are clamped.
const MaxBound = 1 << 62

// Kind names a shuffler construction.
type Kind string

const (
	KindLowStorage Kind = "lowstorage"
	KindSwapOrNot  Kind = "swapornot"
)

// Kinds lists the available constructions.
func Kinds() []Kind { return []Kind{KindLowStorage, KindSwapOrNot} }

// Indexer walks one permutation of [0, Bound()).
type Indexer interface {
	// Next returns the next index, or false once all Bound() indices have
	// been returned.
	Next() (int, bool)
	// Previous returns the index most recently returned by Next and moves
	// the cursor back over it, or false at the start.
	Previous() (int, bool)
	// Restart moves the cursor to the start of the same permutation.
	Restart()
	// Reseed switches to the permutation for seed and moves the cursor to
	// its start.
	Reseed(seed uint64)
	// ToEnd moves the cursor past the last index, so Previous walks the
	// permutation in reverse.
	ToEnd()
	Bound() int
	Seed() uint64
	// Position is the number of indices before the cursor.
	Position() int
	// State captures everything needed to rebuild the shuffler.
	State() State
}

// New constructs a shuffler of the given kind.
func New(kind Kind, bound int, seed uint64) (Indexer, error) {
	switch kind {
	case KindLowStorage:
		return NewLowStorage(bound, seed), nil
	case KindSwapOrNot:
		return NewSwapOrNot(bound, seed), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
}

// State is the persisted form of a shuffler.
type State struct {
	Kind     Kind     `cbor:"1,keyasint" json:"kind"`
	Bound    int      `cbor:"2,keyasint" json:"bound"`
	Seed     uint64   `cbor:"3,keyasint" json:"seed"`
	Keys     []uint64 `cbor:"4,keyasint" json:"keys"`
	Function uint64   `cbor:"5,keyasint,omitempty" json:"function,omitempty"`
	Cursor   uint64   `cbor:"6,keyasint" json:"cursor"`
	Position int      `cbor:"7,keyasint" json:"position"`
}

// FromState rebuilds a shuffler from st. The round keys are taken from st,
// not re-derived from the seed.
func FromState(st State) (Indexer, error) {
	switch st.Kind {
	case KindLowStorage:
		return lowStorageFromState(st)
	case KindSwapOrNot:
		return swapOrNotFromState(st)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKind, st.Kind)
}

func clampBound(bound int) int {
	if bound < 1 {
		return 1
	}
	if bound > MaxBound {
		return MaxBound
	}
	return bound
}

// boundSeed mixes bound into seed so that equal seeds with different bounds
// give unrelated keys.
func boundSeed(seed uint64, bound int) uint64 {
	return seed ^ mix.Randomize(uint64(bound)*mix.Golden)
}
