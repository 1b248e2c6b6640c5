package shuffle

import (
	"fmt"
	"math/bits"

	"procrand/pkg/mix"
)

// SwapOrNot is a swap-or-not network over exactly [0, bound). Every encoding
// is in range, so each step costs one encode whatever the bound. Each round
// pairs x with key-x (mod bound) and swaps the two when a keyed bit of the
// pair is set; a pair always makes the same decision, so every round is an
// involution and the network is a bijection.
type SwapOrNot struct {
	bound    int
	seed     uint64
	keys     []uint64
	function uint64
	cursor   int
}

var _ Indexer = (*SwapOrNot)(nil)

// NewSwapOrNot returns a swap-or-not shuffler over [0, bound). Bounds below 1
// are treated as 1.
func NewSwapOrNot(bound int, seed uint64) *SwapOrNot {
	s := &SwapOrNot{bound: clampBound(bound)}
	s.Reseed(seed)
	return s
}

// swapRounds grows with the bit length of bound.
func swapRounds(bound int) int {
	return 8 + 6*bits.Len64(uint64(bound))
}

func (s *SwapOrNot) Bound() int    { return s.bound }
func (s *SwapOrNot) Seed() uint64  { return s.seed }
func (s *SwapOrNot) Position() int { return s.cursor }

// Reseed derives new round keys and the round function scalar from seed and
// the bound and restarts.
func (s *SwapOrNot) Reseed(seed uint64) {
	s.seed = seed
	base := boundSeed(seed, s.bound)
	n := swapRounds(s.bound)
	if cap(s.keys) < n {
		s.keys = make([]uint64, n)
	}
	s.keys = s.keys[:n]
	for i := range s.keys {
		k := mix.Randomize(base + uint64(i+1)*mix.Golden)
		s.keys[i], _ = bits.Mul64(k, uint64(s.bound))
	}
	s.function = mix.Randomize(base ^ 0xC6BC279692B5C323)
	s.Restart()
}

func (s *SwapOrNot) Restart() { s.cursor = 0 }

func (s *SwapOrNot) ToEnd() { s.cursor = s.bound }

func (s *SwapOrNot) Next() (int, bool) {
	if s.cursor >= s.bound {
		return 0, false
	}
	v := s.Encode(s.cursor)
	s.cursor++
	return v, true
}

func (s *SwapOrNot) Previous() (int, bool) {
	if s.cursor <= 0 {
		return 0, false
	}
	s.cursor--
	return s.Encode(s.cursor), true
}

// Encode returns the element at position index of the permutation. index is
// reduced modulo the bound.
func (s *SwapOrNot) Encode(index int) int {
	b := uint64(s.bound)
	x := uint64(index) % b
	for i, key := range s.keys {
		partner := (key + b - x) % b
		hi := max(x, partner)
		if mix.Determine(s.function+uint64(i)*0xD1B54A32D192ED03+hi)>>63 == 1 {
			x = partner
		}
	}
	return int(x)
}

// Copy returns an independent shuffler at the same cursor.
func (s *SwapOrNot) Copy() *SwapOrNot {
	c := *s
	c.keys = append([]uint64(nil), s.keys...)
	return &c
}

func (s *SwapOrNot) State() State {
	return State{
		Kind:     KindSwapOrNot,
		Bound:    s.bound,
		Seed:     s.seed,
		Keys:     append([]uint64(nil), s.keys...),
		Function: s.function,
		Cursor:   uint64(s.cursor),
		Position: s.cursor,
	}
}

func (s *SwapOrNot) String() string {
	return fmt.Sprintf("%s{bound=%d, seed=%016X, position=%d}", KindSwapOrNot, s.bound, s.seed, s.cursor)
}

func swapOrNotFromState(st State) (*SwapOrNot, error) {
	if st.Bound < 1 || st.Bound > MaxBound {
		return nil, fmt.Errorf("%w: bound %d", ErrInvalidState, st.Bound)
	}
	if len(st.Keys) == 0 {
		return nil, fmt.Errorf("%w: no round keys", ErrInvalidState)
	}
	for _, k := range st.Keys {
		if k >= uint64(st.Bound) {
			return nil, fmt.Errorf("%w: round key %d out of range", ErrInvalidState, k)
		}
	}
	if st.Cursor > uint64(st.Bound) || st.Position != int(st.Cursor) {
		return nil, fmt.Errorf("%w: cursor %d, position %d", ErrInvalidState, st.Cursor, st.Position)
	}
	return &SwapOrNot{
		bound:    st.Bound,
		seed:     st.Seed,
		keys:     append([]uint64(nil), st.Keys...),
		function: st.Function,
		cursor:   int(st.Cursor),
	}, nil
}
