package shuffle

import (
	"fmt"

	"procrand/pkg/mix"
)

const feistelRounds = 4

// LowStorage is a Feistel network over [0, pow4] where pow4 is the smallest
// 2^(2k)-1 at or above bound-1. Encodings that land at or above bound are
// skipped, so a step can take several encodes when bound sits just above a
// power of four.
type LowStorage struct {
	bound     int
	seed      uint64
	pow4      uint64
	halfBits  uint
	rightMask uint64
	leftMask  uint64
	keys      [feistelRounds]uint64

	cursor   uint64
	position int
}

var _ Indexer = (*LowStorage)(nil)

// NewLowStorage returns a Feistel shuffler over [0, bound). Bounds below 1
// are treated as 1.
func NewLowStorage(bound int, seed uint64) *LowStorage {
	s := &LowStorage{}
	s.setBound(bound)
	s.Reseed(seed)
	return s
}

func (s *LowStorage) setBound(bound int) {
	s.bound = clampBound(bound)
	k := uint(1)
	for uint64(1)<<(2*k)-1 < uint64(s.bound-1) {
		k++
	}
	s.halfBits = k
	s.pow4 = uint64(1)<<(2*k) - 1
	s.rightMask = uint64(1)<<k - 1
	s.leftMask = s.pow4 ^ s.rightMask
}

func (s *LowStorage) Bound() int    { return s.bound }
func (s *LowStorage) Seed() uint64  { return s.seed }
func (s *LowStorage) Position() int { return s.position }

// Reseed derives new round keys from seed and the bound and restarts.
func (s *LowStorage) Reseed(seed uint64) {
	s.seed = seed
	base := boundSeed(seed, s.bound)
	for i := range s.keys {
		s.keys[i] = mix.Randomize(base + uint64(i+1)*0xC6BC279692B5C323)
	}
	s.Restart()
}

func (s *LowStorage) Restart() {
	s.cursor = 0
	s.position = 0
}

func (s *LowStorage) ToEnd() {
	s.cursor = s.pow4 + 1
	s.position = s.bound
}

func (s *LowStorage) Next() (int, bool) {
	for s.cursor <= s.pow4 {
		v := s.encode(s.cursor)
		s.cursor++
		if v < uint64(s.bound) {
			s.position++
			return int(v), true
		}
	}
	return 0, false
}

func (s *LowStorage) Previous() (int, bool) {
	for s.cursor > 0 {
		s.cursor--
		v := s.encode(s.cursor)
		if v < uint64(s.bound) {
			s.position--
			// Step back over skipped encodings too, so the cursor is
			// exactly where Next left it before returning v.
			for s.cursor > 0 && s.encode(s.cursor-1) >= uint64(s.bound) {
				s.cursor--
			}
			return int(v), true
		}
	}
	return 0, false
}

// Encode maps index through the Feistel network. It is a bijection on
// [0, pow4]; Next returns Encode(i) for the successive i whose encoding is
// below the bound.
func (s *LowStorage) Encode(index uint64) uint64 {
	return s.encode(index & s.pow4)
}

func (s *LowStorage) encode(index uint64) uint64 {
	left := (index & s.leftMask) >> s.halfBits
	right := index & s.rightMask
	for _, key := range s.keys {
		next := left ^ (feistelRound(right, key) & s.rightMask)
		left, right = right, next
	}
	return left<<s.halfBits | right
}

func feistelRound(data, key uint64) uint64 {
	return mix.Mum(data+mix.Golden, key^0xD1B54A32D192ED03)
}

// Copy returns an independent shuffler at the same cursor.
func (s *LowStorage) Copy() *LowStorage {
	c := *s
	return &c
}

func (s *LowStorage) State() State {
	return State{
		Kind:     KindLowStorage,
		Bound:    s.bound,
		Seed:     s.seed,
		Keys:     append([]uint64(nil), s.keys[:]...),
		Cursor:   s.cursor,
		Position: s.position,
	}
}

func (s *LowStorage) String() string {
	return fmt.Sprintf("%s{bound=%d, seed=%016X, position=%d}", KindLowStorage, s.bound, s.seed, s.position)
}

func lowStorageFromState(st State) (*LowStorage, error) {
	if st.Bound < 1 || st.Bound > MaxBound {
		return nil, fmt.Errorf("%w: bound %d", ErrInvalidState, st.Bound)
	}
	if len(st.Keys) != feistelRounds {
		return nil, fmt.Errorf("%w: %d keys, want %d", ErrInvalidState, len(st.Keys), feistelRounds)
	}
	s := &LowStorage{seed: st.Seed}
	s.setBound(st.Bound)
	copy(s.keys[:], st.Keys)
	if st.Cursor > s.pow4+1 || st.Position < 0 || st.Position > s.bound {
		return nil, fmt.Errorf("%w: cursor %d, position %d", ErrInvalidState, st.Cursor, st.Position)
	}
	s.cursor = st.Cursor
	s.position = st.Position
	return s, nil
}
