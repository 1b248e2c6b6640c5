package shuffle

import "procrand/pkg/mix"

// Infinite chains permutations end to end. When the wrapped shuffler runs out
// going forwards it is reseeded with seed+Golden; when it runs out going
// backwards it is reseeded with seed-Golden and moved to its end, so walking
// back across a block boundary retraces the earlier block.
type Infinite struct {
	inner Indexer
	block int64
}

// NewInfinite wraps inner. inner should not be used directly afterwards.
func NewInfinite(inner Indexer) *Infinite {
	return &Infinite{inner: inner}
}

// Next returns the next index, moving to the following block when the
// current one is exhausted.
func (f *Infinite) Next() int {
	if v, ok := f.inner.Next(); ok {
		return v
	}
	f.inner.Reseed(f.inner.Seed() + mix.Golden)
	f.block++
	v, _ := f.inner.Next()
	return v
}

// Previous steps backwards, moving to the end of the preceding block when the
// current one is exhausted.
func (f *Infinite) Previous() int {
	if v, ok := f.inner.Previous(); ok {
		return v
	}
	f.inner.Reseed(f.inner.Seed() - mix.Golden)
	f.inner.ToEnd()
	f.block--
	v, _ := f.inner.Previous()
	return v
}

// Block is the number of block boundaries crossed, negative when walking back
// from the starting block.
func (f *Infinite) Block() int64 { return f.block }

// Inner exposes the wrapped shuffler.
func (f *Infinite) Inner() Indexer { return f.inner }

// Copy returns an independent Infinite with a copy of the wrapped shuffler.
func (f *Infinite) Copy() *Infinite {
	return &Infinite{inner: copyIndexer(f.inner), block: f.block}
}

func copyIndexer(ix Indexer) Indexer {
	switch s := ix.(type) {
	case *LowStorage:
		return s.Copy()
	case *SwapOrNot:
		return s.Copy()
	}
	c, err := FromState(ix.State())
	if err != nil {
		panic("shuffle: cannot copy " + err.Error())
	}
	return c
}
