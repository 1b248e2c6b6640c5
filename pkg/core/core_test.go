package core

import (
	"errors"
	"testing"

	"procrand/pkg/mix"

	"github.com/stretchr/testify/require"
)

// counterSource is a splitmix64 stream used to exercise the helpers without
// depending on any generator package.
type counterSource struct {
	state uint64
	calls int
}

func (c *counterSource) Uint64() uint64 {
	c.calls++
	c.state += mix.Golden
	return mix.SplitMix64(c.state)
}

func (c *counterSource) Bits(n int) uint32 { return TopBits(c.Uint64(), n) }

// scriptSource returns the given values in the top 32 bits, then panics.
type scriptSource struct {
	vs    []uint32
	calls int
}

func (s *scriptSource) Uint64() uint64 {
	if s.calls >= len(s.vs) {
		panic("ran out of scripted values")
	}
	v := s.vs[s.calls]
	s.calls++
	return uint64(v) << 32
}

func (s *scriptSource) Bits(n int) uint32 { return TopBits(s.Uint64(), n) }

type fakeStateful struct {
	counterSource
}

func (f *fakeStateful) Name() string     { return "fake" }
func (f *fakeStateful) Seed(seed uint64) { f.state = seed }
func (f *fakeStateful) State() []uint64  { return []uint64{f.state} }

func (f *fakeStateful) SetState(words ...uint64) {
	f.state = 0
	if len(words) > 0 {
		f.state = words[0]
	}
}

func TestTopBitsClamps(t *testing.T) {
	x := uint64(0xF123456789ABCDEF)
	require.Equal(t, uint32(1), TopBits(x, 1))
	require.Equal(t, uint32(1), TopBits(x, 0))
	require.Equal(t, uint32(1), TopBits(x, -5))
	require.Equal(t, uint32(0xF), TopBits(x, 4))
	require.Equal(t, uint32(0xF1234567), TopBits(x, 32))
	require.Equal(t, uint32(0xF1234567), TopBits(x, 64))
}

func TestRegistry(t *testing.T) {
	Register("fake", func(seed uint64) Stateful {
		f := &fakeStateful{}
		f.Seed(seed)
		return f
	})
	Register("", nil)
	defer delete(sources, "fake")

	g, err := New("fake", 9)
	require.NoError(t, err)
	require.Equal(t, []uint64{9}, g.State())
	require.Contains(t, Names(), "fake")

	_, err = New("no-such-generator", 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownSource))

	r, err := Restore("fake", []uint64{77})
	require.NoError(t, err)
	require.Equal(t, []uint64{77}, r.State())
}

func TestNamesSorted(t *testing.T) {
	Register("zz-test", func(uint64) Stateful { return &fakeStateful{} })
	Register("aa-test", func(uint64) Stateful { return &fakeStateful{} })
	defer delete(sources, "zz-test")
	defer delete(sources, "aa-test")

	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestUint32nRejectsBiasedPrefix(t *testing.T) {
	// For n = 3, 2^32 mod 3 = 1, so v = 0 lands in the rejected prefix and
	// the second value is used.
	src := &scriptSource{vs: []uint32{0, 0xFFFFFFFF}}
	require.Equal(t, uint32(2), Uint32n(src, 3))
	require.Equal(t, 2, src.calls)

	// Powers of two never reject.
	src = &scriptSource{vs: []uint32{0}}
	require.Equal(t, uint32(0), Uint32n(src, 8))
	require.Equal(t, 1, src.calls)
}

func TestUint32nZero(t *testing.T) {
	src := &scriptSource{}
	require.Equal(t, uint32(0), Uint32n(src, 0))
	require.Equal(t, 0, src.calls)
}

func TestUint32nUniform(t *testing.T) {
	const n = 7
	const draws = 70000
	src := &counterSource{}
	counts := make([]int, n)
	for i := 0; i < draws; i++ {
		v := Uint32n(src, n)
		if v >= n {
			t.Fatalf("Uint32n returned %d, want < %d", v, n)
		}
		counts[v]++
	}
	for i, c := range counts {
		require.InDelta(t, draws/n, c, draws/n*0.05, "bucket %d", i)
	}
}

func TestRNGBounds(t *testing.T) {
	r := NewRNG(&counterSource{})
	for i := 0; i < 10000; i++ {
		if v := r.IntN(10); v < 0 || v >= 10 {
			t.Fatalf("IntN(10) = %d", v)
		}
		if v := r.Between(-5, 5); v < -5 || v >= 5 {
			t.Fatalf("Between(-5, 5) = %d", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f", f)
		}
		if v := r.Uint8n(3); v >= 3 {
			t.Fatalf("Uint8n(3) = %d", v)
		}
	}
	require.Equal(t, 0, r.IntN(0))
	require.Equal(t, 0, r.IntN(-3))
	require.Equal(t, 4, r.Between(4, 4))
	require.Equal(t, uint8(0), r.Uint8n(0))
}

func TestRNGLargeIntN(t *testing.T) {
	r := NewRNG(&counterSource{})
	const n = 1 << 40
	for i := 0; i < 1000; i++ {
		if v := r.IntN(n); v < 0 || v >= n {
			t.Fatalf("IntN(2^40) = %d", v)
		}
	}
}

func TestFillBinary(t *testing.T) {
	r := NewRNG(&counterSource{})
	buf := make([]uint8, 512)
	FillBinary(r, buf)
	ones := 0
	for _, b := range buf {
		if b > 1 {
			t.Fatalf("FillBinary wrote %d", b)
		}
		ones += int(b)
	}
	require.Greater(t, ones, 0)
	require.Less(t, ones, len(buf))
}

func TestRNGSharesSource(t *testing.T) {
	src := &counterSource{}
	r := NewRNG(src)
	require.Same(t, src, r.Source())
	r.Rand().Uint64()
	require.Equal(t, 1, src.calls)
}

func TestSeedFromString(t *testing.T) {
	require.Equal(t, SeedFromString("overworld"), SeedFromString("overworld"))
	require.NotEqual(t, SeedFromString("overworld"), SeedFromString("underworld"))
}

func TestParseSeed(t *testing.T) {
	require.Equal(t, uint64(42), ParseSeed("42"))
	require.Equal(t, uint64(0xFF), ParseSeed(" 0xff "))
	require.Equal(t, uint64(5), ParseSeed("0b101"))
	require.Equal(t, SeedFromString("castle"), ParseSeed("castle"))
	require.Equal(t, SeedFromString("-1"), ParseSeed("-1"))
}
