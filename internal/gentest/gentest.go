// Package gentest is a conformance harness shared by the generator packages'
// tests. Every generator runs the same checks: determinism, copy
// independence, state round trips, zero seeds and Bits ranges.
package gentest

import (
	"testing"

	"procrand/pkg/core"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// Generator is what the harness needs from a generator under test.
type Generator[T any] interface {
	core.Stateful
	core.Copier[T]
}

// Stream is the number of outputs compared by the determinism checks.
const Stream = 10000

// Run executes the conformance checks against the generator returned by
// newGen.
func Run[T Generator[T]](t *testing.T, newGen func(seed uint64) T) {
	t.Helper()

	t.Run("Deterministic", func(t *testing.T) {
		for _, seed := range []uint64{0, 1, 42, 0xDEADBEEF, ^uint64(0)} {
			a := newGen(seed)
			b := newGen(seed)
			if diff := cmp.Diff(Take(a, Stream), Take(b, Stream)); diff != "" {
				t.Fatalf("seed %#x: streams differ (-a +b):\n%s", seed, diff)
			}
		}
	})

	t.Run("SeedsDiffer", func(t *testing.T) {
		a := Take(newGen(1), 16)
		b := Take(newGen(2), 16)
		require.NotEqual(t, a, b)
	})

	t.Run("Reseed", func(t *testing.T) {
		g := newGen(7)
		want := Take(g, 32)
		Take(g, 100)
		g.Seed(7)
		require.Equal(t, want, Take(g, 32))
	})

	t.Run("CopyIndependent", func(t *testing.T) {
		g := newGen(99)
		Take(g, 17)
		c := g.Copy()
		want := Take(g, 1000)
		require.Equal(t, want, Take(c, 1000))

		// Advancing the copy must not move the source generator.
		g2 := newGen(99)
		c2 := g2.Copy()
		Take(c2, 50)
		require.Equal(t, Take(newGen(99), 10), Take(g2, 10))
	})

	t.Run("StateRoundTrip", func(t *testing.T) {
		g := newGen(1234)
		Take(g, 33)
		state := g.State()
		want := Take(g, 1000)

		fresh := newGen(0)
		fresh.SetState(state...)
		require.Equal(t, state, fresh.State())
		require.Equal(t, want, Take(fresh, 1000))

		// State returns a copy.
		s := fresh.State()
		for i := range s {
			s[i] ^= 0xFF
		}
		require.NotEqual(t, s, fresh.State())
	})

	t.Run("RestoreFromRegistry", func(t *testing.T) {
		g := newGen(5)
		Take(g, 3)
		r, err := core.Restore(g.Name(), g.State())
		require.NoError(t, err)
		require.Equal(t, Take(g, 64), Take(r, 64))
	})

	t.Run("ZeroSeed", func(t *testing.T) {
		out := Take(newGen(0), 64)
		require.True(t, anyNonZero(out), "zero seed produced an all-zero stream")
	})

	t.Run("ZeroState", func(t *testing.T) {
		g := newGen(0)
		zeros := make([]uint64, len(g.State()))
		g.SetState(zeros...)
		require.True(t, anyNonZero(Take(g, 64)), "all-zero state produced an all-zero stream")
	})

	t.Run("Bits", func(t *testing.T) {
		g := newGen(31337)
		for n := -1; n <= 40; n++ {
			width := n
			if width < 1 {
				width = 1
			}
			if width > 32 {
				width = 32
			}
			for i := 0; i < 200; i++ {
				v := g.Bits(n)
				if width < 32 && v >= 1<<width {
					t.Fatalf("Bits(%d) = %d, out of range", n, v)
				}
			}
		}
		// Bits uses the top of the 64-bit output.
		a := newGen(8)
		b := newGen(8)
		for i := 0; i < 100; i++ {
			require.Equal(t, uint32(a.Uint64()>>52), b.Bits(12))
		}
	})

	t.Run("BitBalance", func(t *testing.T) {
		g := newGen(2024)
		ones := 0
		const draws = 20000
		for i := 0; i < draws; i++ {
			ones += int(g.Bits(1))
		}
		// Roughly 7 standard deviations either side.
		require.InDelta(t, draws/2, ones, 500)
	})
}

// NonZeroRegisters fails the test when every register of g is zero.
func NonZeroRegisters(t *testing.T, g core.Stateful) {
	t.Helper()
	require.True(t, anyNonZero(g.State()), "%s: every register is zero", g.Name())
}

// Take draws n values from src.
func Take(src core.Source, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = src.Uint64()
	}
	return out
}

func anyNonZero(words []uint64) bool {
	for _, w := range words {
		if w != 0 {
			return true
		}
	}
	return false
}
