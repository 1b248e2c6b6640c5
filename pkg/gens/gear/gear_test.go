package gear

import (
	"testing"

	"procrand/internal/gentest"

	"github.com/stretchr/testify/require"
)

func TestConformance(t *testing.T) {
	gentest.Run(t, New)
}

func TestKnownOutputs(t *testing.T) {
	want := []uint64{0x0EFE110D3B345112, 0x5F5B4130DE4D7E5B, 0xBDD6B680D4859F29}
	require.Equal(t, want, gentest.Take(New(42), len(want)))
}

func TestZeroSeedRegisters(t *testing.T) {
	gentest.NonZeroRegisters(t, New(0))
}

func TestMultiplierStaysOdd(t *testing.T) {
	g := NewWithState(5, 8)
	require.Equal(t, []uint64{5, 9}, g.State())
	for i := 0; i < 10000; i++ {
		g.Uint64()
		if g.b&1 == 0 {
			t.Fatalf("B became even after %d steps: %s", i+1, g)
		}
	}
}

func TestGearShift(t *testing.T) {
	// A just below the threshold after stepping: B advances.
	g := NewWithState(threshold-1-incA, 1)
	g.Uint64()
	require.Equal(t, uint64(1+incB), g.b)

	// A at the threshold after stepping: B holds.
	g = NewWithState(threshold-incA, 1)
	g.Uint64()
	require.Equal(t, uint64(1), g.b)
}

func TestCopyIsDetached(t *testing.T) {
	g := New(3)
	c := g.Copy()
	c.SetState(0, 0)
	require.NotEqual(t, g.State(), c.State())
}
