package trim

import (
	"testing"

	"procrand/internal/gentest"

	"github.com/stretchr/testify/require"
)

func TestConformance(t *testing.T) {
	gentest.Run(t, New)
}

func TestKnownOutputs(t *testing.T) {
	want := []uint64{0x19C85FA7A464173B, 0x3F40F7E384B93A4A, 0x85714EB2C16C418F}
	require.Equal(t, want, gentest.Take(New(42), len(want)))
}

func TestZeroSeedRegisters(t *testing.T) {
	gentest.NonZeroRegisters(t, New(0))
}

func TestCounterAdvances(t *testing.T) {
	g := NewWithState(0, 0, 0, 0)
	g.Uint64()
	require.Equal(t, uint64(incD), g.d)
}
