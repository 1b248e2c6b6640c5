package moonwalk

import (
	"testing"

	"procrand/internal/gentest"

	"github.com/stretchr/testify/require"
)

func TestConformance(t *testing.T) {
	gentest.Run(t, New)
}

func TestKnownOutputs(t *testing.T) {
	// Reference splitmix64 seeded with 42.
	want := []uint64{0xBDD732262FEB6E95, 0x28EFE333B266F103, 0x47526757130F9F52}
	require.Equal(t, want, gentest.Take(New(42), len(want)))
}

func TestPrevious(t *testing.T) {
	g := New(100)
	outs := gentest.Take(g, 50)
	for i := len(outs) - 1; i >= 0; i-- {
		require.Equal(t, outs[i], g.Previous())
	}
	require.Equal(t, []uint64{100}, g.State())
}

func TestSkip(t *testing.T) {
	ref := New(5)
	outs := gentest.Take(ref, 1000)

	g := New(5)
	require.Equal(t, outs[999], g.Skip(999))
	require.Equal(t, outs[999], g.Uint64())

	require.Equal(t, outs[10], g.Skip(-990))
	require.Equal(t, outs[10], g.Uint64())

	g = New(5)
	require.Equal(t, outs[0], g.Skip(0))
}
