package diver

import (
	"testing"

	"procrand/internal/gentest"

	"github.com/stretchr/testify/require"
)

func TestConformance(t *testing.T) {
	gentest.Run(t, New)
}

func TestKnownOutputs(t *testing.T) {
	want := []uint64{0x4C91561BE97E0A5E, 0x8FAD2BD6C0BACC24, 0x781598495A03B390}
	require.Equal(t, want, gentest.Take(New(42), len(want)))
}

func TestSetStateMissingWord(t *testing.T) {
	g := New(9)
	g.SetState()
	require.Equal(t, []uint64{0}, g.State())
}
