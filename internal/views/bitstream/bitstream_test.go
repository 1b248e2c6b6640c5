package bitstream

import (
	"testing"

	_ "procrand/pkg/gens"
	"procrand/pkg/gens/gear"

	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "70", "h": "0", "gen": "gear"})
	require.Equal(t, 70, c.Width)
	require.Equal(t, DefaultConfig().Height, c.Height)
	require.Equal(t, "gear", c.Generator)
}

func TestRowsMatchGenerator(t *testing.T) {
	v := New(Config{Width: 70, Height: 2, Generator: "gear"})
	v.Reset(9)

	ref := gear.New(9)
	for y := 0; y < 2; y++ {
		w0, w1 := ref.Uint64(), ref.Uint64()
		row := v.Cells()[y*70 : (y+1)*70]
		for x := 0; x < 64; x++ {
			require.Equal(t, uint8(w0>>(63-x)&1), row[x])
		}
		for x := 64; x < 70; x++ {
			require.Equal(t, uint8(w1>>(63-(x-64))&1), row[x])
		}
	}

	// Step scrolls row 1 into row 0.
	row1 := append([]uint8(nil), v.Cells()[70:]...)
	v.Step()
	require.Equal(t, row1, v.Cells()[:70])
}

func TestResetDeterministic(t *testing.T) {
	a := New(DefaultConfig())
	b := New(DefaultConfig())
	a.Reset(77)
	b.Reset(77)
	a.Step()
	b.Step()
	require.Equal(t, a.Cells(), b.Cells())

	b.Reset(78)
	require.NotEqual(t, a.Cells(), b.Cells())
}

func TestParameters(t *testing.T) {
	v := New(DefaultConfig())
	v.Reset(255)
	p, ok := v.Parameters().Lookup("seed")
	require.True(t, ok)
	require.Equal(t, "00000000000000FF", p.Value)
}
