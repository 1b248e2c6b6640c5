package core

import (
	"testing"

	_ "procrand/pkg/gens"

	"github.com/stretchr/testify/require"
)

func TestByteGrid(t *testing.T) {
	g := NewByteGrid(0, -2)
	require.Equal(t, 1, g.W)
	require.Equal(t, 1, g.H)

	g = NewByteGrid(4, 3)
	require.Len(t, g.Cells(), 12)
	x, y := g.Wrap(-1, 3)
	require.Equal(t, 3, x)
	require.Equal(t, 0, y)
	g.Cells()[g.Index(x, y)] = 7
	require.Equal(t, uint8(7), g.Cells()[3])

	g.ShiftUp()
	require.Equal(t, make([]uint8, 12), g.Cells())

	g.Cells()[g.Index(1, 2)] = 1
	g.ShiftUp()
	require.Equal(t, uint8(1), g.Cells()[g.Index(1, 1)])
	require.Equal(t, uint8(0), g.Cells()[g.Index(1, 2)])

	g.Clear()
	require.Equal(t, make([]uint8, 12), g.Cells())
}

func TestIntFromMap(t *testing.T) {
	cfg := map[string]string{"w": "64", "h": "-3", "n": "x"}
	require.Equal(t, 64, IntFromMap(cfg, "w", 10, 1, 100))
	require.Equal(t, 10, IntFromMap(cfg, "h", 10, 1, 100))
	require.Equal(t, 10, IntFromMap(cfg, "n", 10, 1, 100))
	require.Equal(t, 10, IntFromMap(nil, "w", 10, 1, 100))
}

func TestGeneratorFromMap(t *testing.T) {
	require.Equal(t, "gear", GeneratorFromMap(map[string]string{"gen": " gear "}, "gen", "fourwheel"))
	require.Equal(t, "fourwheel", GeneratorFromMap(map[string]string{"gen": "nope"}, "gen", "fourwheel"))
	require.Equal(t, "fourwheel", GeneratorFromMap(nil, "gen", "fourwheel"))
}

func TestParameterSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Source", Params: []Parameter{StringParam("gen", "Generator", "gear")}},
		{Name: "Grid", Params: []Parameter{IntParam("w", "Width", 32)}},
	}}
	p, ok := s.Lookup("w")
	require.True(t, ok)
	require.Equal(t, "32", p.Value)
	_, ok = s.Lookup("missing")
	require.False(t, ok)
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 1, Max: 10}
	require.Equal(t, 1, c.Clamp(-5))
	require.Equal(t, 10, c.Clamp(50))
	require.Equal(t, 4, c.Clamp(4))

	open := ParameterControl{Min: 1}
	require.Equal(t, 500, open.Clamp(500))
}

func TestFixedStep(t *testing.T) {
	f := NewFixedStep(0)
	require.True(t, f.ShouldStep(), "first call runs a step immediately")
	f.SetTPS(1)
	require.False(t, f.ShouldStep())
}
