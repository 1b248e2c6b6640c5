// Package bitstream is a view that scrolls a generator's output bits up the
// screen, one row per step. Patterns in the image point at a broken
// generator.
package bitstream

import (
	"fmt"

	"procrand/internal/core"
	pcore "procrand/pkg/core"
)

// Config holds parameters for the view.
type Config struct {
	Width     int
	Height    int
	Generator string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 192, Height: 128, Generator: "fourwheel"}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntFromMap(cfg, "w", c.Width, 1, 4096)
	c.Height = core.IntFromMap(cfg, "h", c.Height, 1, 4096)
	c.Generator = core.GeneratorFromMap(cfg, "gen", c.Generator)
	return c
}

// View renders the bit stream.
type View struct {
	cfg  Config
	grid *core.ByteGrid
	src  pcore.Stateful
	seed uint64
}

// New returns a view for cfg, seeded with 0.
func New(cfg Config) *View {
	v := &View{cfg: cfg, grid: core.NewByteGrid(cfg.Width, cfg.Height)}
	v.Reset(0)
	return v
}

func (v *View) Name() string        { return "bitstream" }
func (v *View) Size() core.Size     { return core.Size{W: v.grid.W, H: v.grid.H} }
func (v *View) Cells() []uint8      { return v.grid.Cells() }
func (v *View) Source() pcore.Source { return v.src }

// Reset reseeds the generator and fills the screen.
func (v *View) Reset(seed uint64) {
	v.seed = seed
	src, err := pcore.New(v.cfg.Generator, seed)
	if err != nil {
		panic(fmt.Sprintf("bitstream: %v", err))
	}
	v.src = src
	for y := 0; y < v.grid.H; y++ {
		v.fillRow(v.grid.Row(y))
	}
}

// Step scrolls up one row and draws a fresh row at the bottom.
func (v *View) Step() {
	v.grid.ShiftUp()
	v.fillRow(v.grid.Row(v.grid.H - 1))
}

func (v *View) fillRow(row []uint8) {
	for x := 0; x < len(row); x += 64 {
		word := v.src.Uint64()
		for b := 0; b < 64 && x+b < len(row); b++ {
			row[x+b] = uint8(word >> (63 - b) & 1)
		}
	}
}

// Parameters reports the generator and its current registers.
func (v *View) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Source", Params: []core.Parameter{
			core.StringParam("gen", "Generator", v.cfg.Generator),
			core.StringParam("seed", "Seed", fmt.Sprintf("%016X", v.seed)),
		}},
		{Name: "Grid", Params: []core.Parameter{
			core.IntParam("w", "Width", v.grid.W),
			core.IntParam("h", "Height", v.grid.H),
		}},
	}}
}

func init() {
	core.Register("bitstream", func(cfg map[string]string) core.View {
		return New(FromMap(cfg))
	})
}
