// Package shuffle is a view that reveals the cells of the grid in the order
// an index shuffler visits them. When a block is complete the grid clears and
// the next block starts.
package shuffle

import (
	"strings"

	"procrand/internal/core"
	pshuffle "procrand/pkg/shuffle"
)

const (
	cellHidden = iota
	cellShown
	cellNewest
)

// Config holds parameters for the view.
type Config struct {
	Width  int
	Height int
	Kind   pshuffle.Kind
	Batch  int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 96, Height: 64, Kind: pshuffle.KindLowStorage, Batch: 24}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntFromMap(cfg, "w", c.Width, 1, 2048)
	c.Height = core.IntFromMap(cfg, "h", c.Height, 1, 2048)
	c.Batch = core.IntFromMap(cfg, "batch", c.Batch, 1, c.Width*c.Height)
	if v, ok := cfg["kind"]; ok {
		for _, k := range pshuffle.Kinds() {
			if strings.EqualFold(strings.TrimSpace(v), string(k)) {
				c.Kind = k
			}
		}
	}
	return c
}

// View draws the walk.
type View struct {
	cfg    Config
	grid   *core.ByteGrid
	walk   *pshuffle.Infinite
	newest []int
	shown  int
}

// New returns a view for cfg, seeded with 0.
func New(cfg Config) *View {
	v := &View{cfg: cfg, grid: core.NewByteGrid(cfg.Width, cfg.Height)}
	v.Reset(0)
	return v
}

func (v *View) Name() string    { return "shuffle" }
func (v *View) Size() core.Size { return core.Size{W: v.grid.W, H: v.grid.H} }
func (v *View) Cells() []uint8  { return v.grid.Cells() }

// Reset starts a fresh walk from seed.
func (v *View) Reset(seed uint64) {
	inner, err := pshuffle.New(v.cfg.Kind, v.grid.W*v.grid.H, seed)
	if err != nil {
		inner = pshuffle.NewLowStorage(v.grid.W*v.grid.H, seed)
	}
	v.walk = pshuffle.NewInfinite(inner)
	v.grid.Clear()
	v.newest = v.newest[:0]
	v.shown = 0
}

// Step reveals the next batch of cells.
func (v *View) Step() {
	cells := v.grid.Cells()
	for _, i := range v.newest {
		cells[i] = cellShown
	}
	v.newest = v.newest[:0]
	for n := 0; n < v.cfg.Batch; n++ {
		if v.shown == len(cells) {
			v.grid.Clear()
			v.newest = v.newest[:0]
			v.shown = 0
		}
		i := v.walk.Next()
		cells[i] = cellNewest
		v.newest = append(v.newest, i)
		v.shown++
	}
}

// Block is the number of completed walks since the last reset.
func (v *View) Block() int64 { return v.walk.Block() }

// Palette colors hidden, shown and newest cells.
func (v *View) Palette() []core.Color {
	return []core.Color{
		{R: 12, G: 12, B: 18, A: 255},
		{R: 40, G: 90, B: 170, A: 255},
		{R: 250, G: 250, B: 240, A: 255},
	}
}

// Parameters reports the shuffler state.
func (v *View) Parameters() core.ParameterSnapshot {
	inner := v.walk.Inner()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Shuffler", Params: []core.Parameter{
			core.StringParam("kind", "Kind", string(v.cfg.Kind)),
			core.IntParam("bound", "Bound", inner.Bound()),
			core.IntParam("position", "Position", inner.Position()),
			core.IntParam("block", "Block", int(v.walk.Block())),
		}},
		{Name: "Playback", Params: []core.Parameter{
			core.IntParam("batch", "Cells per step", v.cfg.Batch),
		}},
	}}
}

// ParameterControls exposes the batch size to the HUD.
func (v *View) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "batch", Label: "Cells per step", Step: 8, Min: 1, Max: v.grid.W * v.grid.H},
	}
}

// SetIntParameter updates the batch size.
func (v *View) SetIntParameter(key string, value int) bool {
	if key != "batch" {
		return false
	}
	c := v.ParameterControls()[0]
	v.cfg.Batch = c.Clamp(value)
	return true
}

func init() {
	core.Register("shuffle", func(cfg map[string]string) core.View {
		return New(FromMap(cfg))
	})
}
