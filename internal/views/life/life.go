// Package life runs Conway's Game of Life from a board filled by a procrand
// generator, as a visual check that seeding is deterministic.
package life

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
	// Density is the percentage of cells alive after a reset.
	Density int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Generator: "gear", Density: 50}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntFromMap(cfg, "w", c.Width, 3, 4096)
	c.Height = core.IntFromMap(cfg, "h", c.Height, 3, 4096)
	c.Generator = core.GeneratorFromMap(cfg, "gen", c.Generator)
	c.Density = core.IntFromMap(cfg, "density", c.Density, 0, 100)
	return c
}

// Life implements the Game of Life with toroidal wrapping.
type Life struct {
	cfg  Config
	cur  *core.ByteGrid
	nxt  *core.ByteGrid
	gen  int
	seed uint64
}

// New returns a board for cfg. The board starts empty; call Reset to fill
// it.
func New(cfg Config) *Life {
	return &Life{
		cfg: cfg,
		cur: core.NewByteGrid(cfg.Width, cfg.Height),
		nxt: core.NewByteGrid(cfg.Width, cfg.Height),
	}
}

func (l *Life) Name() string    { return "life" }
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }
func (l *Life) Cells() []uint8  { return l.cur.Cells() }

// Reset fills the board from the configured generator seeded with seed.
func (l *Life) Reset(seed uint64) {
	src, err := pcore.New(l.cfg.Generator, seed)
	if err != nil {
		panic(fmt.Sprintf("life: %v", err))
	}
	rng := pcore.NewRNG(src)
	cells := l.cur.Cells()
	if l.cfg.Density == 50 {
		pcore.FillBinary(rng, cells)
	} else {
		for i := range cells {
			cells[i] = 0
			if rng.IntN(100) < l.cfg.Density {
				cells[i] = 1
			}
		}
	}
	l.gen = 0
	l.seed = seed
}

// Step advances the board by one generation.
func (l *Life) Step() {
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := 0; y < l.cur.H; y++ {
		for x := 0; x < l.cur.W; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx != 0 || dy != 0 {
						nx, ny := l.cur.Wrap(x+dx, y+dy)
						neighbors += int(cur[l.cur.Index(nx, ny)])
					}
				}
			}
			idx := l.cur.Index(x, y)
			alive := cur[idx] == 1
			nxt[idx] = 0
			if neighbors == 3 || (alive && neighbors == 2) {
				nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// Population counts live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur.Cells() {
		n += int(c)
	}
	return n
}

// Parameters reports the board state.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Board", Params: []core.Parameter{
			core.StringParam("gen", "Generator", l.cfg.Generator),
			core.StringParam("seed", "Seed", fmt.Sprintf("%016X", l.seed)),
			core.IntParam("generation", "Generation", l.gen),
			core.IntParam("population", "Population", l.Population()),
		}},
		{Name: "Reset", Params: []core.Parameter{
			core.IntParam("density", "Density %", l.cfg.Density),
		}},
	}}
}

// ParameterControls exposes the reset density to the HUD.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: "density", Label: "Density %", Step: 5, Min: 0, Max: 100}}
}

// SetIntParameter updates the density used by the next reset.
func (l *Life) SetIntParameter(key string, value int) bool {
	if key != "density" {
		return false
	}
	l.cfg.Density = l.ParameterControls()[0].Clamp(value)
	return true
}

func init() {
	core.Register("life", func(cfg map[string]string) core.View {
		l := New(FromMap(cfg))
		l.Reset(0)
		return l
	})
}
