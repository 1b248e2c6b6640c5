// Package weighted is a view that samples an alias table with a counter and
// draws the running histogram next to the target weights.
package weighted

import (
	"procrand/internal/core"
	pweighted "procrand/pkg/weighted"
)

const (
	cellEmpty = iota
	cellBar
	cellTarget
)

// Config holds parameters for the view.
type Config struct {
	Width   int
	Height  int
	Weights []float64
	Batch   int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:   160,
		Height:  100,
		Weights: []float64{1, 2, 4, 8, 4, 2, 1},
		Batch:   500,
	}
}

// FromMap populates a Config from a string map. Weights are given as a comma
// separated list; a list that does not parse or builds no table is ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntFromMap(cfg, "w", c.Width, 1, 4096)
	c.Height = core.IntFromMap(cfg, "h", c.Height, 1, 4096)
	c.Batch = core.IntFromMap(cfg, "batch", c.Batch, 1, 1<<20)
	if v, ok := cfg["weights"]; ok {
		if ws, err := pweighted.ParseWeights(v); err == nil {
			if _, err := pweighted.New(ws); err == nil {
				c.Weights = ws
			}
		}
	}
	return c
}

// View draws the histogram.
type View struct {
	cfg     Config
	grid    *core.ByteGrid
	table   *pweighted.Table
	counts  []int
	total   int
	counter uint64
}

// New returns a view for cfg, seeded with 0. cfg.Weights must build a table.
func New(cfg Config) *View {
	table, err := pweighted.New(cfg.Weights)
	if err != nil {
		table, _ = pweighted.New(DefaultConfig().Weights)
	}
	v := &View{
		cfg:    cfg,
		grid:   core.NewByteGrid(cfg.Width, cfg.Height),
		table:  table,
		counts: make([]int, table.Size()),
	}
	v.Reset(0)
	return v
}

func (v *View) Name() string    { return "weighted" }
func (v *View) Size() core.Size { return core.Size{W: v.grid.W, H: v.grid.H} }
func (v *View) Cells() []uint8  { return v.grid.Cells() }

// Reset clears the histogram and starts the counter at seed.
func (v *View) Reset(seed uint64) {
	v.counter = seed
	v.total = 0
	for i := range v.counts {
		v.counts[i] = 0
	}
	v.draw()
}

// Step samples another batch.
func (v *View) Step() {
	for n := 0; n < v.cfg.Batch; n++ {
		v.counts[v.table.Sample(v.counter)]++
		v.counter++
	}
	v.total += v.cfg.Batch
	v.draw()
}

// Counts returns the per-column sample counts so far.
func (v *View) Counts() []int { return v.counts }

// draw scales bars so that a column sampled with probability 1 would fill
// the height, and marks each column's target probability with a line.
func (v *View) draw() {
	v.grid.Clear()
	cells := v.grid.Cells()
	cols := len(v.counts)
	h := v.grid.H
	for x := 0; x < v.grid.W; x++ {
		col := x * cols / v.grid.W
		// Leave a one-cell gap at each column's left edge.
		if x > 0 && (x-1)*cols/v.grid.W != col {
			continue
		}
		bar := 0
		if v.total > 0 {
			bar = v.counts[col] * h / v.total
		}
		for y := h - bar; y < h; y++ {
			cells[v.grid.Index(x, y)] = cellBar
		}
		target := h - 1 - int(v.table.Probability(col)*float64(h-1))
		cells[v.grid.Index(x, target)] = cellTarget
	}
}

// Palette colors empty space, bars and target markers.
func (v *View) Palette() []core.Color {
	return []core.Color{
		{R: 10, G: 10, B: 14, A: 255},
		{R: 70, G: 160, B: 90, A: 255},
		{R: 240, G: 80, B: 60, A: 255},
	}
}

// Parameters reports the table size and sample count.
func (v *View) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Table", Params: []core.Parameter{
			core.IntParam("columns", "Columns", v.table.Size()),
			core.IntParam("samples", "Samples", v.total),
		}},
		{Name: "Playback", Params: []core.Parameter{
			core.IntParam("batch", "Samples per step", v.cfg.Batch),
		}},
	}}
}

// ParameterControls exposes the batch size to the HUD.
func (v *View) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "batch", Label: "Samples per step", Step: 100, Min: 1, Max: 1 << 20},
	}
}

// SetIntParameter updates the batch size.
func (v *View) SetIntParameter(key string, value int) bool {
	if key != "batch" {
		return false
	}
	v.cfg.Batch = v.ParameterControls()[0].Clamp(value)
	return true
}

func init() {
	core.Register("weighted", func(cfg map[string]string) core.View {
		return New(FromMap(cfg))
	})
}
