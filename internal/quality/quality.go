// Package quality runs quick empirical checks on generators and weighted
// tables. The checks catch broken implementations, not subtle statistical
// weaknesses.
package quality

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"runtime"
	"sort"

	"procrand/pkg/core"
	"procrand/pkg/weighted"

	"golang.org/x/sync/errgroup"
)

// zLimit is the largest accepted deviation, in standard deviations.
const zLimit = 6.0

// Report holds the results of Check for one generator.
type Report struct {
	Name    string
	Samples int
	Buckets int
	// ChiSquare is the statistic over Buckets equal buckets of the top 32
	// bits; its expectation is Buckets-1.
	ChiSquare float64
	// Monobit is the z-score of the count of set bits across all outputs.
	Monobit float64
}

// ChiZ converts ChiSquare to an approximate z-score.
func (r Report) ChiZ() float64 {
	df := float64(r.Buckets - 1)
	if df <= 0 {
		return 0
	}
	return (r.ChiSquare - df) / math.Sqrt(2*df)
}

// Pass reports whether both statistics are within zLimit.
func (r Report) Pass() bool {
	return math.Abs(r.ChiZ()) < zLimit && math.Abs(r.Monobit) < zLimit
}

func (r Report) String() string {
	verdict := "ok"
	if !r.Pass() {
		verdict = "FAIL"
	}
	return fmt.Sprintf("%-10s samples=%d chi2=%.1f (z=%+.2f) monobit z=%+.2f %s",
		r.Name, r.Samples, r.ChiSquare, r.ChiZ(), r.Monobit, verdict)
}

// Check draws samples outputs from src.
func Check(name string, src core.Source, samples, buckets int) Report {
	if samples < 1 {
		samples = 1
	}
	if buckets < 2 {
		buckets = 2
	}
	counts := make([]int, buckets)
	ones := 0
	for i := 0; i < samples; i++ {
		x := src.Uint64()
		counts[(uint64(buckets)*(x>>32))>>32]++
		ones += bits.OnesCount64(x)
	}

	expected := float64(samples) / float64(buckets)
	chi := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	n := float64(samples) * 64
	return Report{
		Name:      name,
		Samples:   samples,
		Buckets:   buckets,
		ChiSquare: chi,
		Monobit:   (float64(ones) - n/2) / math.Sqrt(n/4),
	}
}

// SweepConfig controls Sweep.
type SweepConfig struct {
	Names   []string
	Seed    uint64
	Samples int
	Buckets int
	Workers int
}

// Sweep checks every named generator, one goroutine and one generator
// instance per name, at most Workers at a time. Reports come back sorted by
// name.
func Sweep(ctx context.Context, cfg SweepConfig) ([]Report, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	reports := make([]Report, len(cfg.Names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range cfg.Names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := core.New(name, cfg.Seed)
			if err != nil {
				return err
			}
			reports[i] = Check(name, src, cfg.Samples, cfg.Buckets)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(reports, func(a, b int) bool { return reports[a].Name < reports[b].Name })
	return reports, nil
}

// Conservation samples t with the counter states 0..samples-1 and returns the
// largest absolute difference between a column's frequency and its share of
// weights.
func Conservation(t *weighted.Table, weights []float64, samples int) float64 {
	counts := make([]int, t.Size())
	for i := 0; i < samples; i++ {
		counts[t.Sample(uint64(i))]++
	}
	sum := 0.0
	for _, w := range weights {
		if w > 0 && !math.IsInf(w, 1) {
			sum += w
		}
	}
	worst := 0.0
	for i, c := range counts {
		want := 0.0
		if i < len(weights) && weights[i] > 0 && !math.IsInf(weights[i], 1) {
			want = weights[i] / sum
		}
		worst = math.Max(worst, math.Abs(float64(c)/float64(samples)-want))
	}
	return worst
}
