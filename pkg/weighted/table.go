// Package weighted implements Vose's alias method: a table built once from a
// list of weights that then picks a column in constant time from a single
// 64-bit input.
package weighted

import (
	"math"

	"procrand/pkg/core"
	"procrand/pkg/mix"
)

// maxThreshold means "always keep the column, never take the alias".
const maxThreshold = 0x7FFFFFFF

// Table is an alias table. It is immutable after New and safe for concurrent
// sampling.
type Table struct {
	thresholds []uint32
	aliases    []int
}

// New builds a table from weights. Weights that are zero, negative, NaN or
// infinite count as zero. A single-column table is always valid.
func New(weights []float64) (*Table, error) {
	n := len(weights)
	if n == 0 {
		return nil, ErrNoWeights
	}
	t := &Table{
		thresholds: make([]uint32, n),
		aliases:    make([]int, n),
	}
	if n == 1 {
		t.thresholds[0] = maxThreshold
		return t, nil
	}

	w := make([]float64, n)
	peak := 0.0
	for i, x := range weights {
		if x > 0 && !math.IsInf(x, 1) {
			w[i] = x
			peak = math.Max(peak, x)
		}
	}
	if peak == 0 {
		return nil, ErrNonPositiveSum
	}
	// Scale so the sum cannot overflow.
	sum := 0.0
	for i := range w {
		w[i] /= peak
		sum += w[i]
	}
	avg := sum / float64(n)

	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, x := range w {
		if x < avg {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		t.thresholds[s] = uint32(math.Round(maxThreshold * w[s] / avg))
		t.aliases[s] = l
		w[l] -= avg - w[s]
		if w[l] < avg {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}
	for _, rest := range [][]int{small, large} {
		for _, i := range rest {
			t.thresholds[i] = maxThreshold
			t.aliases[i] = i
		}
	}
	return t, nil
}

// Sample maps state to a column. The same state always gives the same
// column, and a counter fed through Sample picks columns with frequencies
// that converge to the weights.
func (t *Table) Sample(state uint64) int {
	r := mix.Randomize(state)
	col := int((uint64(len(t.thresholds)) * (r >> 32)) >> 32)
	if uint32(r&maxThreshold) < t.thresholds[col] {
		return col
	}
	return t.aliases[col]
}

// SampleFrom draws the next output of src and samples with it.
func (t *Table) SampleFrom(src core.Source) int {
	return t.Sample(src.Uint64())
}

// Size returns the number of columns.
func (t *Table) Size() int { return len(t.thresholds) }

// Probability reconstructs the probability of Sample returning column i from
// the table itself. It returns 0 for out-of-range columns.
func (t *Table) Probability(i int) float64 {
	n := len(t.thresholds)
	if i < 0 || i >= n {
		return 0
	}
	const span = maxThreshold + 1
	p := float64(t.thresholds[i]) / span
	for j, a := range t.aliases {
		if a == i {
			p += float64(span-uint64(t.thresholds[j])) / span
		}
	}
	return p / float64(n)
}
