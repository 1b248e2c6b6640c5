package shuffle

import "procrand/pkg/core"

// Slice shuffles s in place with Fisher-Yates, drawing from src. The caller
// keeps ownership of s; nothing retains it.
func Slice[T any](src core.Source, s []T) {
	rng := core.NewRNG(src)
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Ordering returns a random permutation of [0, n).
func Ordering(src core.Source, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	Slice(src, out)
	return out
}

// Portion moves a uniformly chosen subset of count elements to the front of s
// in random order and returns that prefix. count is clamped to [0, len(s)].
// The returned slice aliases s.
func Portion[T any](src core.Source, s []T, count int) []T {
	if count < 0 {
		count = 0
	}
	if count > len(s) {
		count = len(s)
	}
	rng := core.NewRNG(src)
	for i := 0; i < count; i++ {
		j := i + rng.IntN(len(s)-i)
		s[i], s[j] = s[j], s[i]
	}
	return s[:count]
}
