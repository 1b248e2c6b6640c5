// Package mix holds stateless integer mixers. Generators use them to spread a
// single seed across several registers, and the weighted table and shufflers
// use them to turn counters and keys into well-distributed bits.
package mix

import "math/bits"

// Golden is 2^64 divided by the golden ratio, rounded to odd.
const Golden = 0x9E3779B97F4A7C15

// SplitMix64 returns the splitmix64 output for the counter value x, that is
// the finalizer applied to x + Golden.
func SplitMix64(x uint64) uint64 {
	z := x + Golden
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Expand fills dst with successive outputs of a Weyl sequence started at seed
// and passed through a splitmix-style finalizer. Distinct seeds give distinct
// first words, and no seed (including zero) yields an all-zero result in
// practice.
func Expand(seed uint64, dst []uint64) {
	for i := range dst {
		seed += Golden
		x := seed
		x ^= x >> 27
		x *= 0x3C79AC492BA7B653
		x ^= x >> 33
		x *= 0x1C69B3F74AC4AE35
		dst[i] = x ^ (x >> 27)
	}
}

// Randomize is a strong unary mixer. It is a bijection on uint64, and
// Randomize(0) is not 0, so it is safe to feed it a plain counter.
func Randomize(x uint64) uint64 {
	x = (x ^ bits.RotateLeft64(x, 41) ^ bits.RotateLeft64(x, 17) ^ 0xD1B54A32D192ED03) * 0xAEF17502108EF2D9
	x = (x ^ (x >> 43) ^ (x >> 31) ^ (x >> 23)) * 0xDB4F0B9175AE2165
	return x ^ (x >> 28)
}

// Determine is a cheaper unary mixer than Randomize with weaker avalanche.
func Determine(x uint64) uint64 {
	x = ((x * 0x632BE59BD9B4E019) ^ Golden) * 0xC6BC279692B5CC83
	x = (x ^ (x >> 27)) * 0xAEF17502108EF2D9
	return x ^ (x >> 25)
}

// Mum multiplies a and b into 128 bits and folds the halves together.
func Mum(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

// Mix32 is a 32-bit avalanche mixer (lowbias32).
func Mix32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7FEB352D
	x ^= x >> 15
	x *= 0x846CA68B
	x ^= x >> 16
	return x
}
