package core

// Uint32n returns a uniformly distributed value in [0, n) using the top 32 bits
// of src's output. It returns 0 when n is 0.
//
// This is Lemire's multiply-and-reject method: v*n is split into a high word,
// which is the candidate result, and a low word. Values of v whose low word
// falls below 2^32 mod n belong to the over-represented prefix of a bucket and
// are rejected, which removes the modulo bias without a division on the fast
// path.
func Uint32n(src Source, n uint32) uint32 {
	if n == 0 {
		return 0
	}
	prod := uint64(uint32(src.Uint64()>>32)) * uint64(n)
	low := uint32(prod)
	if low < n {
		// 2^32 mod n, computed in 32 bits.
		thresh := -n % n
		for low < thresh {
			prod = uint64(uint32(src.Uint64()>>32)) * uint64(n)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}
