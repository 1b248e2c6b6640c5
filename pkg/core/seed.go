package core

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// SeedFromString hashes a human-readable seed, such as a world name, into a
// 64-bit seed.
func SeedFromString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// ParseSeed reads s as an unsigned integer in any Go literal base (decimal,
// 0x, 0o, 0b). Anything else is hashed with SeedFromString.
func ParseSeed(s string) uint64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseUint(s, 0, 64); err == nil {
		return v
	}
	return SeedFromString(s)
}
