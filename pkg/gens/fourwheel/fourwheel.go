// Package fourwheel implements a four-register generator that mixes with a
// multiply, an add, a rotate-subtract and an xor per step. It is fast and
// passes large statistical batteries, but its period is only known
// empirically and not every 64-bit output is guaranteed to be reachable.
package fourwheel

import (
	"fmt"
	"math/bits"

	"procrand/pkg/core"
	"procrand/pkg/mix"
)

// Name is the registry name of the algorithm.
const Name = "fourwheel"

const (
	mulA    = 0xD1342543DE82EF95
	mulAInv = 0x572B5EE77A54E3BD
	addB    = 0xC6BC279692B5C323
)

// The all-zero state is a fixed point of the step. SetState replaces it
// with this one.
const (
	fallbackA = 0x9E3779B97F4A7C15
	fallbackB = 0x6C8E9CF570932BD5
	fallbackC = 0xDB4F0B9175AE2165
	fallbackD = 0x1C69B3F74AC4AE35
)

// Generator holds the four registers.
type Generator struct {
	a, b, c, d uint64
}

var (
	_ core.Stateful           = (*Generator)(nil)
	_ core.Copier[*Generator] = (*Generator)(nil)
)

// New returns a generator seeded with seed.
func New(seed uint64) *Generator {
	g := &Generator{}
	g.Seed(seed)
	return g
}

// NewWithState returns a generator with its registers set to words, in the
// order A, B, C, D.
func NewWithState(words ...uint64) *Generator {
	g := &Generator{}
	g.SetState(words...)
	return g
}

// Name returns the registry name.
func (g *Generator) Name() string { return Name }

// Seed spreads seed across all four registers.
func (g *Generator) Seed(seed uint64) {
	var regs [4]uint64
	mix.Expand(seed, regs[:])
	g.SetState(regs[:]...)
}

// State returns the registers in the order A, B, C, D.
func (g *Generator) State() []uint64 {
	return []uint64{g.a, g.b, g.c, g.d}
}

// SetState overwrites the registers.
func (g *Generator) SetState(words ...uint64) {
	var regs [4]uint64
	copy(regs[:], words)
	g.a, g.b, g.c, g.d = regs[0], regs[1], regs[2], regs[3]
	if g.a|g.b|g.c|g.d == 0 {
		g.a, g.b, g.c, g.d = fallbackA, fallbackB, fallbackC, fallbackD
	}
}

// Uint64 advances the generator and returns the previous value of D.
func (g *Generator) Uint64() uint64 {
	fa, fb, fc, fd := g.a, g.b, g.c, g.d
	g.a = mulA * fd
	g.b = fa + addB
	g.c = bits.RotateLeft64(fb, 47) - fd
	g.d = fb ^ fc
	return fd
}

// Previous undoes one call to Uint64 and returns the value that call
// returned.
func (g *Generator) Previous() uint64 {
	fd := g.a * mulAInv
	fa := g.b - addB
	fb := bits.RotateLeft64(g.c+fd, -47)
	fc := g.d ^ fb
	g.a, g.b, g.c, g.d = fa, fb, fc, fd
	return fd
}

// Bits returns the top n bits of the next output.
func (g *Generator) Bits(n int) uint32 {
	return core.TopBits(g.Uint64(), n)
}

// Copy returns an independent generator with the same state.
func (g *Generator) Copy() *Generator {
	c := *g
	return &c
}

func (g *Generator) String() string {
	return fmt.Sprintf("%s{a=%016X, b=%016X, c=%016X, d=%016X}", Name, g.a, g.b, g.c, g.d)
}

func init() {
	core.Register(Name, func(seed uint64) core.Stateful { return New(seed) })
}
