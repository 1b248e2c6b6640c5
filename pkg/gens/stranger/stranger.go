// Package stranger implements a four-register generator whose A and B
// registers form a xorshift pair. The pair must never be all zero, so each of
// A and B has a nonzero fallback applied whenever it would be set to zero.
package stranger

import (
	"fmt"
	"math/bits"

	"procrand/pkg/core"
)

// Name is the registry name of the algorithm.
const Name = "stranger"

const (
	seedXor   = 0xFA346CBFD5890825
	incD      = 0xC6BC279692B5C323
	fallbackA = 0xD3833E804F4C574B
	fallbackB = 0x790B300BF9FE738F
	jumpPoly  = 0x5556837749D9A17F
)

// Generator holds the xorshift pair A, B and the chaotic registers C, D.
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
// order A, B, C, D. Zero A or B registers are replaced by fallbacks.
func NewWithState(words ...uint64) *Generator {
	g := &Generator{}
	g.SetState(words...)
	return g
}

// Name returns the registry name.
func (g *Generator) Name() string { return Name }

// Seed derives every register from seed. B, C and D are jumped far along the
// xorshift sequence from A so that nearby seeds do not share registers.
func (g *Generator) Seed(seed uint64) {
	a := seed ^ seedXor
	if a == 0 {
		a = fallbackA
	}
	b := Jump(a)
	c := Jump(b - seed)
	d := Jump(c + incD)
	g.SetState(a, b, c, d)
}

// State returns the registers in the order A, B, C, D.
func (g *Generator) State() []uint64 { return []uint64{g.a, g.b, g.c, g.d} }

// SetState overwrites the registers, replacing a zero A or B with its
// fallback.
func (g *Generator) SetState(words ...uint64) {
	var regs [4]uint64
	copy(regs[:], words)
	g.a, g.b, g.c, g.d = regs[0], regs[1], regs[2], regs[3]
	if g.a == 0 {
		g.a = fallbackA
	}
	if g.b == 0 {
		g.b = fallbackB
	}
}

// Uint64 advances the generator and returns the previous value of C.
func (g *Generator) Uint64() uint64 {
	fa, fb, fc, fd := g.a, g.b, g.c, g.d
	g.a = fb ^ fb<<7
	g.b = fa ^ fa>>9
	g.c = bits.RotateLeft64(fd, 39) - fb
	g.d = fa - fc + incD
	return fc
}

// Bits returns the top n bits of the next output.
func (g *Generator) Bits(n int) uint32 { return core.TopBits(g.Uint64(), n) }

// Copy returns an independent generator with the same state.
func (g *Generator) Copy() *Generator {
	c := *g
	return &c
}

func (g *Generator) String() string {
	return fmt.Sprintf("%s{a=%016X, b=%016X, c=%016X, d=%016X}", Name, g.a, g.b, g.c, g.d)
}

// Jump applies a fixed power of the 64-bit xorshift step x ^= x<<7; x ^= x>>9
// to state. It maps nonzero inputs to nonzero outputs and 0 to 0.
func Jump(state uint64) uint64 {
	var val uint64
	for i := 0; i < 63; i++ {
		if jumpPoly&(uint64(1)<<i) != 0 {
			val ^= state
		}
		state ^= state << 7
		state ^= state >> 9
	}
	return val
}

func init() {
	core.Register(Name, func(seed uint64) core.Stateful { return New(seed) })
}
