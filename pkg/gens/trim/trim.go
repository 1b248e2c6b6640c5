// Package trim implements a four-register generator built only from adds,
// rotates and xors. D is a plain counter, which keeps the generator out of
// the all-zero state.
package trim

import (
	"fmt"
	"math/bits"

	"procrand/pkg/core"
	"procrand/pkg/mix"
)

// Name is the registry name of the algorithm.
const Name = "trim"

const incD = 0x06A0F81D3D2E35EF

type Generator struct {
	a, b, c, d uint64
}

var (
	_ core.Stateful           = (*Generator)(nil)
	_ core.Copier[*Generator] = (*Generator)(nil)
)

func New(seed uint64) *Generator {
	g := &Generator{}
	g.Seed(seed)
	return g
}

func NewWithState(words ...uint64) *Generator {
	g := &Generator{}
	g.SetState(words...)
	return g
}

func (g *Generator) Name() string { return Name }

func (g *Generator) Seed(seed uint64) {
	var regs [4]uint64
	mix.Expand(seed, regs[:])
	g.SetState(regs[:]...)
}

func (g *Generator) State() []uint64 { return []uint64{g.a, g.b, g.c, g.d} }

// SetState overwrites the registers. Every state is valid.
func (g *Generator) SetState(words ...uint64) {
	var regs [4]uint64
	copy(regs[:], words)
	g.a, g.b, g.c, g.d = regs[0], regs[1], regs[2], regs[3]
}

func (g *Generator) Uint64() uint64 {
	fa, fb, fc, fd := g.a, g.b, g.c, g.d
	g.a = bits.RotateLeft64(fb+fc, 35)
	g.b = bits.RotateLeft64(fc^fd, 46)
	g.c = fa + fb
	g.d = fd + incD
	return fc
}

func (g *Generator) Bits(n int) uint32 { return core.TopBits(g.Uint64(), n) }

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
