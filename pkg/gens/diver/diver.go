// Package diver implements a one-register multiplicative generator. Every
// 64-bit state is valid.
package diver

import (
	"fmt"
	"math/bits"

	"procrand/pkg/core"
)

// Name is the registry name of the algorithm.
const Name = "diver"

type Generator struct {
	state uint64
}

var (
	_ core.Stateful           = (*Generator)(nil)
	_ core.Copier[*Generator] = (*Generator)(nil)
)

func New(seed uint64) *Generator { return &Generator{state: seed} }

func NewWithState(words ...uint64) *Generator {
	g := &Generator{}
	g.SetState(words...)
	return g
}

func (g *Generator) Name() string { return Name }

func (g *Generator) Seed(seed uint64) { g.state = seed }

func (g *Generator) State() []uint64 { return []uint64{g.state} }

func (g *Generator) SetState(words ...uint64) {
	g.state = 0
	if len(words) > 0 {
		g.state = words[0]
	}
}

func (g *Generator) Uint64() uint64 {
	g.state = (g.state ^ 0x6C8E9CF570932BD5) * 0xC6BC279692B5CC83
	z := bits.RotateLeft64(g.state, 27) * 0xDB4F0B9175AE2165
	return z ^ z>>25
}

func (g *Generator) Bits(n int) uint32 { return core.TopBits(g.Uint64(), n) }

func (g *Generator) Copy() *Generator {
	c := *g
	return &c
}

func (g *Generator) String() string {
	return fmt.Sprintf("%s{state=%016X}", Name, g.state)
}

func init() {
	core.Register(Name, func(seed uint64) core.Stateful { return New(seed) })
}
