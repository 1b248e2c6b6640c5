// Package gear implements a two-register generator. A is a Weyl counter and
// B is an odd multiplier that only advances when A lands below a fixed
// threshold. Because the threshold is odd, B moves an odd number of times for
// every full cycle of A, so the pair has period 2^127 rather than the 2^64 a
// lockstep pair would have.
package gear

import (
	"fmt"

	"procrand/pkg/core"
	"procrand/pkg/mix"
)

// Name is the registry name of the algorithm.
const Name = "gear"

const (
	incA      = 0xC6BC279692B5C323
	incB      = 0x9E3779B97F4A7C16
	threshold = 0xD1B54A32D192ED03
)

// Generator holds the counter A and the odd multiplier B.
type Generator struct {
	a, b uint64
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

// NewWithState returns a generator with registers A and B set from words.
// B is forced odd.
func NewWithState(words ...uint64) *Generator {
	g := &Generator{}
	g.SetState(words...)
	return g
}

// Name returns the registry name.
func (g *Generator) Name() string { return Name }

// Seed derives both registers from seed.
func (g *Generator) Seed(seed uint64) {
	a := mix.Determine(seed)
	g.SetState(a, mix.Determine(a))
}

// State returns A and B.
func (g *Generator) State() []uint64 { return []uint64{g.a, g.b} }

// SetState overwrites the registers. B is forced odd.
func (g *Generator) SetState(words ...uint64) {
	var regs [2]uint64
	copy(regs[:], words)
	g.a = regs[0]
	g.b = regs[1] | 1
}

// Uint64 advances the generator and returns the next output.
func (g *Generator) Uint64() uint64 {
	g.a += incA
	if g.a < threshold {
		g.b += incB
	}
	z := (g.a ^ g.a>>25) * g.b
	return z ^ z>>22
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
	return fmt.Sprintf("%s{a=%016X, b=%016X}", Name, g.a, g.b)
}

func init() {
	core.Register(Name, func(seed uint64) core.Stateful { return New(seed) })
}
