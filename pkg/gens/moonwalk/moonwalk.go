// Package moonwalk implements a splitmix64 counter generator. Because the
// state is a plain Weyl counter, the generator can step backwards and skip
// any distance in constant time.
package moonwalk

import (
	"fmt"

	"procrand/pkg/core"
	"procrand/pkg/mix"
)

// Name is the registry name of the algorithm.
const Name = "moonwalk"

// Generator holds the counter.
type Generator struct {
	state uint64
}

var (
	_ core.Stateful           = (*Generator)(nil)
	_ core.Copier[*Generator] = (*Generator)(nil)
)

// New returns a generator whose counter starts at seed.
func New(seed uint64) *Generator { return &Generator{state: seed} }

// NewWithState returns a generator whose counter is words[0].
func NewWithState(words ...uint64) *Generator {
	g := &Generator{}
	g.SetState(words...)
	return g
}

// Name returns the registry name.
func (g *Generator) Name() string { return Name }

// Seed sets the counter.
func (g *Generator) Seed(seed uint64) { g.state = seed }

// State returns the counter.
func (g *Generator) State() []uint64 { return []uint64{g.state} }

// SetState sets the counter. Every value is valid.
func (g *Generator) SetState(words ...uint64) {
	g.state = 0
	if len(words) > 0 {
		g.state = words[0]
	}
}

// Uint64 advances the counter and returns its mixed value.
func (g *Generator) Uint64() uint64 {
	out := mix.SplitMix64(g.state)
	g.state += mix.Golden
	return out
}

// Previous steps the counter back and returns the value the last call to
// Uint64 returned.
func (g *Generator) Previous() uint64 {
	g.state -= mix.Golden
	return mix.SplitMix64(g.state)
}

// Skip moves the counter by n outputs, forwards for positive n and backwards
// for negative n, and returns the output the next call to Uint64 would
// produce without consuming it.
func (g *Generator) Skip(n int64) uint64 {
	g.state += mix.Golden * uint64(n)
	return mix.SplitMix64(g.state)
}

// Bits returns the top n bits of the next output.
func (g *Generator) Bits(n int) uint32 { return core.TopBits(g.Uint64(), n) }

// Copy returns an independent generator with the same counter.
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
