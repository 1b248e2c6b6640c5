package core

import (
	"fmt"
	"sort"
)

// Factory constructs a generator seeded with the provided value.
type Factory func(seed uint64) Stateful

var sources = map[string]Factory{}

// Register adds a generator factory under the provided name. Generator
// packages call it from init.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Sources exposes the registry of available generator factories.
func Sources() map[string]Factory {
	return sources
}

// Names returns the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs the named generator seeded with seed.
func New(name string, seed uint64) (Stateful, error) {
	f, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSource, name)
	}
	return f(seed), nil
}

// Restore constructs the named generator and overwrites its registers with
// state.
func Restore(name string, state []uint64) (Stateful, error) {
	g, err := New(name, 0)
	if err != nil {
		return nil, err
	}
	g.SetState(state...)
	return g, nil
}
