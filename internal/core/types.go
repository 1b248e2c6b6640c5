package core

// Size describes the dimensions of a view grid.
type Size struct {
	W int
	H int
}

// View is a scene the viewer can display: a grid of byte-sized cells driven
// by one of the procrand generators, shufflers or tables.
type View interface {
	Name() string
	Size() Size
	// Reset rebuilds the scene from seed. Equal seeds give equal scenes.
	Reset(seed uint64)
	Step()
	Cells() []uint8
}

// Palette is implemented by views whose cells hold more than two states.
type Palette interface {
	Palette() []Color
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Factory constructs a View using an optional configuration map.
type Factory func(cfg map[string]string) View

var views = map[string]Factory{}

// Register adds a view factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	views[name] = f
}

// Views exposes the registry of available view factories.
func Views() map[string]Factory {
	return views
}
