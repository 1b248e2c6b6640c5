package app

import (
	"errors"
	"fmt"
	"sort"

	"procrand/internal/core"
	pcore "procrand/pkg/core"

	"github.com/spf13/pflag"
)

// ErrHeadless is returned by Run in builds without the ebiten tag.
var ErrHeadless = errors.New("app: the viewer requires building with the ebiten tag")

// Config holds the viewer's command line settings.
type Config struct {
	View     string
	Seed     string
	Scale    int
	TPS      int
	Steps    int
	HUDWidth int
	// Set holds view parameters given as key=value pairs.
	Set map[string]string
}

// NewConfig returns the default settings.
func NewConfig() *Config {
	return &Config{
		View:     "bitstream",
		Seed:     "0",
		Scale:    4,
		TPS:      60,
		Steps:    30,
		HUDWidth: 220,
		Set:      map[string]string{},
	}
}

// Bind registers the settings as flags on fs.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.View, "view", c.View, "view to open ("+viewNames()+")")
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed, as a number or any string to hash")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Steps, "steps", c.Steps, "view steps per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel, 0 to hide it")
	fs.StringToStringVar(&c.Set, "set", c.Set, "view parameters, e.g. --set w=64,gen=gear")
}

// Validate clamps numeric settings and checks that the view exists.
func (c *Config) Validate() error {
	if _, ok := core.Views()[c.View]; !ok {
		return fmt.Errorf("unknown view %q (have %s)", c.View, viewNames())
	}
	c.Scale = max(c.Scale, 1)
	c.TPS = max(c.TPS, 1)
	c.Steps = max(c.Steps, 1)
	c.HUDWidth = max(c.HUDWidth, 0)
	return nil
}

// SeedValue resolves Seed with core.ParseSeed.
func (c *Config) SeedValue() uint64 {
	return pcore.ParseSeed(c.Seed)
}

// NewView builds the configured view and resets it with the configured
// seed.
func (c *Config) NewView() (core.View, error) {
	f, ok := core.Views()[c.View]
	if !ok {
		return nil, fmt.Errorf("unknown view %q", c.View)
	}
	v := f(c.Set)
	v.Reset(c.SeedValue())
	return v, nil
}

func viewNames() string {
	names := make([]string, 0, len(core.Views()))
	for name := range core.Views() {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprint(names)
}
