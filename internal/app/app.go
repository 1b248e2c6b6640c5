//go:build ebiten

package app

import (
	"errors"
	"time"

	"procrand/internal/core"
	"procrand/internal/logger"
	"procrand/internal/render"
	"procrand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a view to the ebiten.Game interface.
type Game struct {
	view    core.View
	painter *render.GridPainter
	hud     *ui.HUD
	palette []core.Color
	timer   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     uint64
}

// New constructs a Game for the provided view.
func New(view core.View, cfg *Config) *Game {
	size := view.Size()
	g := &Game{
		view:    view,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(view, cfg.HUDWidth),
		palette: render.DefaultPalette,
		timer:   core.NewFixedStep(cfg.Steps),
		scale:   cfg.Scale,
		seed:    cfg.SeedValue(),
	}
	if p, ok := view.(core.Palette); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset rebuilds the view from seed.
func (g *Game) Reset(seed uint64) {
	g.seed = seed
	g.view.Reset(seed)
	g.tickOnce = false
	logger.Log().Info().Str("view", g.view.Name()).Uint64("seed", seed).Msg("reset")
}

// Update handles per-frame logic and advances the view.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(uint64(time.Now().UnixNano()))
	}

	g.hud.Update(g.view.Size().W * g.scale)

	if g.tickOnce || (!g.paused && g.timer.ShouldStep()) {
		g.view.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current view and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.view.Cells(), g.palette, g.scale)
	g.hud.Draw(screen, g.view.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.view.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

// Run opens a window on the configured view and blocks until it closes.
func Run(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	view, err := cfg.NewView()
	if err != nil {
		return err
	}
	game := New(view, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("procrand: " + view.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	logger.Log().Info().Str("view", view.Name()).Uint64("seed", cfg.SeedValue()).Msg("viewer started")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
