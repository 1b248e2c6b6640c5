//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"procrand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor  = color.RGBA{R: 150, G: 150, B: 165, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
)

// HUD renders the parameter panel to the right of the view.
type HUD struct {
	view     core.View
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls []control
	setter   core.IntParameterSetter
	offsetX  int
}

type control struct {
	core.ParameterControl
	value int
	minus image.Rectangle
	plus  image.Rectangle
}

// NewHUD constructs a HUD for view. It returns nil when width is not
// positive; a nil HUD draws nothing.
func NewHUD(view core.View, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{view: view, width: width, pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	if p, ok := view.(core.ParameterControlsProvider); ok {
		for i, c := range p.ParameterControls() {
			top := controlsTop + i*lineHeight
			plus := image.Rect(width-panelPadding-buttonSize, top, width-panelPadding, top+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, control{ParameterControl: c, minus: minus, plus: plus})
		}
	}
	if s, ok := view.(core.IntParameterSetter); ok {
		h.setter = s
	}
	return h
}

// Width is the panel width in pixels, 0 for a nil HUD.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the parameter snapshot and handles clicks on the panel,
// which starts at offsetX.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	if p, ok := h.view.(core.ParameterProvider); ok {
		h.snapshot = p.Parameters()
	}
	for i := range h.controls {
		c := &h.controls[i]
		if p, ok := h.snapshot.Lookup(c.Key); ok {
			if v, err := strconv.Atoi(p.Value); err == nil {
				c.value = v
			}
		}
	}
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pt.In(c.minus):
			h.adjust(c, -1)
		case pt.In(c.plus):
			h.adjust(c, 1)
		}
	}
}

func (h *HUD) adjust(c *control, direction int) {
	step := c.Step
	if step <= 0 {
		step = 1
	}
	target := c.Clamp(c.value + direction*step)
	if target != c.value && h.setter.SetIntParameter(c.Key, target) {
		c.value = target
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	height := h.view.Size().H * max(scale, 1)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, strings.ToUpper(h.view.Name()), face, panelPadding, y, titleColor)

	for i := range h.controls {
		c := &h.controls[i]
		text.Draw(h.panel, c.Label, face, panelPadding, c.plus.Min.Y+labelBaseline, valueColor)
		v := strconv.Itoa(c.value)
		vx := c.minus.Min.X - buttonGap - text.BoundString(face, v).Dx()
		text.Draw(h.panel, v, face, vx, c.plus.Min.Y+labelBaseline, valueColor)
		h.drawButton(c.minus, "-")
		h.drawButton(c.plus, "+")
	}

	y = controlsTop + len(h.controls)*lineHeight + infoSpacing
	for _, g := range h.snapshot.Groups {
		text.Draw(h.panel, g.Name, face, panelPadding, y, groupColor)
		y += rowHeight
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding+8, y, valueColor)
			y += rowHeight
		}
		y += rowHeight / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(buttonColor)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.panel, label, face, x, y, valueColor)
}

const (
	panelPadding   = 12
	lineHeight     = 32
	rowHeight      = 16
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 16
	infoSpacing    = 12
	controlsTop    = panelPadding + headerBaseline + 14
)
