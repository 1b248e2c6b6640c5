//go:build ebiten

package render

import (
	"procrand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads view cells to a texture and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w by h grid.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, w*h*4),
	}
}

// Blit draws cells onto screen with each cell scale pixels wide.
func (p *GridPainter) Blit(screen *ebiten.Image, cells []uint8, palette []core.Color, scale int) {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	Fill(p.buf, cells, palette)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
