package render

import (
	"image/color"

	"procrand/internal/core"
)

// DefaultPalette is used for views that do not provide one: black for 0,
// white for anything else.
var DefaultPalette = []core.Color{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// Fill converts cells into RGBA pixels in buf. Two-entry palettes take the
// binary fast path.
func Fill(buf []byte, cells []uint8, palette []core.Color) {
	if len(palette) == 2 {
		fillBinaryRGBA(buf, cells, rgba(palette[1]), rgba(palette[0]))
		return
	}
	fillPaletteRGBA(buf, cells, palette)
}

func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	onPx := [4]byte{uint8(rOn >> 8), uint8(gOn >> 8), uint8(bOn >> 8), uint8(aOn >> 8)}
	offPx := [4]byte{uint8(rOff >> 8), uint8(gOff >> 8), uint8(bOff >> 8), uint8(aOff >> 8)}
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []core.Color) {
	if len(palette) == 0 {
		for i := range buf[:len(cells)*4] {
			buf[i] = 0
		}
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
