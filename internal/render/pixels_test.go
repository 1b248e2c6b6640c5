package render

import (
	"testing"

	"procrand/internal/core"

	"github.com/stretchr/testify/require"
)

func TestFillBinary(t *testing.T) {
	buf := make([]byte, 12)
	Fill(buf, []uint8{0, 1, 5}, DefaultPalette)
	require.Equal(t, []byte{
		0, 0, 0, 255,
		255, 255, 255, 255,
		255, 255, 255, 255,
	}, buf)
}

func TestFillPalette(t *testing.T) {
	palette := []core.Color{{R: 1, A: 255}, {G: 2, A: 255}, {B: 3, A: 128}}
	buf := make([]byte, 16)
	Fill(buf, []uint8{2, 0, 1, 9}, palette)
	require.Equal(t, []byte{
		0, 0, 3, 128,
		1, 0, 0, 255,
		0, 2, 0, 255,
		0, 0, 3, 128,
	}, buf)
}

func TestFillEmptyPalette(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9, 7}
	Fill(buf, []uint8{1, 0}, nil)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 7}, buf)
}
