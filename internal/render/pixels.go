package render

import (
	"image/color"

	"github.com/Vlad-Shcherbina/halite/internal/core"
)

// NeutralColor paints unowned cells.
var NeutralColor = color.RGBA{R: 24, G: 24, B: 28, A: 255}

// DefaultPalette colours players 1..n; owner ids past the end wrap around.
var DefaultPalette = []color.RGBA{
	{R: 230, G: 80, B: 70, A: 255},
	{R: 70, G: 150, B: 230, A: 255},
	{R: 90, G: 200, B: 110, A: 255},
	{R: 240, G: 200, B: 60, A: 255},
	{R: 180, G: 100, B: 220, A: 255},
	{R: 70, G: 210, B: 210, A: 255},
}

// FillCellsRGBA converts a frame into RGBA pixels in buf, row-major over a
// w×h image. Owned cells take their player's colour scaled by strength/255
// (with a floor so weak cells stay visible); neutral cells are
// NeutralColor. Cells missing from a ragged frame are left transparent.
func FillCellsRGBA(buf []byte, frame [][]core.Cell, w, h int, palette []color.RGBA) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			c, ok := core.At(frame, x, y)
			if !ok {
				buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
				continue
			}
			col := cellColor(c, palette)
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

func cellColor(c core.Cell, palette []color.RGBA) color.RGBA {
	if c.Owner <= 0 || len(palette) == 0 {
		return NeutralColor
	}
	base := palette[(c.Owner-1)%len(palette)]
	s := c.Strength
	if s < 0 {
		s = 0
	}
	if s > 255 {
		s = 255
	}
	// 64..255 so that zero-strength cells are still distinguishable.
	scale := 64 + s*191/255
	return color.RGBA{
		R: uint8(int(base.R) * scale / 255),
		G: uint8(int(base.G) * scale / 255),
		B: uint8(int(base.B) * scale / 255),
		A: 255,
	}
}
