// pkg/render/color.go
package render

import (
	"image/color"

	"go-tower-stacker/internal/config"
)

// BlockColor maps the engine's opaque color tag onto the palette.
// The simulation never sees RGBA values; the mapping lives here.
func BlockColor(tag int) color.RGBA {
	if tag < 0 {
		tag = -tag
	}
	return config.BlockPalette[tag%len(config.BlockPalette)]
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
