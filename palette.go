package bandplot

import (
	"image/color"

	"gonum.org/v1/plot/palette"
)

// Palette is a fixed list of colors cycled through by successive band
// plots of a subplot. It implements palette.Palette.
type Palette []color.Color

var _ palette.Palette = Palette{}

// Colors implements palette.Palette.
func (p Palette) Colors() []color.Color { return p }

// DefaultPalette is the seaborn "deep" palette with red and green
// exchanged: first blue, then red, green, purple, yellow and cyan.
var DefaultPalette = Palette{
	color.RGBA{R: 76, G: 114, B: 176, A: 255},
	color.RGBA{R: 196, G: 78, B: 82, A: 255},
	color.RGBA{R: 85, G: 168, B: 104, A: 255},
	color.RGBA{R: 129, G: 114, B: 178, A: 255},
	color.RGBA{R: 204, G: 185, B: 116, A: 255},
	color.RGBA{R: 100, G: 181, B: 205, A: 255},
}

// cycle returns color number i of p, wrapping around. An empty palette
// yields black.
func cycle(p palette.Palette, i int) color.Color {
	if p == nil {
		return color.Black
	}
	cs := p.Colors()
	if len(cs) == 0 {
		return color.Black
	}
	return cs[i%len(cs)]
}
