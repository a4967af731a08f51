package geom

import (
	"math"

	"github.com/vdobler/bandplot/data"
	"github.com/vdobler/bandplot/region"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Parity marks every band sample with a dot colored by the parity of the
// mode: -1 (odd) to +1 (even).
type Parity struct {
	K      region.KAxis
	Freqs  data.Table
	Parity data.Table // same shape as Freqs

	ColorMap palette.ColorMap // defaults to ParityColorMap()
	Radius   vg.Length
}

var (
	_ plot.Plotter     = Parity{}
	_ plot.DataRanger  = Parity{}
	_ plot.Thumbnailer = Parity{}
)

// ParityColorMap returns the diverging blue-white-red map on [-1,1] used
// for parity data.
func ParityColorMap() palette.ColorMap {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	return cm
}

// Plot implements plot.Plotter.
func (p Parity) Plot(c draw.Canvas, plt *plot.Plot) {
	cm, radius := p.colorMap(), p.radius()

	trX, trY := plt.Transforms(&c)
	for i, row := range p.Freqs {
		for j, f := range row {
			par := p.Parity[i][j]
			if math.IsNaN(f) || math.IsNaN(par) {
				continue
			}
			pt := vg.Point{X: trX(p.K[i]), Y: trY(f)}
			if !c.Contains(pt) {
				continue
			}
			col, err := cm.At(math.Max(cm.Min(), math.Min(cm.Max(), par)))
			if err != nil {
				continue
			}
			c.DrawGlyph(draw.GlyphStyle{Color: col, Radius: radius, Shape: draw.CircleGlyph{}}, pt)
		}
	}
}

// DataRange implements plot.DataRanger.
func (p Parity) DataRange() (xmin, xmax, ymin, ymax float64) {
	return Bands{K: p.K, Freqs: p.Freqs}.DataRange()
}

// Thumbnail implements plot.Thumbnailer. It shows an odd and an even dot.
func (p Parity) Thumbnail(c *draw.Canvas) {
	cm, radius := p.colorMap(), p.radius()
	y := c.Center().Y
	w := c.Max.X - c.Min.X
	for i, par := range []float64{cm.Min(), cm.Max()} {
		col, err := cm.At(par)
		if err != nil {
			continue
		}
		x := c.Min.X + w*vg.Length(1+2*i)/4
		c.DrawGlyph(draw.GlyphStyle{Color: col, Radius: radius, Shape: draw.CircleGlyph{}}, vg.Point{X: x, Y: y})
	}
}

func (p Parity) colorMap() palette.ColorMap {
	if p.ColorMap == nil {
		return ParityColorMap()
	}
	return p.ColorMap
}

func (p Parity) radius() vg.Length {
	if p.Radius == 0 {
		return vg.Points(2)
	}
	return p.Radius
}
