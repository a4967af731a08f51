package geom

import (
	"math"

	"github.com/vdobler/bandplot/data"
	"github.com/vdobler/bandplot/region"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Bands

// Bands draws one curve per column of Freqs, placed on the k-axis K.
// Row i of Freqs belongs to K[i].
type Bands struct {
	K     region.KAxis
	Freqs data.Table

	// Line connects consecutive samples of a band. A zero Width draws
	// no lines.
	Line draw.LineStyle

	// Glyph marks each sample if its Radius is non-zero.
	Glyph draw.GlyphStyle
}

var (
	_ plot.Plotter     = Bands{}
	_ plot.DataRanger  = Bands{}
	_ plot.Thumbnailer = Bands{}
)

// Plot implements plot.Plotter.
func (b Bands) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for j := 0; j < b.Freqs.Cols(); j++ {
		var lines [][]vg.Point
		var line []vg.Point
		for i, row := range b.Freqs {
			if math.IsNaN(row[j]) {
				if len(line) > 0 {
					lines = append(lines, line)
					line = nil
				}
				continue
			}
			line = append(line, vg.Point{X: trX(b.K[i]), Y: trY(row[j])})
		}
		if len(line) > 0 {
			lines = append(lines, line)
		}

		if b.Line.Width > 0 && b.Line.Color != nil {
			c.StrokeLines(b.Line, c.ClipLinesXY(lines...)...)
		}
		if b.Glyph.Radius > 0 && b.Glyph.Color != nil {
			for _, l := range lines {
				for _, p := range l {
					if c.Contains(p) {
						c.DrawGlyph(b.Glyph, p)
					}
				}
			}
		}
	}
}

// DataRange implements plot.DataRanger.
func (b Bands) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, x := range b.K {
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
	}
	ymin, ymax = b.Freqs.Range()
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements plot.Thumbnailer.
func (b Bands) Thumbnail(c *draw.Canvas) {
	if b.Line.Width > 0 && b.Line.Color != nil {
		y := c.Center().Y
		c.StrokeLine2(b.Line, c.Min.X, y, c.Max.X, y)
	}
	if b.Glyph.Radius > 0 && b.Glyph.Color != nil {
		c.DrawGlyph(b.Glyph, c.Center())
	}
}

// ----------------------------------------------------------------------------
// Curve

// Curve returns Bands drawing the single curve freqs on k.
func Curve(k region.KAxis, freqs []float64, line draw.LineStyle) Bands {
	t := make(data.Table, len(freqs))
	for i, f := range freqs {
		t[i] = []float64{f}
	}
	return Bands{K: k, Freqs: t, Line: line}
}
