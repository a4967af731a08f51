// Package geom provides the plotters which draw a band diagram on a
// gonum/plot canvas.
//
// The plotters are deliberately dumb: all geometry (clipping of gaps at the
// light line, resolution of overlapping continuum bands) is done by package
// region, the plotters only map the resulting coordinates to the canvas.
//
// Every plotter implements plot.Plotter, plot.DataRanger and
// plot.Thumbnailer.
package geom

import (
	"image/color"

	"github.com/vdobler/bandplot/region"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Region

// Region fills a polygon, e.g. one part of a band gap or a continuum band.
type Region struct {
	Polygon region.Polygon

	// Fill is the fill color. Use WithAlpha to make it translucent.
	Fill color.Color

	// Border is drawn around the polygon if its Width and Color are set.
	Border draw.LineStyle

	// Text is written into the center of the bounding box of the polygon
	// using TextStyle. Nothing is written if TextStyle has no font.
	Text      string
	TextStyle draw.TextStyle
}

var (
	_ plot.Plotter     = Region{}
	_ plot.DataRanger  = Region{}
	_ plot.Thumbnailer = Region{}
)

// Plot implements plot.Plotter.
func (r Region) Plot(c draw.Canvas, plt *plot.Plot) {
	if len(r.Polygon) == 0 {
		return
	}
	trX, trY := plt.Transforms(&c)
	pts := make([]vg.Point, len(r.Polygon))
	for i, v := range r.Polygon {
		pts[i] = vg.Point{X: trX(v.X), Y: trY(v.Y)}
	}

	if r.Fill != nil {
		c.FillPolygon(r.Fill, c.ClipPolygonXY(pts))
	}
	if r.Border.Color != nil && r.Border.Width > 0 {
		closed := append(pts[:len(pts):len(pts)], pts[0])
		c.StrokeLines(r.Border, c.ClipLinesXY(closed)...)
	}
	if r.Text != "" && r.TextStyle.Font.Size > 0 {
		x, y := center(r.Polygon)
		sty := r.TextStyle
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YCenter
		if sty.Handler == nil {
			sty.Handler = plot.DefaultTextHandler
		}
		if p := (vg.Point{X: trX(x), Y: trY(y)}); c.Contains(p) {
			c.FillText(sty, p, r.Text)
		}
	}
}

// DataRange implements plot.DataRanger.
func (r Region) DataRange() (xmin, xmax, ymin, ymax float64) {
	return r.Polygon.Bounds()
}

// Thumbnail implements plot.Thumbnailer.
func (r Region) Thumbnail(c *draw.Canvas) {
	thumbnailRect(c, r.Fill)
}

// Regions turns each polygon into a Region sharing fill and border. The
// text of each region is GapText(p, format).
func Regions(polys []region.Polygon, fill color.Color, border draw.LineStyle,
	format string, sty draw.TextStyle) []plot.Plotter {

	ps := make([]plot.Plotter, 0, len(polys))
	for _, p := range polys {
		if len(p) == 0 {
			continue
		}
		ps = append(ps, Region{
			Polygon:   p,
			Fill:      fill,
			Border:    border,
			Text:      GapText(p, format),
			TextStyle: sty,
		})
	}
	return ps
}
