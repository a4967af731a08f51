package bandplot

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/vdobler/bandplot/data"
	"github.com/vdobler/bandplot/geom"
	"github.com/vdobler/bandplot/region"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Subplot

// A Subplot is one panel of a Figure: a band diagram together with its
// annotations.
//
// Operations which get inconsistent input log a warning on the figure's
// logger and do nothing; the rest of the figure is still drawn.
type Subplot struct {
	Title  string
	XTitle string // overrides the title of the ticks if set
	YTitle string

	Figure *Figure
	State  SubplotState

	Plotters   []plot.Plotter
	Legend     []LegendEntry
	ShowLegend bool
}

// A LegendEntry is a labeled plotter drawn in the legend.
type LegendEntry struct {
	Label string
	Thumb plot.Thumbnailer
}

func (sp *Subplot) style() Style {
	if sp.Figure == nil {
		return DefaultStyle(12)
	}
	return sp.Figure.Style
}

func (sp *Subplot) logger() *slog.Logger {
	if sp.Figure == nil {
		return slog.Default()
	}
	return sp.Figure.logger()
}

func (sp *Subplot) warn(op string, err error) {
	sp.logger().Warn("ignoring invalid plot configuration",
		"subplot", sp.Title, "op", op, "err", err)
}

func (sp *Subplot) add(label string, p plot.Plotter) {
	sp.Plotters = append(sp.Plotters, p)
	if label == "" {
		return
	}
	if th, ok := p.(plot.Thumbnailer); ok {
		sp.Legend = append(sp.Legend, LegendEntry{Label: label, Thumb: th})
	}
}

// SetTitle sets the title of sp.
func (sp *Subplot) SetTitle(title string) { sp.Title = title }

// AddLegend shows a legend with every distinct label once.
func (sp *Subplot) AddLegend() { sp.ShowLegend = true }

// PlotBands plots one curve per column of bands. Row i of bands are the
// frequencies at k-vector k[i]; k may be nil if neither a light cone nor
// the Euclidean x-axis is needed.
func (sp *Subplot) PlotBands(bands data.Table, k data.KVectors, opt BandOptions) {
	if bands.Rows() == 0 {
		return
	}
	sty := sp.style()
	warn := func(err error) { sp.warn("PlotBands", err) }
	bp, err := planBands(sp.State, bands, k, opt, sty.Palette, warn)
	if err != nil {
		warn(err)
		return
	}
	sp.State = bp.State

	b := geom.Bands{
		K:     sp.State.X,
		Freqs: bands,
		Line:  draw.LineStyle{Color: bp.Color, Width: sty.Band.Width},
	}
	if opt.Marks {
		b.Glyph = draw.GlyphStyle{Color: bp.Color, Radius: sty.Band.Radius, Shape: draw.CircleGlyph{}}
	}
	sp.add(opt.Label, b)

	if bp.Parity != nil {
		sp.add("", geom.Parity{
			K:      sp.State.X,
			Freqs:  bands,
			Parity: bp.Parity,
			Radius: sty.ParityRadius,
		})
	}
}

// PlotDOS plots the density of states dos over the frequencies freqs.
func (sp *Subplot) PlotDOS(dos, freqs []float64) {
	if len(dos) != len(freqs) {
		sp.warn("PlotDOS", fmt.Errorf("%w: %d DOS values for %d frequencies",
			ErrShape, len(dos), len(freqs)))
		return
	}
	xys := make(plotter.XYs, len(dos))
	for i := range dos {
		xys[i].X, xys[i].Y = dos[i], freqs[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		sp.warn("PlotDOS", err)
		return
	}
	sty := sp.style()
	line.Color = cycle(sty.Palette, sp.State.NextColor)
	line.Width = sty.Band.Width
	sp.State.NextColor++
	sp.add("", line)
	sp.XTitle = "DOS"
	sp.YTitle = ""
}

// AddLightCone draws the light line |k|/n of a medium with refractive
// index n. If fill is set, the light cone above the line is shaded.
// It needs the k-vectors of the last PlotBands.
func (sp *Subplot) AddLightCone(n float64, fill bool) {
	st := sp.State
	light, err := st.LightLine(n)
	if err != nil {
		sp.warn("AddLightCone", err)
		return
	}
	sty := sp.style()
	clr := sty.LightCone.Color
	if fill {
		top := st.Y.Max
		for _, f := range light {
			top = math.Max(top, f)
		}
		top *= 1.1
		cone := make(region.Polygon, 0, len(light)+2)
		for i, f := range light {
			cone = append(cone, plotter.XY{X: st.X[i], Y: f})
		}
		cone = append(cone,
			plotter.XY{X: st.X.Right(), Y: top},
			plotter.XY{X: st.X.Left(), Y: top})
		sp.add("", geom.Region{Polygon: cone, Fill: geom.WithAlpha(clr, sty.LightCone.Alpha)})
	}
	sp.add("", geom.Curve(st.X, light, draw.LineStyle{Color: clr, Width: sty.LightCone.Width}))
}

// AddFilledPolygon fills poly with clr at opacity alpha. A nil clr uses
// the color of the last bands. If gapText is set the relative size of the
// polygon is written into its center.
func (sp *Subplot) AddFilledPolygon(poly region.Polygon, clr color.Color, alpha float64, gapText bool) {
	if len(poly) == 0 {
		return
	}
	sty := sp.style()
	if clr == nil {
		clr = sp.State.Color
	}
	fill := geom.WithAlpha(clr, alpha)
	r := geom.Region{
		Polygon: poly,
		Fill:    fill,
		Border:  draw.LineStyle{Color: fill, Width: sty.Gap.BorderWidth},
	}
	if gapText {
		r.Text = geom.GapText(poly, sty.Gap.Format)
		r.TextStyle = sty.GapText
	}
	sp.add("", r)
}

// AddBandGap shades the band gap from..to. If light is non-nil the gap is
// only shaded below the light line. A nil clr uses the color of the last
// bands.
func (sp *Subplot) AddBandGap(from, to float64, light region.Curve, clr color.Color, alpha float64) {
	band := region.Band{From: from, To: to}
	if band.Degenerate() {
		return
	}
	if sp.State.X == nil {
		sp.warn("AddBandGap", ErrNoBands)
		return
	}
	polys, err := region.ClipGap(sp.State.X, band, light)
	if err != nil {
		sp.warn("AddBandGap", err)
		return
	}
	if clr == nil {
		clr = sp.State.Color
	}
	sty := sp.style()
	fill := geom.WithAlpha(clr, alpha)
	border := draw.LineStyle{Color: fill, Width: sty.Gap.BorderWidth}
	for _, r := range geom.Regions(polys, fill, border, sty.Gap.Format, sty.GapText) {
		sp.add("", r)
	}
}

// AddContinuum shades the continuum bands given as a table with the
// alternating columns min0, max0, min1, max1, ... and one row per k-vector.
// With preventOverlap the lower bound of every band is pulled down to the
// upper bound of the band below wherever they overlap.
// The returned Resolution holds the drawn polygons.
func (sp *Subplot) AddContinuum(t data.Table, clr color.Color, alpha float64, preventOverlap bool) region.Resolution {
	const op = "AddContinuum"
	if sp.State.X == nil {
		sp.warn(op, ErrNoBands)
		return region.Resolution{}
	}
	if t.Rows() != len(sp.State.X) {
		sp.warn(op, fmt.Errorf("%w: %d continuum rows for %d k-vectors",
			ErrShape, t.Rows(), len(sp.State.X)))
		return region.Resolution{}
	}
	ribbons, err := region.RibbonsFromTable(t)
	if err != nil {
		sp.warn(op, err)
		return region.Resolution{}
	}
	res, err := region.ResolveOverlaps(sp.State.X, ribbons, preventOverlap)
	if err != nil {
		sp.warn(op, err)
		return region.Resolution{}
	}
	for _, p := range res.Polygons {
		sp.AddFilledPolygon(p, clr, alpha, false)
	}
	return res
}

// FillBetweenBands fills the area between the bands number from and to of
// the last PlotBands. Bands are numbered from 1. A nil clr uses the
// style's color.
func (sp *Subplot) FillBetweenBands(from, to int, clr color.Color, alpha float64) {
	const op = "FillBetweenBands"
	bands := sp.State.Bands
	if sp.State.X == nil || bands.Rows() == 0 {
		sp.warn(op, ErrNoBands)
		return
	}
	n := bands.Cols()
	if from < 1 || from > n || to < 1 || to > n {
		sp.warn(op, fmt.Errorf("%w: bands %d and %d, have 1 to %d", ErrShape, from, to, n))
		return
	}
	r := region.Ribbon{Lower: bands.Column(from - 1), Upper: bands.Column(to - 1)}
	res, err := region.ResolveOverlaps(sp.State.X, []region.Ribbon{r}, false)
	if err != nil {
		sp.warn(op, err)
		return
	}
	if clr == nil {
		clr = sp.style().FillBetween.Color
	}
	sp.add("", geom.Region{Polygon: res.Polygons[0], Fill: geom.WithAlpha(clr, alpha)})
}

// Plot returns the gonum plot of sp.
func (sp *Subplot) Plot() (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	sty := sp.style()
	st := sp.State

	p.Title.Text = sp.Title
	p.Title.TextStyle = sty.Title
	p.X.Label.TextStyle = sty.Label
	p.Y.Label.TextStyle = sty.Label
	p.Y.Label.Text = sp.YTitle
	p.X.Tick.Label = sty.TickText
	p.Y.Tick.Label = sty.TickText
	p.Y.Tick.Label.XAlign = draw.XRight
	p.Y.Tick.Label.YAlign = draw.YCenter

	grid := plotter.NewGrid()
	grid.Vertical = sty.Grid
	grid.Horizontal = sty.Grid
	p.Add(grid)
	p.Add(sp.Plotters...)

	p.X.Label.Text = st.Ticks.Title
	if sp.XTitle != "" {
		p.X.Label.Text = sp.XTitle
	}
	if len(st.Ticks.Positions) > 0 {
		ticks := st.Ticks
		if st.Corrected {
			ticks = ticks.On(st.X)
		}
		p.X.Tick.Marker = ticks.Marker()
		if ticks.LongestLabel() > sty.LongTickLabel {
			p.X.Tick.Label.Rotation = math.Pi / 4
			p.X.Tick.Label.XAlign = draw.XRight
		}
	}

	if len(st.X) > 1 {
		p.X.Min, p.X.Max = st.X.Left(), st.X.Right()
	}
	if st.Cropped() && st.Y.Valid() {
		p.Y.Min, p.Y.Max = st.Y.Min, st.Y.Max
	}

	if sp.ShowLegend {
		seen := make(map[string]bool)
		for _, e := range sp.Legend {
			if seen[e.Label] {
				continue
			}
			seen[e.Label] = true
			p.Legend.Add(e.Label, e.Thumb)
		}
		p.Legend.Top = true
		p.Legend.Left = true
		p.Legend.TextStyle = sty.TickText
		p.Legend.TextStyle.XAlign = draw.XLeft
	}
	return p, nil
}
