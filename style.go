package bandplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Figure is drawn.
type Style struct {
	Title    draw.TextStyle
	Label    draw.TextStyle // axis titles
	TickText draw.TextStyle
	GapText  draw.TextStyle

	// YTitle is the frequency axis title of every new subplot.
	YTitle string

	Grid draw.LineStyle

	// Palette is cycled through for bands plotted without explicit color.
	Palette palette.Palette

	Band struct {
		Width  vg.Length
		Radius vg.Length // glyph radius if samples are marked
	}

	Gap struct {
		Alpha float64
		// Format is formatted with the gap-midgap ratio in percent and
		// written into each gap polygon. Empty disables the text.
		Format      string
		BorderWidth vg.Length
	}

	LightCone struct {
		Color color.Color
		Alpha float64
		Width vg.Length
	}

	Continuum struct {
		Alpha float64
	}

	FillBetween struct {
		Color color.Color
		Alpha float64
	}

	// Tick labels longer than LongTickLabel runes are rotated.
	LongTickLabel int

	// ParityRadius is the dot size for bands colored by parity.
	ParityRadius vg.Length

	// Padding between subplots.
	PadX, PadY vg.Length
}

// DefaultStyle returns a Style with the given baseFontSize for axis titles.
// The subplot title is a bit bigger, tick labels a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Title.Color = color.Black
	s.Title.Handler = plot.DefaultTextHandler
	s.Title.Font = titleFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop

	s.Label.Color = color.Black
	s.Label.Handler = plot.DefaultTextHandler
	s.Label.Font = baseFont
	s.Label.XAlign = draw.XCenter

	s.TickText.Color = color.Black
	s.TickText.Handler = plot.DefaultTextHandler
	s.TickText.Font = tickFont
	s.TickText.XAlign = draw.XCenter
	s.TickText.YAlign = draw.YTop

	s.GapText.Color = color.Black
	s.GapText.Handler = plot.DefaultTextHandler
	s.GapText.Font = tickFont

	s.YTitle = "frequency (ωa/2πc)"

	s.Grid.Color = color.Gray16{0xcccc}
	s.Grid.Width = vg.Length(0.5)

	s.Palette = DefaultPalette

	s.Band.Width = vg.Points(1.5)
	s.Band.Radius = vg.Points(2)

	s.Gap.Alpha = 0.35
	s.Gap.Format = "%.1f%%"
	s.Gap.BorderWidth = vg.Points(0.5)

	s.LightCone.Color = color.Gray16{0x8080}
	s.LightCone.Alpha = 0.5
	s.LightCone.Width = vg.Points(1)

	s.Continuum.Alpha = 0.65

	s.FillBetween.Color = color.RGBA{R: 0x7f, G: 0x7f, B: 0xff, A: 0xff}
	s.FillBetween.Alpha = 0.5

	s.LongTickLabel = 3
	s.ParityRadius = vg.Points(2.5)

	s.PadX = scale(baseFontSize, 1)
	s.PadY = s.PadX

	return s
}
