package bandplot

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var layoutTests = []struct {
	rows, n      int
	wantR, wantC int
}{
	{1, 1, 1, 1},
	{1, 3, 1, 3},
	{2, 3, 2, 2},
	{2, 4, 2, 2},
	{3, 2, 2, 1},
	{0, 2, 1, 2},
	{4, 7, 4, 2},
}

func TestFigureLayout(t *testing.T) {
	for i, tc := range layoutTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			f := NewFigure(tc.rows)
			for len(f.Subplots) < tc.n {
				f.NextPlot()
			}
			r, c := f.Layout()
			if r != tc.wantR || c != tc.wantC {
				t.Errorf("%d rows, %d subplots: got %dx%d, want %dx%d",
					tc.rows, tc.n, r, c, tc.wantR, tc.wantC)
			}
		})
	}
}

func TestFigureNextPlot(t *testing.T) {
	f := NewFigure(1)
	first := f.Current()
	second := f.NextPlot()
	assert.NotSame(t, first, second)
	assert.Same(t, second, f.Current())
	assert.Same(t, f, second.Figure)
	assert.Equal(t, f.Style.YTitle, second.YTitle)

	assert.Nil(t, (&Figure{}).Current())
}

func TestFigurePlots(t *testing.T) {
	f := NewFigure(2)
	f.Current().PlotBands(threeBands, nil, BandOptions{})
	f.NextPlot().PlotBands(threeBands, nil, BandOptions{})
	f.NextPlot()

	plots, err := f.Plots()
	require.NoError(t, err)
	require.Len(t, plots, 2)
	assert.NotNil(t, plots[0][0])
	assert.NotNil(t, plots[0][1])
	assert.NotNil(t, plots[1][0])
	assert.Nil(t, plots[1][1])
}

func TestFigureDraw(t *testing.T) {
	for _, n := range []int{1, 3, 4} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			f := NewFigure(2)
			f.Title = "Bands"
			f.Current().PlotBands(threeBands, threeK, BandOptions{})
			for len(f.Subplots) < n {
				sp := f.NextPlot()
				sp.PlotBands(threeBands, threeK, BandOptions{})
				sp.AddLightCone(1, true)
				sp.AddBandGap(0.2, 0.3, nil, nil, 0.35)
			}
			img := vgimg.New(6*vg.Inch, 4*vg.Inch)
			require.NoError(t, f.Draw(draw.New(img)))
		})
	}
}

func TestFigureWriteTo(t *testing.T) {
	f := NewFigure(1)
	f.Current().PlotBands(threeBands, nil, BandOptions{})

	var buf bytes.Buffer
	require.NoError(t, f.WriteTo(&buf, 3*vg.Inch, 2*vg.Inch, "svg"))
	assert.Contains(t, buf.String(), "<svg")

	assert.Error(t, f.WriteTo(&buf, 3*vg.Inch, 2*vg.Inch, "doc"))
}

func TestFigureSave(t *testing.T) {
	f := NewFigure(1)
	f.Current().PlotBands(threeBands, nil, BandOptions{})

	name := filepath.Join(t.TempDir(), "bands.png")
	require.NoError(t, f.Save(4*vg.Inch, 3*vg.Inch, name))
	fi, err := os.Stat(name)
	require.NoError(t, err)
	assert.NotZero(t, fi.Size())
}

func TestFigureWriteToWithText(t *testing.T) {
	f := NewFigure(1)
	f.Title = "Slab"
	sp := f.Current()
	sp.SetTitle("TE")
	sp.PlotBands(threeBands, threeK, BandOptions{
		Label: "even",
		Ticks: Ticks{Positions: []float64{0, 2}, Labels: []string{"Gamma", "X"}, Title: "k"},
	})
	sp.AddBandGap(0.2, 0.3, nil, nil, 0.35)
	sp.AddLegend()

	var buf bytes.Buffer
	require.NotPanics(t, func() {
		require.NoError(t, f.WriteTo(&buf, 4*vg.Inch, 3*vg.Inch, "png"))
	})
	assert.NotZero(t, buf.Len())
}

func TestDefaultStyleTextHandlers(t *testing.T) {
	sty := DefaultStyle(10)
	for _, ts := range []draw.TextStyle{sty.Title, sty.Label, sty.TickText, sty.GapText} {
		assert.NotNil(t, ts.Handler)
	}
}
