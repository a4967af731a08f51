package bandplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vdobler/bandplot/data"
	"github.com/vdobler/bandplot/region"
	"gonum.org/v1/plot/palette"
)

// SubplotState is what a subplot remembers between calls: where its
// k-vectors are placed, the last data plotted and the shown frequency
// range. Operations take a state and return the updated one.
type SubplotState struct {
	// X is the k-axis of the subplot. It is nil until bands are plotted;
	// all annotations are placed on it.
	X region.KAxis

	// Corrected reports whether X is the Euclidean distance along the
	// k-path rather than the k-vector index.
	Corrected bool

	Bands data.Table    // last plotted bands
	K     data.KVectors // k-vectors of the last plotted bands, may be nil
	Ticks Ticks         // in k-vector indices

	// Crop holds the active crop edges, NaN if uncropped.
	Crop Interval

	// Y is the frequency range to show.
	Y Interval

	Color     color.Color // of the last plotted bands
	NextColor int         // palette index of the next automatic color
}

// NewSubplotState returns the state of an empty subplot whose default
// color is first.
func NewSubplotState(first color.Color) SubplotState {
	return SubplotState{
		Crop:  unsetInterval(),
		Y:     Interval{Min: math.Inf(1), Max: math.Inf(-1)},
		Color: first,
	}
}

// Cropped reports whether one of the frequency edges is cropped.
func (st SubplotState) Cropped() bool {
	return !math.IsNaN(st.Crop.Min) || !math.IsNaN(st.Crop.Max)
}

// LightLine returns the light line of a medium with refractive index n
// along the k-vectors of the last band plot.
func (st SubplotState) LightLine(n float64) (region.Curve, error) {
	if st.K == nil {
		return nil, ErrNoKVectors
	}
	if !(n > 0) {
		return nil, fmt.Errorf("bandplot: refractive index %g must be positive", n)
	}
	return region.Curve(st.K.Magnitudes(n)), nil
}

// BandOptions control PlotBands.
type BandOptions struct {
	Label string

	// Color of the bands. If nil the next color of the palette is used.
	Color color.Color

	// Marks draws a dot at every sample.
	Marks bool

	// Crop limits the frequency axis; the zero value crops automatically.
	Crop Crop

	// CorrectX places the k-vectors at their Euclidean distance along the
	// k-path instead of at their index. Only the first band plot of a
	// subplot decides this.
	CorrectX bool

	// Ticks label the k-axis. Empty Ticks keep the previous ones.
	Ticks Ticks

	// Parity, if of the same shape as the bands, colors every sample by
	// its parity in [-1, 1].
	Parity data.Table
}

type bandPlot struct {
	State  SubplotState
	Color  color.Color
	Parity data.Table
}

// planBands returns the state after plotting bands with opt. Problems which
// can be worked around are passed to warn; errors make the plot a no-op.
func planBands(st SubplotState, bands data.Table, k data.KVectors, opt BandOptions,
	pal palette.Palette, warn func(error)) (bandPlot, error) {

	if err := bands.Check(); err != nil {
		return bandPlot{}, fmt.Errorf("%w: %v", ErrShape, err)
	}
	if bands.Cols() == 0 {
		return bandPlot{}, fmt.Errorf("%w: band table without columns", ErrShape)
	}
	if k != nil && len(k) != bands.Rows() {
		return bandPlot{}, fmt.Errorf("%w: %d k-vectors for %d rows of bands",
			ErrShape, len(k), bands.Rows())
	}

	correct := opt.CorrectX
	if st.X != nil && correct != st.Corrected {
		warn(fmt.Errorf("%w: requested correction %t, keeping %t",
			ErrXAxisLocked, correct, st.Corrected))
		correct = st.Corrected
	}
	if !opt.Ticks.Empty() {
		st.Ticks = opt.Ticks
	}

	parity := opt.Parity
	if parity != nil && !parity.SameShape(bands) {
		warn(fmt.Errorf("%w: parity is %dx%d, bands are %dx%d; not coloring by parity",
			ErrShape, parity.Rows(), parity.Cols(), bands.Rows(), bands.Cols()))
		parity = nil
	}

	// Crop to the lowest point of the highest band if automatic.
	top, _ := bands.ColumnRange(bands.Cols() - 1)
	if math.IsInf(top, 0) {
		top = math.NaN() // highest band has no samples
	}
	cmin, cmax := opt.Crop.bounds(top)
	st.Crop = combine(st.Crop, cmin, cmax)
	lo, hi := bands.Range()
	st.Y.Update(lo, hi)
	if !math.IsNaN(st.Crop.Max) {
		st.Y.Max = st.Crop.Max
	}
	if !math.IsNaN(st.Crop.Min) {
		st.Y.Min = st.Crop.Min
	}

	col := opt.Color
	if col == nil {
		col = cycle(pal, st.NextColor)
		st.NextColor++
	}
	st.Color = col

	x := region.IndexAxis(bands.Rows())
	if correct {
		switch {
		case k == nil:
			warn(fmt.Errorf("%w: no k-vectors to correct the x-axis", ErrShape))
		case !st.Corrected && !st.Ticks.Integral():
			warn(ErrTicks)
		default:
			x = region.CumulativeDistance(k.Components())
			st.Corrected = true
		}
	}

	st.X = x
	st.Bands = bands
	st.K = k
	return bandPlot{State: st, Color: col, Parity: parity}, nil
}
