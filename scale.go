package bandplot

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) != math.IsNaN(j.Min) || math.IsNaN(i.Max) != math.IsNaN(j.Max) {
		return false
	}
	return (math.IsNaN(i.Min) || i.Min == j.Min) && (math.IsNaN(i.Max) || i.Max == j.Max)
}

// Valid reports whether both edges of i are set.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// ----------------------------------------------------------------------------
// Crop

// CropKind selects how the frequency axis of a subplot is limited.
type CropKind int

const (
	// CropAuto crops just below the lowest point of the highest band, so
	// only frequencies where all plotted bands are known are shown.
	CropAuto CropKind = iota

	// CropNone shows the full data range.
	CropNone

	// CropUpper limits the frequency axis to Crop.Max.
	CropUpper

	// CropRange limits the frequency axis to [Crop.Min, Crop.Max].
	CropRange
)

// String returns the name of k.
func (k CropKind) String() string {
	switch k {
	case CropAuto:
		return "auto"
	case CropNone:
		return "none"
	case CropUpper:
		return "upper"
	case CropRange:
		return "range"
	}
	return fmt.Sprintf("CropKind(%d)", int(k))
}

// Crop determines the visible frequency range of a subplot. The zero value
// is CropAuto. Min is used by CropRange only, Max by CropUpper and CropRange.
type Crop struct {
	Kind     CropKind
	Min, Max float64
}

// UpperBound returns a Crop showing frequencies up to max.
func UpperBound(max float64) Crop { return Crop{Kind: CropUpper, Max: max} }

// Range returns a Crop showing frequencies in [min, max].
func Range(min, max float64) Crop { return Crop{Kind: CropRange, Min: min, Max: max} }

func (c Crop) String() string {
	switch c.Kind {
	case CropUpper:
		return fmt.Sprintf("upper(%g)", c.Max)
	case CropRange:
		return fmt.Sprintf("range(%g,%g)", c.Min, c.Max)
	}
	return c.Kind.String()
}

// bounds returns the lower and upper crop value c requests for the band
// table whose highest band has its minimum at lowestTop. NaN means the
// edge is not cropped.
func (c Crop) bounds(lowestTop float64) (min, max float64) {
	switch c.Kind {
	case CropAuto:
		return math.NaN(), lowestTop
	case CropUpper:
		return math.NaN(), c.Max
	case CropRange:
		return c.Min, c.Max
	}
	return math.NaN(), math.NaN()
}

// combine merges the requested crop edges into the crop already active
// in a subplot: the smallest maximum and the largest minimum win.
func combine(active Interval, min, max float64) Interval {
	if !math.IsNaN(max) {
		if math.IsNaN(active.Max) {
			active.Max = max
		} else {
			active.Max = math.Min(active.Max, max)
		}
	}
	if !math.IsNaN(min) {
		if math.IsNaN(active.Min) {
			active.Min = min
		} else {
			active.Min = math.Max(active.Min, min)
		}
	}
	return active
}
