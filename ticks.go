package bandplot

import (
	"math"
	"unicode/utf8"

	"github.com/vdobler/bandplot/region"
	"gonum.org/v1/plot"
)

// Ticks labels positions along the k-axis, typically the high symmetry
// points of the path through the Brillouin zone.
//
// Positions are k-vector indices. If the subplot places its k-vectors by
// their Euclidean distance, the positions are moved accordingly, which
// requires every position to be an integer.
type Ticks struct {
	Positions []float64
	Labels    []string

	// Title is the x-axis label.
	Title string
}

// Integral reports whether all positions are integer sample indices.
func (t Ticks) Integral() bool {
	for _, p := range t.Positions {
		if p != math.Trunc(p) || math.IsInf(p, 0) {
			return false
		}
	}
	return true
}

// Empty reports whether t has neither ticks nor a title.
func (t Ticks) Empty() bool {
	return len(t.Positions) == 0 && t.Title == ""
}

// On returns the ticks placed on the k-axis k.
func (t Ticks) On(k region.KAxis) Ticks {
	moved := t
	moved.Positions = make([]float64, len(t.Positions))
	for i, p := range t.Positions {
		moved.Positions[i] = k.At(p)
	}
	return moved
}

// Marker returns a plot.Ticker producing t's positions and labels.
func (t Ticks) Marker() plot.Ticker {
	ticks := make([]plot.Tick, len(t.Positions))
	for i, p := range t.Positions {
		ticks[i].Value = p
		if i < len(t.Labels) {
			ticks[i].Label = t.Labels[i]
		}
	}
	return plot.ConstantTicks(ticks)
}

// LongestLabel returns the length in runes of the longest label.
func (t Ticks) LongestLabel() int {
	n := 0
	for _, l := range t.Labels {
		if m := utf8.RuneCountInString(l); m > n {
			n = m
		}
	}
	return n
}
