package region

import (
	"fmt"
	"sort"
)

// A Ribbon is one projected continuum band: the area between its Lower
// and Upper curve.
type Ribbon struct {
	Lower, Upper Curve
}

// An Intersection records where the bottom of ribbon Ribbon crosses the
// top of the ribbon beneath it. K is a fractional sample index: the
// crossing lies between samples floor(K) and floor(K)+1.
type Intersection struct {
	Ribbon int
	K      float64
	Freq   float64
}

// Resolution is the result of ResolveOverlaps.
type Resolution struct {
	// Polygons holds one outline per ribbon, in input order.
	Polygons []Polygon

	// Lower holds the lower curves after clamping. They are fresh
	// copies; the ribbons passed to ResolveOverlaps are unchanged.
	Lower []Curve

	// Intersections lists all crossings found, grouped by ribbon and
	// ordered by K within each ribbon.
	Intersections []Intersection
}

// RibbonsFromTable splits a table with one row per k-vector and columns
// alternating (min, max) per continuum band into ribbons.
func RibbonsFromTable(rows [][]float64) ([]Ribbon, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	cols := len(rows[0])
	if cols%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddColumns, cols)
	}
	ribbons := make([]Ribbon, cols/2)
	for b := range ribbons {
		ribbons[b].Lower = make(Curve, len(rows))
		ribbons[b].Upper = make(Curve, len(rows))
	}
	for k, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrRagged, k, len(row), cols)
		}
		for b := range ribbons {
			ribbons[b].Lower[k] = row[2*b]
			ribbons[b].Upper[k] = row[2*b+1]
		}
	}
	return ribbons, nil
}

// ResolveOverlaps computes the outlines of a stack of continuum ribbons,
// ordered bottom to top, sharing the k-axis k.
//
// If preventOverlap is set, the lower curve of every ribbon is clamped to
// the upper curve of the ribbon beneath it wherever it dips below, and the
// exact points where the two curves cross are inserted into the outline.
// Otherwise each ribbon is outlined on its own and overlapping ribbons
// produce overlapping polygons.
//
// Every outline runs left to right along the lower curve and back along
// the upper curve.
func ResolveOverlaps(k KAxis, ribbons []Ribbon, preventOverlap bool) (Resolution, error) {
	var res Resolution
	if len(ribbons) == 0 {
		return res, nil
	}
	if len(k) == 0 {
		return res, ErrEmptyAxis
	}
	for b, r := range ribbons {
		if err := k.Check(r.Lower); err != nil {
			return res, fmt.Errorf("ribbon %d lower: %w", b, err)
		}
		if err := k.Check(r.Upper); err != nil {
			return res, fmt.Errorf("ribbon %d upper: %w", b, err)
		}
	}

	res.Lower = make([]Curve, len(ribbons))
	for b, r := range ribbons {
		res.Lower[b] = append(Curve(nil), r.Lower...)
	}

	if preventOverlap {
		for b := 1; b < len(ribbons); b++ {
			res.Intersections = append(res.Intersections,
				clampRibbon(b, res.Lower[b], ribbons[b-1].Upper)...)
		}
	}

	res.Polygons = make([]Polygon, len(ribbons))
	for b, r := range ribbons {
		var cuts []Intersection
		for _, is := range res.Intersections {
			if is.Ribbon == b {
				cuts = append(cuts, is)
			}
		}
		res.Polygons[b] = outline(k, res.Lower[b], r.Upper, cuts)
	}
	return res, nil
}

// clampRibbon raises lower to floor wherever it is below and returns the
// crossings of the unclamped lower curve with floor. lower is modified in
// place.
func clampRibbon(b int, lower, floor Curve) []Intersection {
	var cuts []Intersection

	record := func(k int, prev float64) {
		x, f := SegmentIntersection(prev, lower[k], floor[k-1], floor[k])
		cuts = append(cuts, Intersection{Ribbon: b, K: float64(k-1) + x, Freq: f})
	}

	apart := false // previous sample did not overlap
	prev := 0.0    // unclamped lower value at the previous sample
	for k := range lower {
		f := lower[k]
		if f < floor[k] {
			if apart && k != 0 {
				record(k, prev)
			}
			apart = false
			lower[k] = floor[k]
		} else {
			if !apart && k != 0 {
				record(k, prev)
			}
			apart = true
		}
		prev = f
	}
	return cuts
}

// outline walks lower forward, splicing in cuts, and upper backward.
// A cut lying exactly on a sample is that sample's vertex and is not
// repeated.
func outline(k KAxis, lower, upper Curve, cuts []Intersection) Polygon {
	sort.SliceStable(cuts, func(i, j int) bool { return cuts[i].K < cuts[j].K })

	p := make(Polygon, 0, 2*len(k)+len(cuts))
	for i, x := range k {
		for len(cuts) > 0 && cuts[0].K <= float64(i) {
			if cuts[0].K != float64(i) {
				p = append(p, pt(k.At(cuts[0].K), cuts[0].Freq))
			}
			cuts = cuts[1:]
		}
		p = append(p, pt(x, lower[i]))
	}
	for i := len(k) - 1; i >= 0; i-- {
		p = append(p, pt(k[i], upper[i]))
	}
	return p
}
