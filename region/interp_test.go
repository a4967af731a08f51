package region

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var crossingFractionTests = []struct {
	y0, y1, target float64
	want           float64
}{
	{0, 4, 1, 0.25},
	{0, 4, 3, 0.75},
	{4, 0, 3, 0.25},
	{4, 0, 1, 0.75},
	{1, 2, 1, 0},
	{1, 2, 2, 1},
	{-1, 1, 0, 0.5},
	{0, 1, 2, 2}, // no clamping
}

func TestCrossingFraction(t *testing.T) {
	for i, tc := range crossingFractionTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := CrossingFraction(tc.y0, tc.y1, tc.target)
			assert.InDelta(t, tc.want, got, 1e-12,
				"CrossingFraction(%g,%g,%g)", tc.y0, tc.y1, tc.target)
		})
	}
}

var segmentIntersectionTests = []struct {
	l1, r1, l2, r2 float64
	x, freq        float64
}{
	{0, 2, 2, 0, 0.5, 1},
	{3, 1, 2, 2, 0.5, 2},
	{1, 3, 2, 2, 0.5, 2},
	{0, 4, 1, 1, 0.25, 1},
	{0, 1, 0, 2, 0, 0},
	{1, 1, 0, 2, 0.5, 1},
}

func TestSegmentIntersection(t *testing.T) {
	for i, tc := range segmentIntersectionTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			x, f := SegmentIntersection(tc.l1, tc.r1, tc.l2, tc.r2)
			assert.InDelta(t, tc.x, x, 1e-12)
			assert.InDelta(t, tc.freq, f, 1e-12)

			// Both segments pass through the crossing.
			assert.InDelta(t, tc.l1+x*(tc.r1-tc.l1), tc.l2+x*(tc.r2-tc.l2), 1e-12)
		})
	}
}
