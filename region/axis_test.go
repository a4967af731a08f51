package region

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAxis(t *testing.T) {
	diff(t, KAxis{0, 1, 2, 3}, IndexAxis(4))
	diff(t, KAxis{}, IndexAxis(0), approx)
}

func TestCumulativeDistance(t *testing.T) {
	k := CumulativeDistance([][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}})
	diff(t, KAxis{0, 1, 2}, k, approx)

	k = CumulativeDistance([][3]float64{{0, 0, 0}, {0.5, 0.5, 0}, {0.5, 0.5, 0}, {0, 0, 0}})
	h := math.Sqrt(0.5)
	diff(t, KAxis{0, h, h, 2 * h}, k, approx)

	diff(t, KAxis{0}, CumulativeDistance([][3]float64{{3, 4, 5}}))
}

func TestKAxisAt(t *testing.T) {
	k := KAxis{0, 1, 3, 6}
	for _, tc := range []struct{ frac, want float64 }{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 2},
		{2.25, 3.75},
		{3, 6},
		{-1, 0},
		{7, 6},
	} {
		assert.InDelta(t, tc.want, k.At(tc.frac), 1e-12, "At(%g)", tc.frac)
	}
	assert.True(t, math.IsNaN(KAxis{}.At(0)))
}

func TestKAxisCheck(t *testing.T) {
	k := IndexAxis(3)
	assert.NoError(t, k.Check(Curve{1, 2, 3}))
	err := k.Check(Curve{1, 2})
	assert.True(t, errors.Is(err, ErrLength), "got %v", err)
}
