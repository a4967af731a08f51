package region

import (
	"fmt"
	"math"
)

// KAxis holds the x-positions of the k-vectors of one subplot. All curves
// drawn into that subplot must be placed on the same KAxis.
type KAxis []float64

// Curve holds one frequency sample per KAxis position.
type Curve []float64

// IndexAxis returns the k-axis 0, 1, ..., n-1.
func IndexAxis(n int) KAxis {
	k := make(KAxis, n)
	for i := range k {
		k[i] = float64(i)
	}
	return k
}

// CumulativeDistance returns a k-axis which places the k-vectors vs at
// their distance along the path through reciprocal space: x[0] is 0 and
// x[i] = x[i-1] + |vs[i] - vs[i-1]|.
func CumulativeDistance(vs [][3]float64) KAxis {
	k := make(KAxis, len(vs))
	for i := 1; i < len(vs); i++ {
		dx := vs[i][0] - vs[i-1][0]
		dy := vs[i][1] - vs[i-1][1]
		dz := vs[i][2] - vs[i-1][2]
		k[i] = k[i-1] + math.Sqrt(dx*dx+dy*dy+dz*dz)
	}
	return k
}

// Left returns the first position of k.
func (k KAxis) Left() float64 { return k[0] }

// Right returns the last position of k.
func (k KAxis) Right() float64 { return k[len(k)-1] }

// At returns the x-position at the fractional sample index frac, linearly
// interpolated between the two bracketing samples. Values outside
// [0, len(k)-1] are clamped to the ends of the axis.
func (k KAxis) At(frac float64) float64 {
	if len(k) == 0 {
		return math.NaN()
	}
	last := len(k) - 1
	if frac <= 0 {
		return k[0]
	}
	if frac >= float64(last) {
		return k[last]
	}
	j := int(math.Floor(frac))
	t := frac - float64(j)
	return k[j] + t*(k[j+1]-k[j])
}

// Check reports whether c can be drawn on k.
func (k KAxis) Check(c Curve) error {
	if len(c) != len(k) {
		return fmt.Errorf("%w: %d samples for %d k-vectors", ErrLength, len(c), len(k))
	}
	return nil
}
