package region

// CrossingFraction returns the t for which y0 + t*(y1-y0) equals target.
// The segment is parametrised over [0,1]; t is not clamped and y1 must
// differ from y0.
func CrossingFraction(y0, y1, target float64) float64 {
	return (target - y0) / (y1 - y0)
}

// SegmentIntersection returns where two linear segments over the unit
// interval cross. Segment 1 runs from left1 to right1, segment 2 from
// left2 to right2. The returned x is the position in [0,1] (for crossing
// segments), freq the common value there. The segments must not be parallel.
func SegmentIntersection(left1, right1, left2, right2 float64) (x, freq float64) {
	slope1 := right1 - left1
	slope2 := right2 - left2
	x = (left2 - left1) / (slope1 - slope2)
	return x, left1 + x*slope1
}
