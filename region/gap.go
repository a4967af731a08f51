package region

// Band is a horizontal frequency range spanning the whole k-axis,
// typically a photonic band gap.
type Band struct {
	From, To float64
}

// Degenerate reports whether b marks "no gap": a negative lower bound or
// a non-positive upper bound.
func (b Band) Degenerate() bool {
	return b.From < 0 || b.To <= 0
}

// Size returns the gap-midgap ratio of b.
func (b Band) Size() float64 {
	return (b.To - b.From) / ((b.To + b.From) / 2)
}

// ClipGap returns the polygons covering the part of band b which lies
// below the light line. A nil light line leaves the full rectangle.
//
// A light line sample equal to b.To counts as above the gap and one equal
// to b.From as below it, so a light line running along a gap edge adds
// no area.
//
// Each time the light line enters the gap from below a new polygon is
// started and each time it leaves downwards that polygon is closed, so
// the result may hold any number of polygons, including none when the
// light line stays at or below b.From.
func ClipGap(k KAxis, b Band, light Curve) ([]Polygon, error) {
	if b.Degenerate() {
		return nil, nil
	}
	if len(k) == 0 {
		return nil, ErrEmptyAxis
	}
	if light == nil {
		return []Polygon{{
			pt(k.Left(), b.From),
			pt(k.Right(), b.From),
			pt(k.Right(), b.To),
			pt(k.Left(), b.To),
		}}, nil
	}
	if err := k.Check(light); err != nil {
		return nil, err
	}
	return sweepGap(k, b.From, b.To, light), nil
}

// ClipGapAbove is the mirror image of ClipGap: it keeps the part of band b
// lying above the light line and removes the part below it.
func ClipGapAbove(k KAxis, b Band, light Curve) ([]Polygon, error) {
	if b.Degenerate() {
		return nil, nil
	}
	if light == nil {
		return ClipGap(k, b, nil)
	}
	if len(k) == 0 {
		return nil, ErrEmptyAxis
	}
	if err := k.Check(light); err != nil {
		return nil, err
	}

	mirrored := make(Curve, len(light))
	for i, f := range light {
		mirrored[i] = -f
	}
	polys := sweepGap(k, -b.To, -b.From, mirrored)
	for _, p := range polys {
		for i := range p {
			p[i].Y = -p[i].Y
		}
	}
	return polys, nil
}

// sweepGap walks the light line from left to right and keeps the part of
// [from, to] below it. The order of the checks inside the loop matters:
// entering intersections precede the light line sample, leaving
// intersections follow it.
func sweepGap(k KAxis, from, to float64, light Curve) []Polygon {
	var polys []Polygon
	var points Polygon

	above := light[0] >= to
	below := light[0] <= from
	if !below {
		points = append(points, pt(k[0], from))
		if above {
			points = append(points, pt(k[0], to))
		} else {
			points = append(points, pt(k[0], light[0]))
		}
	}

	for i := 1; i < len(light); i++ {
		x0, dx := k[i-1], k[i]-k[i-1]
		cross := func(f float64) {
			t := CrossingFraction(light[i-1], light[i], f)
			points = append(points, pt(x0+dx*t, f))
		}

		prevAbove, prevBelow := above, below
		above = light[i] >= to
		below = light[i] <= from

		switch {
		case prevAbove && !above:
			cross(to)
		case prevBelow && !below:
			// Opens a new polygon; points is empty here.
			cross(from)
		}

		switch {
		case !above && !below:
			points = append(points, pt(k[i], light[i]))
		case !prevAbove && above:
			cross(to)
		case !prevBelow && below:
			cross(from)
			polys = append(polys, points)
			points = nil
		}
	}

	if above {
		points = append(points, pt(k.Right(), to))
	}
	if !below {
		points = append(points, pt(k.Right(), from))
	}
	if len(points) > 0 {
		polys = append(polys, points)
	}
	return polys
}
