package region

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
)

// A Polygon is an ordered list of vertices. The last vertex is implicitly
// connected to the first one.
//
// Polygon implements plotter.XYer so it can be handed to plotter.NewPolygon
// directly.
type Polygon []plotter.XY

// Len implements plotter.XYer.
func (p Polygon) Len() int { return len(p) }

// XY implements plotter.XYer.
func (p Polygon) XY(i int) (x, y float64) { return p[i].X, p[i].Y }

// Bounds returns the bounding box of p. It returns +Inf/-Inf ranges for
// an empty polygon.
func (p Polygon) Bounds() (xmin, xmax, ymin, ymax float64) {
	return plotter.XYRange(p)
}

func (p Polygon) String() string {
	s := "["
	for i, v := range p {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("(%g,%g)", v.X, v.Y)
	}
	return s + "]"
}

func pt(x, y float64) plotter.XY { return plotter.XY{X: x, Y: y} }
