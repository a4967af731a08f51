package geom

import (
	"fmt"
	"image/color"

	"github.com/vdobler/bandplot/region"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// WithAlpha returns col with its opacity scaled by alpha in [0,1].
// A nil col stays nil.
func WithAlpha(col color.Color, alpha float64) color.Color {
	if col == nil {
		return nil
	}
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	r, g, b, a := col.RGBA()
	return color.NRGBA64{
		R: uint16(unpremultiply(r, a)),
		G: uint16(unpremultiply(g, a)),
		B: uint16(unpremultiply(b, a)),
		A: uint16(float64(a) * alpha),
	}
}

func unpremultiply(c, a uint32) uint32 {
	if a == 0 {
		return 0
	}
	return c * 0xffff / a
}

// GapText formats the relative size of the area covered by p into format.
// The size is the height of p's bounding box divided by its vertical
// center, in percent, so "%.1f%%" yields e.g. "12.3%".
// An empty format or polygon gives an empty string.
func GapText(p region.Polygon, format string) string {
	if format == "" || len(p) == 0 {
		return ""
	}
	_, _, ymin, ymax := p.Bounds()
	b := region.Band{From: ymin, To: ymax}
	return fmt.Sprintf(format, 100*b.Size())
}

// center returns the center of the bounding box of p.
func center(p region.Polygon) (x, y float64) {
	xmin, xmax, ymin, ymax := p.Bounds()
	return (xmin + xmax) / 2, (ymin + ymax) / 2
}

// thumbnailRect fills the full thumbnail canvas with col.
func thumbnailRect(c *draw.Canvas, col color.Color) {
	if col == nil {
		return
	}
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(col, pts)
}
