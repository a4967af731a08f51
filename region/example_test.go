package region_test

import (
	"fmt"

	"github.com/vdobler/bandplot/region"
)

func ExampleClipGap() {
	k := region.KAxis{0, 1, 2, 3, 4}
	light := region.Curve{0, 0, 4, 0, 0}
	gap := region.Band{From: 1, To: 3}

	below, _ := region.ClipGap(k, gap, light)
	above, _ := region.ClipGapAbove(k, gap, light)
	for _, p := range below {
		fmt.Println("below:", p)
	}
	for _, p := range above {
		fmt.Println("above:", p)
	}
	// Output:
	// below: [(1.25,1) (1.75,3) (2.25,3) (2.75,1)]
	// above: [(0,3) (0,1) (1.25,1) (1.75,3)]
	// above: [(2.25,3) (2.75,1) (4,1) (4,3)]
}

func ExampleResolveOverlaps() {
	k := region.IndexAxis(3)
	ribbons := []region.Ribbon{
		{Lower: region.Curve{1, 1, 1}, Upper: region.Curve{2, 2, 2}},
		{Lower: region.Curve{3, 1, 3}, Upper: region.Curve{4, 4, 4}},
	}
	res, err := region.ResolveOverlaps(k, ribbons, true)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Polygons[1])
	fmt.Println(res.Lower[1])
	// Output:
	// [(0,3) (0.5,2) (1,2) (1.5,2) (2,3) (2,4) (1,4) (0,4)]
	// [3 2 3]
}

func ExampleCumulativeDistance() {
	fmt.Println(region.CumulativeDistance([][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}))
	// Output:
	// [0 1 2]
}
