package bandplot

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vdobler/bandplot/region"
	"gonum.org/v1/plot"
)

var ticksIntegralTests = []struct {
	pos  []float64
	want bool
}{
	{nil, true},
	{[]float64{0, 5, 10}, true},
	{[]float64{0, 2.5}, false},
	{[]float64{nan}, false},
}

func TestTicksIntegral(t *testing.T) {
	for i, tc := range ticksIntegralTests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			assert.Equal(t, tc.want, Ticks{Positions: tc.pos}.Integral())
		})
	}
}

func TestTicksOn(t *testing.T) {
	ticks := Ticks{Positions: []float64{0, 1, 2}, Labels: []string{"Γ", "X", "M"}, Title: "k"}
	k := region.CumulativeDistance([][3]float64{{0, 0, 0}, {0.5, 0, 0}, {0.5, 0.5, 0}})
	moved := ticks.On(k)
	assert.Equal(t, []float64{0, 0.5, 1}, moved.Positions)
	assert.Equal(t, ticks.Labels, moved.Labels)
	assert.Equal(t, []float64{0, 1, 2}, ticks.Positions, "input unchanged")
}

func TestTicksMarker(t *testing.T) {
	ticks := Ticks{Positions: []float64{0, 1, 2}, Labels: []string{"Γ", "X"}}
	got := ticks.Marker().Ticks(0, 2)
	assert.Equal(t, []plot.Tick{{Value: 0, Label: "Γ"}, {Value: 1, Label: "X"}, {Value: 2}}, got)
	assert.Equal(t, 1, ticks.LongestLabel())
	assert.True(t, Ticks{}.Empty())
}
