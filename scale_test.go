package bandplot

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var nan = math.NaN()

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestIntervalEqual(t *testing.T) {
	assert.True(t, Interval{1, 2}.Equal(Interval{1, 2}))
	assert.False(t, Interval{1, 2}.Equal(Interval{1, 3}))
	assert.True(t, Interval{nan, 2}.Equal(Interval{nan, 2}))
	assert.False(t, Interval{nan, 2}.Equal(Interval{1, 2}))
	assert.False(t, Interval{nan, nan}.Equal(Interval{nan, 2}))
}

var cropCombineTests = []struct {
	active Interval
	crop   Crop
	top    float64
	want   Interval
}{
	{Interval{nan, nan}, Crop{}, 0.5, Interval{nan, 0.5}},
	{Interval{nan, nan}, Crop{Kind: CropNone}, 0.5, Interval{nan, nan}},
	{Interval{nan, nan}, UpperBound(0.7), 0.5, Interval{nan, 0.7}},
	{Interval{nan, 0.6}, UpperBound(0.7), 0.5, Interval{nan, 0.6}},
	{Interval{nan, 0.8}, UpperBound(0.7), 0.5, Interval{nan, 0.7}},
	{Interval{nan, nan}, Range(0.1, 0.7), 0.5, Interval{0.1, 0.7}},
	{Interval{0.2, 0.6}, Range(0.1, 0.7), 0.5, Interval{0.2, 0.6}},
	{Interval{0.05, 0.8}, Range(0.1, 0.7), 0.5, Interval{0.1, 0.7}},
	{Interval{0.2, 0.6}, Crop{}, 0.4, Interval{0.2, 0.4}},
}

func TestCropCombine(t *testing.T) {
	for i, tc := range cropCombineTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			min, max := tc.crop.bounds(tc.top)
			got := combine(tc.active, min, max)
			if !got.Equal(tc.want) {
				t.Errorf("%v with %v = %v, want %v", tc.active, tc.crop, got, tc.want)
			}
		})
	}
}

func TestCropString(t *testing.T) {
	assert.Equal(t, "auto", Crop{}.String())
	assert.Equal(t, "none", Crop{Kind: CropNone}.String())
	assert.Equal(t, "upper(0.5)", UpperBound(0.5).String())
	assert.Equal(t, "range(0.1,0.5)", Range(0.1, 0.5).String())
	assert.Equal(t, "CropKind(9)", CropKind(9).String())
}
