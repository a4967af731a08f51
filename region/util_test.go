package region

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmp.Options{
	cmpopts.EquateApprox(0, 1e-12),
	cmpopts.EquateEmpty(),
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func poly(xy ...float64) Polygon {
	p := make(Polygon, len(xy)/2)
	for i := range p {
		p[i] = pt(xy[2*i], xy[2*i+1])
	}
	return p
}
