package profile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those inside points and splines, with an
// absolute tolerance.
func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}

// line3 returns a straight ground path of n segments from the origin along
// the x axis, each segment having length 1.
func line3(n int) Spline[Point3] {
	s := make(Spline[Point3], 3*n+1)
	for i := range s {
		s[i] = Pt3(float64(i)/3, 0, 0)
	}
	return s
}
