package profile

import "iter"

// TangentDelta is the parameter step used to estimate tangents of
// [ParametricCurve3] implementations.
const TangentDelta = 1e-4

// ParametricCurve3 describes a 3D curve parametrized by u ∈ [0, 1], as
// consumed by tessellators and extruders.
type ParametricCurve3 interface {
	// Point evaluates the curve at u.
	Point(u float64) Point3
	// Tangent returns the unit tangent at u.
	Tangent(u float64) Point3
}

func tangent(c interface{ Point(float64) Point3 }, u float64) Point3 {
	u0 := max(u-TangentDelta, 0)
	u1 := min(u+TangentDelta, 1)
	return c.Point(u1).Sub(c.Point(u0)).Normalize()
}

// Points returns an iterator over divisions+1 points of c, evenly spaced in
// u and including both ends. Fewer than one division is treated as one.
func Points(c ParametricCurve3, divisions int) iter.Seq[Point3] {
	divisions = max(divisions, 1)
	return func(yield func(Point3) bool) {
		for d := range divisions + 1 {
			if !yield(c.Point(float64(d) / float64(divisions))) {
				break
			}
		}
	}
}
