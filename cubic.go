package profile

// Eval evaluates the cubic Bézier with control points p0, p1, p2 and p3 at t,
// using the Bernstein weights (1-t)³, 3t(1-t)², 3t²(1-t) and t³.
//
// t is not clamped; values outside [0, 1] extrapolate the cubic polynomial.
// Eval(0, …) is exactly p0 and Eval(1, …) is exactly p3.
func Eval[P Vector[P]](t float64, p0, p1, p2, p3 P) P {
	mt := 1.0 - t
	m0 := mt * mt * mt
	m1 := 3.0 * t * mt * mt
	m2 := 3.0 * t * t * mt
	m3 := t * t * t
	return p0.Mul(m0).Add(p1.Mul(m1)).Add(p2.Mul(m2)).Add(p3.Mul(m3))
}

// Deriv evaluates the first derivative of the cubic Bézier with control
// points p0, p1, p2 and p3 at t.
func Deriv[P Vector[P]](t float64, p0, p1, p2, p3 P) P {
	t2 := t * t
	m0 := -3.0 + 6.0*t - 3.0*t2
	m1 := 3.0 - 12.0*t + 9.0*t2
	m2 := 6.0*t - 9.0*t2
	m3 := 3.0 * t2
	return p0.Mul(m0).Add(p1.Mul(m1)).Add(p2.Mul(m2)).Add(p3.Mul(m3))
}

// Cubic is a single cubic Bézier segment.
type Cubic[P Vector[P]] struct {
	P0 P
	P1 P
	P2 P
	P3 P
}

// Eval evaluates the cubic at t. See [Eval].
func (c Cubic[P]) Eval(t float64) P {
	return Eval(t, c.P0, c.P1, c.P2, c.P3)
}

// Deriv evaluates the cubic's first derivative at t. See [Deriv].
func (c Cubic[P]) Deriv(t float64) P {
	return Deriv(t, c.P0, c.P1, c.P2, c.P3)
}

func (c Cubic[P]) Start() P { return c.P0 }
func (c Cubic[P]) End() P   { return c.P3 }

// Points returns the control points in order.
func (c Cubic[P]) Points() [4]P {
	return [4]P{c.P0, c.P1, c.P2, c.P3}
}

// PolygonLength returns the length of the control polygon. It is an upper
// bound of the cubic's arc length.
func (c Cubic[P]) PolygonLength() float64 {
	return c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
}

// Split splits the cubic at t using de Casteljau's algorithm. The two
// resulting cubics trace the same curve as c, meeting at c.Eval(t).
//
// t is not clamped.
func (c Cubic[P]) Split(t float64) (Cubic[P], Cubic[P]) {
	e := c.P0.Lerp(c.P1, t)
	f := c.P1.Lerp(c.P2, t)
	g := c.P2.Lerp(c.P3, t)
	h := e.Lerp(f, t)
	j := f.Lerp(g, t)
	k := h.Lerp(j, t)
	return Cubic[P]{c.P0, e, h, k}, Cubic[P]{k, j, g, c.P3}
}

// SplitCubic splits the cubic segment pts at t and returns the seven control
// points of the two halves, which share the middle point. pts[0:4] of the
// result is the first half, pts[3:7] the second.
func SplitCubic[P Vector[P]](pts [4]P, t float64) [7]P {
	c0, c1 := Cubic[P]{pts[0], pts[1], pts[2], pts[3]}.Split(t)
	return [7]P{c0.P0, c0.P1, c0.P2, c0.P3, c1.P1, c1.P2, c1.P3}
}
