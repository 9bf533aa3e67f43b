package profile

import (
	"fmt"
	"slices"
)

var _ ParametricCurve3 = (*Curve[Point2])(nil)
var _ ParametricCurve3 = (*Curve[Point3])(nil)

// Curve is a 3D curve reconstructed from a ground path and a height profile.
//
// The height profile is a spline of (position, height) points. Evaluating it
// yields a position along the ground path, which is sampled for the planar
// coordinates, and the elevation of the result. The height profile thus
// both lifts and reparametrizes the ground path.
//
// A Curve is immutable after construction and safe for concurrent use.
type Curve[P Vector[P]] struct {
	ground  Spline[P]
	heights Spline[Point2]
	arclens ArcLengthTable
}

// New returns the curve for the ground path ground, with its height profile
// synthesized from labels by [BuildHeightProfile]. Label i applies to
// breakpoint i of the ground path, that is point 3i.
//
// ground is borrowed and must not be modified while the curve is in use.
func New[P Vector[P]](ground Spline[P], labels []Label) (*Curve[P], error) {
	heights, err := BuildHeightProfile(labels)
	if err != nil {
		return nil, err
	}
	return NewWithProfile(ground, heights)
}

// NewWithProfile returns the curve for the ground path ground and an
// explicit height profile, such as one returned by [Curve.Split]. heights is
// copied.
func NewWithProfile[P Vector[P]](ground Spline[P], heights Spline[Point2]) (*Curve[P], error) {
	if err := ground.Validate(); err != nil {
		return nil, fmt.Errorf("ground path: %w", err)
	}
	arclens, err := BuildArcLengthTable(heights)
	if err != nil {
		return nil, fmt.Errorf("height profile: %w", err)
	}
	return &Curve[P]{
		ground:  ground,
		heights: slices.Clone(heights),
		arclens: arclens,
	}, nil
}

// Ground returns the ground path. The caller must not modify it.
func (c *Curve[P]) Ground() Spline[P] { return c.ground }

// HeightProfile returns a copy of the height profile.
func (c *Curve[P]) HeightProfile() Spline[Point2] { return slices.Clone(c.heights) }

// ArcLengths returns a copy of the height profile's arc length table.
func (c *Curve[P]) ArcLengths() ArcLengthTable { return slices.Clone(c.arclens) }

// GroundPoint evaluates the ground path at t ∈ [0, N], ignoring the height
// profile. See [Spline.SegmentAt] for how t selects a segment.
func (c *Curve[P]) GroundPoint(t float64) P {
	return c.ground.Eval(t)
}

// GroundTangent evaluates the ground path's derivative at t ∈ [0, N].
func (c *Curve[P]) GroundTangent(t float64) P {
	return c.ground.Deriv(t)
}

// Point evaluates the curve at u ∈ [0, 1].
func (c *Curve[P]) Point(u float64) Point3 {
	return c.PointAt(c.arclens.Locate(u))
}

// PointAt evaluates the curve at the local parameter s of the height
// profile's segment seg.
func (c *Curve[P]) PointAt(seg int, s float64) Point3 {
	h := c.heights.Segment(seg).Eval(s)
	x, y := planar(c.ground.Eval(h.X))
	return Point3{X: x, Y: y, Z: h.Y}
}

// Tangent returns the unit tangent at u ∈ [0, 1], estimated by a central
// difference of step [TangentDelta] clamped to [0, 1].
func (c *Curve[P]) Tangent(u float64) Point3 {
	return tangent(c, u)
}

// Split inserts breakpoints into the height profile and returns the new
// profile, which has the same shape. See [Spline.Split]. Pass the result to
// [NewWithProfile] to obtain the corresponding curve; c isn't modified.
func (c *Curve[P]) Split(ts []float64, indices []int) (Spline[Point2], error) {
	return c.heights.Split(ts, indices)
}
