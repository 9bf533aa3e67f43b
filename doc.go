// Package profile reconstructs 3D curves from a path on the ground and coarse
// per-breakpoint labels describing how high the curve is at each breakpoint.
//
// # Splines
//
// The ground path is a composite cubic Bézier [Spline] of 3N+1 points, either
// [Point2] or [Point3]. Dimension is a property of the spline's point type
// rather than of individual points; the Bézier routines [Eval], [Deriv] and
// [SplitCubic] work on any type implementing [Vector].
//
// # Height profiles
//
// Each breakpoint of the ground path carries a [Label]: [Ground], [Roof] or
// [Mid]. [BuildHeightProfile] turns the labels into a second, 2D spline whose
// points are (position along the ground path, height) pairs. Heights are
// normalized, 0 being the ground and 1 the roof.
//
// # Curves
//
// [Curve] combines the two. [Curve.Point] maps u ∈ [0, 1] to a segment of the
// height profile through an [ArcLengthTable], evaluates the height profile,
// and samples the ground path at the resulting position. The output takes
// its X and Y coordinates from the ground path and its Z coordinate from the
// height profile. Arc lengths are approximated by control polygon lengths,
// which is cheap and accurate enough for uniform sampling.
//
// [Curve] implements [ParametricCurve3], the contract consumed by
// tessellators; [Points] samples any such curve.
//
// # Editing
//
// [Spline.Split] inserts breakpoints using de Casteljau subdivision without
// changing a spline's shape. Curves are immutable: to apply a split to a
// curve's height profile, build a new curve with [NewWithProfile].
package profile
