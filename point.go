package profile

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Dimension is the number of coordinates of the points of a spline.
type Dimension uint8

const (
	Two   Dimension = 2
	Three Dimension = 3
)

func (d Dimension) String() string {
	switch d {
	case Two:
		return "2D"
	case Three:
		return "3D"
	default:
		return fmt.Sprintf("Dimension(%d)", uint8(d))
	}
}

// Vector is the set of operations the Bézier routines need from a point
// type. It is implemented by [Point2] and [Point3].
type Vector[P any] interface {
	// Dim returns the dimension of the point type. It doesn't depend on the
	// point's value.
	Dim() Dimension
	// Coord returns the i-th coordinate, starting at 0.
	Coord(i int) float64
	Add(o P) P
	Sub(o P) P
	Mul(f float64) P
	// Lerp linearly interpolates between the point and o.
	Lerp(o P, t float64) P
	// Distance returns the euclidean distance between the point and o.
	Distance(o P) float64
}

var _ Vector[Point2] = Point2{}
var _ Vector[Point3] = Point3{}

// Point2 is a point in the plane. Height profiles are splines of Point2,
// with X being the position along the ground path and Y the height.
type Point2 r2.Vec

// Pt2 returns the point (x, y).
func Pt2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

func (pt Point2) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (Point2) Dim() Dimension { return Two }

func (pt Point2) Coord(i int) float64 {
	switch i {
	case 0:
		return pt.X
	case 1:
		return pt.Y
	default:
		panic(fmt.Sprintf("coordinate %d out of range for 2D point", i))
	}
}

func (pt Point2) Add(o Point2) Point2 {
	return Point2(r2.Add(r2.Vec(pt), r2.Vec(o)))
}

func (pt Point2) Sub(o Point2) Point2 {
	return Point2(r2.Sub(r2.Vec(pt), r2.Vec(o)))
}

func (pt Point2) Mul(f float64) Point2 {
	return Point2(r2.Scale(f, r2.Vec(pt)))
}

func (pt Point2) Lerp(o Point2, t float64) Point2 {
	// pt + t * (o-pt)
	return pt.Add(o.Sub(pt).Mul(t))
}

func (pt Point2) Distance(o Point2) float64 {
	return r2.Norm(r2.Sub(r2.Vec(pt), r2.Vec(o)))
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point2) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Point3 is a point in space. Z is the elevation; X and Y span the ground
// plane.
type Point3 r3.Vec

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

func (Point3) Dim() Dimension { return Three }

func (pt Point3) Coord(i int) float64 {
	switch i {
	case 0:
		return pt.X
	case 1:
		return pt.Y
	case 2:
		return pt.Z
	default:
		panic(fmt.Sprintf("coordinate %d out of range for 3D point", i))
	}
}

func (pt Point3) Add(o Point3) Point3 {
	return Point3(r3.Add(r3.Vec(pt), r3.Vec(o)))
}

func (pt Point3) Sub(o Point3) Point3 {
	return Point3(r3.Sub(r3.Vec(pt), r3.Vec(o)))
}

func (pt Point3) Mul(f float64) Point3 {
	return Point3(r3.Scale(f, r3.Vec(pt)))
}

func (pt Point3) Lerp(o Point3, t float64) Point3 {
	return pt.Add(o.Sub(pt).Mul(t))
}

func (pt Point3) Distance(o Point3) float64 {
	return r3.Norm(r3.Sub(r3.Vec(pt), r3.Vec(o)))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as pt.
// The zero vector is returned unchanged.
func (pt Point3) Normalize() Point3 {
	if pt == (Point3{}) {
		return pt
	}
	return Point3(r3.Unit(r3.Vec(pt)))
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (pt Point3) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}

// planar returns the first two coordinates of pt.
func planar[P Vector[P]](pt P) (x, y float64) {
	return pt.Coord(0), pt.Coord(1)
}
