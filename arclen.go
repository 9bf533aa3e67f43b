package profile

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ArcLengthTable maps a normalized global parameter in [0, 1] to the
// segments of a spline in proportion to their lengths. Entry k is the
// normalized length of the first k segments; the first entry is 0 and the
// last is 1.
//
// Segment lengths are approximated by the length of their control polygons.
type ArcLengthTable []float64

// BuildArcLengthTable builds the table for s. The returned error wraps
// [ErrGeometry] if s is malformed or has zero total length.
func BuildArcLengthTable[P Vector[P]](s Spline[P]) (ArcLengthTable, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	n := s.NumSegments()
	tbl := make(ArcLengthTable, n+1)
	for k := range n {
		tbl[k+1] = s.Segment(k).PolygonLength()
	}
	floats.CumSum(tbl, tbl)

	total := tbl[n]
	if total == 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return nil, fmt.Errorf("%w: spline has total length %g", ErrGeometry, total)
	}
	// Divide rather than multiply by the reciprocal so that the last entry
	// is exactly 1.
	for i := range tbl {
		tbl[i] /= total
	}
	return tbl, nil
}

// NumSegments returns the number of segments the table covers.
func (a ArcLengthTable) NumSegments() int {
	return max(len(a)-1, 0)
}

// Locate returns the segment containing the normalized parameter u and the
// local parameter within that segment. A u lying exactly on a boundary
// belongs to the earlier segment. Values outside [0, 1] extrapolate the
// first or last segment.
func (a ArcLengthTable) Locate(u float64) (int, float64) {
	b := 1
	for b < len(a)-1 && u > a[b] {
		b++
	}
	lo, hi := a[b-1], a[b]
	if hi == lo {
		return b - 1, 0
	}
	return b - 1, (u - lo) / (hi - lo)
}

// Param is the inverse of [ArcLengthTable.Locate]. It returns the normalized
// parameter of the local parameter s in segment seg.
func (a ArcLengthTable) Param(seg int, s float64) float64 {
	return a[seg] + s*(a[seg+1]-a[seg])
}
