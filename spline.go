package profile

import (
	"fmt"
	"iter"
	"math"
)

// BoundaryEpsilon biases parameters that lie within it of an integer segment
// boundary towards the preceding segment. See [Spline.SegmentAt].
const BoundaryEpsilon = 1e-5

// Spline is a composite cubic Bézier spline of N segments, stored as 3N+1
// points. Segment k consists of the points 3k through 3k+3; neighboring
// segments share their boundary point.
//
// The parameter domain of a spline is [0, N], with segment k covering
// [k, k+1].
type Spline[P Vector[P]] []P

// Dim returns the dimension of the spline's points.
func (s Spline[P]) Dim() Dimension {
	var zero P
	return zero.Dim()
}

// Validate reports whether s holds at least one segment and has 3N+1 points.
// The returned error wraps [ErrGeometry].
func (s Spline[P]) Validate() error {
	switch {
	case len(s) == 0:
		return fmt.Errorf("%w: empty spline", ErrGeometry)
	case len(s) < 4 || (len(s)-1)%3 != 0:
		return fmt.Errorf("%w: %s spline has %d points, want 3N+1 with N ≥ 1", ErrGeometry, s.Dim(), len(s))
	default:
		return nil
	}
}

// NumSegments returns the number of cubic segments.
func (s Spline[P]) NumSegments() int {
	if len(s) < 4 {
		return 0
	}
	return (len(s) - 1) / 3
}

// Segment returns the k-th segment.
func (s Spline[P]) Segment(k int) Cubic[P] {
	return Cubic[P]{s[3*k], s[3*k+1], s[3*k+2], s[3*k+3]}
}

// Segments returns an iterator over the spline's segments.
func (s Spline[P]) Segments() iter.Seq[Cubic[P]] {
	return func(yield func(Cubic[P]) bool) {
		for k := range s.NumSegments() {
			if !yield(s.Segment(k)) {
				break
			}
		}
	}
}

// SegmentAt maps the global parameter t to a segment index and the local
// parameter within that segment.
//
// The index is ⌊t - [BoundaryEpsilon]⌋, clamped to the valid segment range,
// so that a t at or just past an integer boundary evaluates the end of the
// preceding segment. The local parameter is t minus the index and is not
// clamped; parameters beyond the domain extrapolate the first or last
// segment.
func (s Spline[P]) SegmentAt(t float64) (int, float64) {
	idx := max(int(math.Floor(t-BoundaryEpsilon)), 0)
	idx = min(idx, max(s.NumSegments()-1, 0))
	return idx, t - float64(idx)
}

// Eval evaluates the spline at the global parameter t.
func (s Spline[P]) Eval(t float64) P {
	idx, frac := s.SegmentAt(t)
	return s.Segment(idx).Eval(frac)
}

// Deriv evaluates the spline's derivative at the global parameter t.
func (s Spline[P]) Deriv(t float64) P {
	idx, frac := s.SegmentAt(t)
	return s.Segment(idx).Deriv(frac)
}

// Split inserts new breakpoints into the spline without changing its shape
// and returns the resulting spline. s is not modified.
//
// indices lists the segments to split, in non-decreasing order, and ts holds
// the matching split parameters local to the original segments. A segment
// may be split more than once, in which case its parameters must be strictly
// increasing. The returned error wraps [ErrBadInput] if the arguments don't
// satisfy these rules, or [ErrGeometry] if s isn't a valid spline.
func (s Spline[P]) Split(ts []float64, indices []int) (Spline[P], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(ts) != len(indices) {
		return nil, fmt.Errorf("%w: got %d split parameters for %d segment indices", ErrBadInput, len(ts), len(indices))
	}
	n := s.NumSegments()
	for i, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%w: segment index %d out of range [0, %d)", ErrBadInput, idx, n)
		}
		if i == 0 {
			continue
		}
		switch prev := indices[i-1]; {
		case idx < prev:
			return nil, fmt.Errorf("%w: segment indices not non-decreasing at position %d (%d after %d)", ErrBadInput, i, idx, prev)
		case idx == prev && ts[i] <= ts[i-1]:
			return nil, fmt.Errorf("%w: split parameters of segment %d not increasing (%g after %g)", ErrBadInput, idx, ts[i], ts[i-1])
		case idx == prev && ts[i-1] == 1:
			return nil, fmt.Errorf("%w: segment %d split again after its end", ErrBadInput, idx)
		}
	}

	out := make(Spline[P], 0, len(s)+3*len(ts))
	cur := 0
	for k := range n {
		if cur >= len(indices) || indices[cur] != k {
			out = append(out, s[3*k:3*k+3]...)
			continue
		}

		pts := [4]P(s[3*k : 3*k+4])
		lastT := 0.0
		for cur < len(indices) && indices[cur] == k {
			t := ts[cur]
			// Later splits apply to the remainder of the segment, so
			// renormalize t against what has already been consumed.
			halves := SplitCubic(pts, (t-lastT)/(1-lastT))
			out = append(out, halves[:3]...)
			pts = [4]P(halves[3:])
			lastT = t
			cur++
		}
		out = append(out, pts[:3]...)
	}
	out = append(out, s[len(s)-1])
	return out, nil
}
