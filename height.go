package profile

import (
	"fmt"
)

const (
	// GroundHandle is the height of the tangent handles around a ground
	// breakpoint.
	GroundHandle = 0.3
	// RoofHandle is the height of the tangent handles around a roof
	// breakpoint.
	RoofHandle = 0.7
	// MidHandle is the horizontal distance between a mid breakpoint and its
	// tangent handles.
	MidHandle = 0.3
)

// DefaultHeightProfile returns the profile used when there are no labels: a
// single segment ramping smoothly from height 0 at position 0 to height 1 at
// position 1.
func DefaultHeightProfile() Spline[Point2] {
	return Spline[Point2]{
		Pt2(0, 0),
		Pt2(0, GroundHandle),
		Pt2(1, RoofHandle),
		Pt2(1, 1),
	}
}

// knot is the on-curve point of a label and its two tangent handles.
type knot struct {
	point    Point2
	backward Point2
	forward  Point2
}

func labelKnot(l Label, pos float64) knot {
	switch l {
	case Ground:
		h := Pt2(pos, GroundHandle)
		return knot{Pt2(pos, 0), h, h}
	case Roof:
		h := Pt2(pos, RoofHandle)
		return knot{Pt2(pos, 1), h, h}
	case Mid:
		return knot{Pt2(pos, 0.5), Pt2(pos-MidHandle, 0.5), Pt2(pos+MidHandle, 0.5)}
	default:
		panic(fmt.Sprintf("invalid label %v", l))
	}
}

// BuildHeightProfile synthesizes a height profile from per-breakpoint
// labels. Label i sits at position i of the ground path's parameter domain.
// The profile's points are (position, height) pairs; L labels produce L-1
// segments.
//
// An empty label slice produces [DefaultHeightProfile]. A single label
// cannot form a segment and results in an error wrapping [ErrGeometry].
//
// From the third label on, each label contributes its own forward handle
// ahead of its backward handle. The reconstructed shapes depend on this
// order, so a mid label's forward handle only matters when the label comes
// first.
func BuildHeightProfile(labels []Label) (Spline[Point2], error) {
	switch len(labels) {
	case 0:
		return DefaultHeightProfile(), nil
	case 1:
		return nil, fmt.Errorf("%w: a height profile needs at least 2 labels, got 1", ErrGeometry)
	}
	for i, l := range labels {
		if l > Mid {
			return nil, fmt.Errorf("%w: unknown label %d at position %d", ErrBadInput, uint8(l), i)
		}
	}

	out := make(Spline[Point2], 0, 3*len(labels)-2)
	for seg, l := range labels {
		k := labelKnot(l, float64(seg))
		if seg == 0 {
			out = append(out, k.point, k.forward)
			continue
		}
		if len(out) > 2 {
			out = append(out, k.forward)
		}
		out = append(out, k.backward, k.point)
	}
	return out, nil
}
