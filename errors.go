package profile

import "errors"

var (
	// ErrGeometry is returned for degenerate geometry: empty or malformed
	// splines, a single label, or a spline whose total length is zero.
	ErrGeometry = errors.New("degenerate geometry")

	// ErrBadInput is returned for malformed arguments to operations on
	// otherwise valid geometry, such as misaligned split parameters.
	ErrBadInput = errors.New("bad input")
)
