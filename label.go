package profile

import (
	"fmt"
)

// Label describes where the reconstructed curve sits at a breakpoint of the
// ground path.
type Label uint8

const (
	// Ground places the breakpoint at height 0.
	Ground Label = iota
	// Roof places the breakpoint at height 1.
	Roof
	// Mid places the breakpoint at height 0.5, passing through horizontally.
	Mid
)

func (l Label) String() string {
	switch l {
	case Ground:
		return "ground"
	case Roof:
		return "roof"
	case Mid:
		return "mid"
	default:
		return fmt.Sprintf("Label(%d)", uint8(l))
	}
}

// LabelFromCode converts the numeric code used by stored documents (0 for
// ground, 1 for roof, 2 for mid) to a label.
func LabelFromCode(code int) (Label, error) {
	if code < int(Ground) || code > int(Mid) {
		return 0, fmt.Errorf("%w: unknown label code %d", ErrBadInput, code)
	}
	return Label(code), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (l Label) MarshalText() ([]byte, error) {
	if l > Mid {
		return nil, fmt.Errorf("%w: unknown label %d", ErrBadInput, uint8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Label) UnmarshalText(b []byte) error {
	switch string(b) {
	case "ground":
		*l = Ground
	case "roof":
		*l = Roof
	case "mid":
		*l = Mid
	default:
		return fmt.Errorf("%w: unknown label %q", ErrBadInput, b)
	}
	return nil
}
