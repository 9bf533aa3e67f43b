package profile

import (
	"errors"
	"testing"
)

func TestBuildHeightProfile(t *testing.T) {
	tests := []struct {
		name   string
		labels []Label
		want   Spline[Point2]
	}{
		{
			"empty",
			nil,
			Spline[Point2]{Pt2(0, 0), Pt2(0, 0.3), Pt2(1, 0.7), Pt2(1, 1)},
		},
		{
			"ground roof",
			[]Label{Ground, Roof},
			Spline[Point2]{Pt2(0, 0), Pt2(0, 0.3), Pt2(1, 0.7), Pt2(1, 1)},
		},
		{
			"roof ground",
			[]Label{Roof, Ground},
			Spline[Point2]{Pt2(0, 1), Pt2(0, 0.7), Pt2(1, 0.3), Pt2(1, 0)},
		},
		{
			"leading mid",
			[]Label{Mid, Ground},
			Spline[Point2]{Pt2(0, 0.5), Pt2(MidHandle, 0.5), Pt2(1, 0.3), Pt2(1, 0)},
		},
		{
			// The mid label's forward handle is never emitted; the roof
			// label's own forward handle opens the second segment.
			"ground mid roof",
			[]Label{Ground, Mid, Roof},
			Spline[Point2]{
				Pt2(0, 0), Pt2(0, 0.3),
				Pt2(1-MidHandle, 0.5), Pt2(1, 0.5),
				Pt2(2, 0.7), Pt2(2, 0.7), Pt2(2, 1),
			},
		},
		{
			"roof ground mid roof",
			[]Label{Roof, Ground, Mid, Roof},
			Spline[Point2]{
				Pt2(0, 1), Pt2(0, 0.7),
				Pt2(1, 0.3), Pt2(1, 0),
				Pt2(2+MidHandle, 0.5), Pt2(2-MidHandle, 0.5), Pt2(2, 0.5),
				Pt2(3, 0.7), Pt2(3, 0.7), Pt2(3, 1),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildHeightProfile(tt.labels)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got)
			if err := got.Validate(); err != nil {
				t.Error(err)
			}
			if n, want := got.NumSegments(), max(len(tt.labels)-1, 1); n != want {
				t.Errorf("got %d segments, want %d", n, want)
			}
		})
	}
}

func TestBuildHeightProfileErrors(t *testing.T) {
	if _, err := BuildHeightProfile([]Label{Roof}); !errors.Is(err, ErrGeometry) {
		t.Errorf("single label: got error %v, want %v", err, ErrGeometry)
	}
	if _, err := BuildHeightProfile([]Label{Ground, Label(7)}); !errors.Is(err, ErrBadInput) {
		t.Errorf("unknown label: got error %v, want %v", err, ErrBadInput)
	}
}

func TestDefaultHeightProfileIsFresh(t *testing.T) {
	p := DefaultHeightProfile()
	p[0] = Pt2(5, 5)
	diff(t, Pt2(0, 0), DefaultHeightProfile()[0])
}
