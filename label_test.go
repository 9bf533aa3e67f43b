package profile

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestLabelFromCode(t *testing.T) {
	for code, want := range []Label{Ground, Roof, Mid} {
		got, err := LabelFromCode(code)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("code %d: got %v, want %v", code, got, want)
		}
	}
	for _, code := range []int{-1, 3} {
		if _, err := LabelFromCode(code); !errors.Is(err, ErrBadInput) {
			t.Errorf("code %d: got error %v, want %v", code, err, ErrBadInput)
		}
	}
}

func TestLabelText(t *testing.T) {
	labels := []Label{Ground, Mid, Roof}
	b, err := json.Marshal(labels)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `["ground","mid","roof"]`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	var got []Label
	if err := json.Unmarshal([]byte(`["roof","ground"]`), &got); err != nil {
		t.Fatal(err)
	}
	diff(t, []Label{Roof, Ground}, got)

	var l Label
	if err := l.UnmarshalText([]byte("attic")); !errors.Is(err, ErrBadInput) {
		t.Errorf("got error %v, want %v", err, ErrBadInput)
	}
	if _, err := Label(9).MarshalText(); !errors.Is(err, ErrBadInput) {
		t.Errorf("got error %v, want %v", err, ErrBadInput)
	}
	if s := Label(9).String(); s != "Label(9)" {
		t.Errorf("got %q, want %q", s, "Label(9)")
	}
}
