package layout

import (
	"errors"
	"testing"
)

func TestParseNames(t *testing.T) {
	type tc struct {
		parse   func(string) (string, error)
		input   string
		want    string
		wantErr bool
	}

	policy := func(s string) (string, error) { p, err := ParsePolicy(s); return p.String(), err }
	align := func(s string) (string, error) { a, err := ParseAlign(s); return a.String(), err }
	axis := func(s string) (string, error) { a, err := ParseAxis(s); return a.String(), err }

	tests := map[string]tc{
		"policy fit":       {parse: policy, input: "Fit", want: "fit"},
		"policy fixed":     {parse: policy, input: " fixed ", want: "fixed"},
		"policy unknown":   {parse: policy, input: "grow", wantErr: true},
		"align center":     {parse: align, input: "center", want: "center"},
		"align edge alias": {parse: align, input: "right", want: "end"},
		"align unknown":    {parse: align, input: "justify", wantErr: true},
		"axis short":       {parse: axis, input: "x", want: "horizontal"},
		"axis vertical":    {parse: axis, input: "VERTICAL", want: "vertical"},
		"axis unknown":     {parse: axis, input: "z", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tt.parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownName) {
					t.Fatalf("err = %v, want ErrUnknownName", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleTextRoundTrip(t *testing.T) {
	var p Policy
	if err := p.UnmarshalText([]byte("fit")); err != nil || p != Fit {
		t.Fatalf("UnmarshalText = %v, %v", p, err)
	}
	b, _ := End.MarshalText()
	if string(b) != "end" {
		t.Errorf("MarshalText = %q", b)
	}
}
