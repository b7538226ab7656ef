package rpgn

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseRound(t *testing.T) {
	tests := []struct {
		in   string
		want Round
	}{
		{"?", Round{Unknown: true}},
		{"1", Round{Parts: []uint64{1}}},
		{"7", Round{Parts: []uint64{7}}},
		{"3.1.2", Round{Parts: []uint64{3, 1, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRound(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseRound(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Fatalf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParseRoundErrors(t *testing.T) {
	if _, err := ParseRound(".3.1"); !errors.Is(err, ErrRoundLeadingDot) {
		t.Fatalf("expected ErrRoundLeadingDot, got %v", err)
	}
	if _, err := ParseRound("3.1."); !errors.Is(err, ErrRoundTrailingDot) {
		t.Fatalf("expected ErrRoundTrailingDot, got %v", err)
	}
	for _, in := range []string{"", "x", "3.x.1", "-1"} {
		if _, err := ParseRound(in); err == nil {
			t.Errorf("expected an error for %q", in)
		}
	}
}
