package rpgn

import (
	"reflect"
	"testing"
)

func TestParseTimeControl(t *testing.T) {
	tests := []struct {
		in   string
		want []TimeControlField
	}{
		{"?", []TimeControlField{{Kind: TimeControlUnknown}}},
		{"-", []TimeControlField{{Kind: TimeControlNone}}},
		{"600+0", []TimeControlField{{Kind: TimeControlIncrement, Seconds: 600}}},
		{"600+2", []TimeControlField{{Kind: TimeControlIncrement, Seconds: 600, Increment: 2}}},
		{"300", []TimeControlField{{Kind: TimeControlSuddenDeath, Seconds: 300}}},
		{"*180", []TimeControlField{{Kind: TimeControlHourglass, Seconds: 180}}},
		{"40/9000", []TimeControlField{{Kind: TimeControlMovesPerSeconds, Moves: 40, Seconds: 9000}}},
		{"40/9000:1800", []TimeControlField{
			{Kind: TimeControlMovesPerSeconds, Moves: 40, Seconds: 9000},
			{Kind: TimeControlSuddenDeath, Seconds: 1800},
		}},
		{"40/9000:40/9000:900+30", []TimeControlField{
			{Kind: TimeControlMovesPerSeconds, Moves: 40, Seconds: 9000},
			{Kind: TimeControlMovesPerSeconds, Moves: 40, Seconds: 9000},
			{Kind: TimeControlIncrement, Seconds: 900, Increment: 30},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeControl(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got.Fields, tt.want) {
				t.Fatalf("ParseTimeControl(%q) = %+v, want %+v", tt.in, got.Fields, tt.want)
			}
			if got.String() != tt.in {
				t.Fatalf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParseTimeControlErrors(t *testing.T) {
	for _, in := range []string{"", "banana", "*x", "40/", "/9000", "600+", "600+2:"} {
		if _, err := ParseTimeControl(in); err == nil {
			t.Errorf("expected an error for %q", in)
		}
	}
}
