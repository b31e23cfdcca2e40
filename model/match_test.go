package model

import (
	"testing"
)

func TestParseMatchStatus(t *testing.T) {
	tests := []struct {
		in   string
		want MatchStatus
	}{
		{in: "upcoming", want: StatusUpcoming},
		{in: "LIVE", want: StatusLive},
		{in: "finished", want: StatusFinished},
		{in: " finished ", want: StatusFinished},
		{in: "", want: StatusUnknown},
		{in: "postponed", want: StatusUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := ParseMatchStatus(tc.in)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}
