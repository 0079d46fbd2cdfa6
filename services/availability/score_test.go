package availability

import (
	"math"
	"testing"
	"time"
)

func TestScoreSlot(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	wednesday := monday.AddDate(0, 0, 2)
	friday := monday.AddDate(0, 0, 4)
	saturday := monday.AddDate(0, 0, 5)

	cases := []struct {
		name  string
		start time.Time
		want  float64
	}{
		{"monday early morning penalized", at(monday, 9, 0), 0.9},
		{"monday mid morning unpenalized", at(monday, 10, 30), 1.0},
		{"monday pre-work hour", at(monday, 8, 0), 0.72},
		{"tuesday morning clamped at one", at(tuesday, 9, 0), 1.0},
		{"wednesday afternoon boosted", at(wednesday, 13, 0), 0.945},
		{"tuesday evening boosted", at(tuesday, 18, 0), 0.525},
		{"friday late afternoon penalized", at(friday, 16, 0), 0.595},
		{"friday mid afternoon penalized", at(friday, 15, 30), 0.765},
		{"friday before cutoff", at(friday, 15, 0), 0.9},
		{"saturday noon neutral", at(saturday, 12, 0), 0.5},
		{"monday lunch hour", at(monday, 12, 0), 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scoreSlot(tc.start)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("scoreSlot(%s) = %f, want %f", tc.start, got, tc.want)
			}
		})
	}
}

func TestScoreSlot_AlwaysInRange(t *testing.T) {
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			start := at(monday.AddDate(0, 0, d), h, 0)
			score := scoreSlot(start)
			if score < 0 || score > 1 {
				t.Fatalf("scoreSlot(%s) = %f out of [0,1]", start, score)
			}
		}
	}
}
