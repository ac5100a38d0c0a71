package stats

import (
	"testing"
	"time"
)

func day(offset int) time.Time {
	base := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestComputeStreak(t *testing.T) {
	now := day(0)

	cases := []struct {
		name  string
		times []time.Time
		want  int
	}{
		{"no activity", nil, 0},
		{"practiced today only", []time.Time{day(0)}, 1},
		{"three consecutive days ending today", []time.Time{day(-2), day(-1), day(0)}, 3},
		{"alive through yesterday", []time.Time{day(-2), day(-1)}, 2},
		{"broken two days ago", []time.Time{day(-3), day(-2)}, 0},
		{"gap resets the count", []time.Time{day(-5), day(-4), day(-1), day(0)}, 2},
		{"multiple sessions one day count once", []time.Time{day(0), day(0).Add(2 * time.Hour), day(-1)}, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeStreak(tc.times, now); got != tc.want {
				t.Errorf("ComputeStreak = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputeStreak_MidnightBoundary(t *testing.T) {
	// Practice at 23:59 counts for that day, not the next.
	lateNight := time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)

	if got := ComputeStreak([]time.Time{lateNight}, now); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}
