package stats

import "time"

// ComputeStreak counts consecutive calendar days of practice ending at
// now's day or the day before. A streak is kept alive through today even
// if the learner has not practiced yet, so it never drops to zero at
// midnight only to come back after the first session of the day.
func ComputeStreak(times []time.Time, now time.Time) int {
	if len(times) == 0 {
		return 0
	}

	days := make(map[time.Time]bool, len(times))
	for _, t := range times {
		days[dayOf(t.In(now.Location()))] = true
	}

	cursor := dayOf(now)
	if !days[cursor] {
		// No practice yet today: the streak may still be alive from
		// yesterday.
		cursor = cursor.AddDate(0, 0, -1)
		if !days[cursor] {
			return 0
		}
	}

	streak := 0
	for days[cursor] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
