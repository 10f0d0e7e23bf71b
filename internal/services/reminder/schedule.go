package reminder

import (
	"time"
)

// SnoozeStep is the grid reminder dates snap to
const SnoozeStep = 5 * time.Minute

// RoundTo rounds t to the nearest multiple of step
func RoundTo(t time.Time, step time.Duration) time.Time {
	if step <= 0 {
		return t
	}
	return t.Round(step)
}

// Tonight returns today at hour:minute, or the same time tomorrow when that has passed
func Tonight(now time.Time, hour, minute int) time.Time {
	y, m, d := now.Date()
	t := time.Date(y, m, d, hour, minute, 0, 0, now.Location())
	if t.Before(now) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// Tomorrow returns tomorrow at hour:minute
func Tomorrow(now time.Time, hour, minute int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, hour, minute, 0, 0, now.Location())
}
