package reminder

import (
	"sort"

	"github.com/KirkDiggler/quickburst/internal/models"
)

// SortReminders orders by priority (high first), then date (undated first, then
// soonest), then newest created. The ID breaks any remaining tie.
func SortReminders(reminders []*models.Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		a, b := reminders[i], reminders[j]

		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}

		switch {
		case a.HasDate() != b.HasDate():
			return !a.HasDate()
		case a.HasDate() && !a.RemindAt.Equal(*b.RemindAt):
			return a.RemindAt.Before(*b.RemindAt)
		}

		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}

		return a.ID < b.ID
	})
}
