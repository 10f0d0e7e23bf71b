package models

import (
	"time"
)

// ReminderPriority ranks how urgent a reminder is
type ReminderPriority int

const (
	// ReminderPriorityLow is the least urgent priority
	ReminderPriorityLow ReminderPriority = 1

	// ReminderPriorityMedium is the default priority
	ReminderPriorityMedium ReminderPriority = 2

	// ReminderPriorityHigh is the most urgent priority
	ReminderPriorityHigh ReminderPriority = 3
)

// String returns the display name of the priority
func (p ReminderPriority) String() string {
	switch p {
	case ReminderPriorityHigh:
		return "High"
	case ReminderPriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// ReminderFilter selects one of the derived reminder views
type ReminderFilter string

const (
	// ReminderFilterToday shows reminders due today and undated reminders created today
	ReminderFilterToday ReminderFilter = "today"

	// ReminderFilterUpcoming shows reminders due after now
	ReminderFilterUpcoming ReminderFilter = "upcoming"

	// ReminderFilterAll shows every reminder
	ReminderFilterAll ReminderFilter = "all"
)

// Reminder is a single to-do item
type Reminder struct {
	// ID is the unique identifier for the reminder
	ID string `json:"id"`

	// Title is the trimmed, non-empty headline
	Title string `json:"title" validate:"required"`

	// Details are optional notes
	Details string `json:"details,omitempty"`

	// Priority ranks the reminder from 1 (low) to 3 (high)
	Priority ReminderPriority `json:"priority" validate:"min=1,max=3"`

	// CreatedAt is when the reminder was created
	CreatedAt time.Time `json:"created_at"`

	// RemindAt is when the reminder is due, nil when it has no date
	RemindAt *time.Time `json:"remind_at,omitempty"`
}

// HasDate returns true if the reminder has a due date
func (r *Reminder) HasDate() bool {
	return r != nil && r.RemindAt != nil
}
