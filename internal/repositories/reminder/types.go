package reminder

import (
	"time"

	"github.com/KirkDiggler/quickburst/internal/models"
)

type SaveReminderInput struct {
	Reminder *models.Reminder
}

type GetReminderInput struct {
	ReminderID string
}

type DeleteReminderInput struct {
	ReminderID string
}

type ListRemindersInput struct {
}

type ListRemindersOutput struct {
	Reminders []*models.Reminder
}

// ListRemindersDueInput selects reminders with From <= remindAt < Until.
// A zero Until leaves the range open ended.
type ListRemindersDueInput struct {
	From  time.Time
	Until time.Time

	// ExcludeFrom makes the lower bound strict
	ExcludeFrom bool
}

// ListUndatedRemindersInput selects undated reminders with CreatedFrom <= createdAt < CreatedUntil
type ListUndatedRemindersInput struct {
	CreatedFrom  time.Time
	CreatedUntil time.Time
}
