package reminder

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/quickburst/internal/repositories/reminder Repository

import (
	"context"

	"github.com/KirkDiggler/quickburst/internal/models"
)

// Repository defines the interface for reminder persistence
type Repository interface {
	// SaveReminder creates or replaces a reminder
	SaveReminder(ctx context.Context, input *SaveReminderInput) error

	// GetReminder retrieves a reminder by ID
	GetReminder(ctx context.Context, input *GetReminderInput) (*models.Reminder, error)

	// DeleteReminder removes a reminder
	DeleteReminder(ctx context.Context, input *DeleteReminderInput) error

	// ListReminders retrieves every reminder
	ListReminders(ctx context.Context, input *ListRemindersInput) (*ListRemindersOutput, error)

	// ListRemindersDue retrieves dated reminders whose remindAt falls in a range
	ListRemindersDue(ctx context.Context, input *ListRemindersDueInput) (*ListRemindersOutput, error)

	// ListUndatedReminders retrieves reminders without a date created in a range
	ListUndatedReminders(ctx context.Context, input *ListUndatedRemindersInput) (*ListRemindersOutput, error)
}
