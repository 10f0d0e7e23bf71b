package reminder

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/quickburst/internal/services/reminder Service

import "context"

// Service defines the interface for reminder operations
type Service interface {
	// CreateReminder validates and stores a new reminder
	CreateReminder(ctx context.Context, input *CreateReminderInput) (*CreateReminderOutput, error)

	// QuickAddReminder stores an untitled medium priority reminder without a date
	QuickAddReminder(ctx context.Context, input *QuickAddReminderInput) (*QuickAddReminderOutput, error)

	// UpdateReminder replaces the editable fields of a reminder
	UpdateReminder(ctx context.Context, input *UpdateReminderInput) (*UpdateReminderOutput, error)

	// DeleteReminder removes a reminder
	DeleteReminder(ctx context.Context, input *DeleteReminderInput) (*DeleteReminderOutput, error)

	// GetReminder retrieves a reminder
	GetReminder(ctx context.Context, input *GetReminderInput) (*GetReminderOutput, error)

	// SnoozeReminder pushes a reminder's date back
	SnoozeReminder(ctx context.Context, input *SnoozeReminderInput) (*SnoozeReminderOutput, error)

	// ListReminders returns a filtered, sorted view of the reminders
	ListReminders(ctx context.Context, input *ListRemindersInput) (*ListRemindersOutput, error)
}
