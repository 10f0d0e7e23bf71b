package reminder

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/quickburst/internal/common/clock"
	"github.com/KirkDiggler/quickburst/internal/common/metrics"
	"github.com/KirkDiggler/quickburst/internal/common/uuid"
	"github.com/KirkDiggler/quickburst/internal/models"
	reminderRepo "github.com/KirkDiggler/quickburst/internal/repositories/reminder"
)

// Config holds configuration for the reminder service
type Config struct {
	// Repository dependencies
	ReminderRepo reminderRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *logrus.Entry
	Metrics       *metrics.Metrics
}

// CreateReminderInput contains parameters for creating a reminder
type CreateReminderInput struct {
	Title   string
	Details string

	// Priority defaults to medium when zero
	Priority models.ReminderPriority

	// RemindAt is optional
	RemindAt *time.Time
}

// CreateReminderOutput contains the stored reminder
type CreateReminderOutput struct {
	Reminder *models.Reminder
}

// QuickAddReminderInput contains parameters for a quick add
type QuickAddReminderInput struct {
}

// QuickAddReminderOutput contains the stored reminder
type QuickAddReminderOutput struct {
	Reminder *models.Reminder
}

// UpdateReminderInput contains the new values for a reminder
type UpdateReminderInput struct {
	ReminderID string
	Title      string
	Details    string
	Priority   models.ReminderPriority

	// RemindAt nil clears the date
	RemindAt *time.Time
}

// UpdateReminderOutput contains the updated reminder
type UpdateReminderOutput struct {
	Reminder *models.Reminder
}

// DeleteReminderInput contains parameters for deleting a reminder
type DeleteReminderInput struct {
	ReminderID string
}

// DeleteReminderOutput contains the result of deleting a reminder
type DeleteReminderOutput struct {
	Success bool
}

// GetReminderInput contains parameters for reading a reminder
type GetReminderInput struct {
	ReminderID string
}

// GetReminderOutput contains the reminder
type GetReminderOutput struct {
	Reminder *models.Reminder
}

// SnoozeReminderInput contains parameters for snoozing a reminder
type SnoozeReminderInput struct {
	ReminderID string

	// By is added to the current date, or to now when the reminder has none
	By time.Duration
}

// SnoozeReminderOutput contains the snoozed reminder
type SnoozeReminderOutput struct {
	Reminder *models.Reminder
}

// ListRemindersInput contains parameters for listing reminders
type ListRemindersInput struct {
	// Filter defaults to all when empty
	Filter models.ReminderFilter
}

// ListRemindersOutput contains the sorted reminders
type ListRemindersOutput struct {
	Reminders []*models.Reminder
}
