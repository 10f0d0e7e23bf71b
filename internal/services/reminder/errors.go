package reminder

// ReminderError is a custom error type for reminder service errors
type ReminderError string

// Error implements the error interface
func (e ReminderError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmptyTitle        ReminderError = "title cannot be empty"
	ErrInvalidPriority   ReminderError = "priority must be between 1 and 3"
	ErrInvalidFilter     ReminderError = "unknown reminder filter"
	ErrReminderNotFound  ReminderError = "reminder not found"
	ErrInvalidInput      ReminderError = "input cannot be nil"
	ErrMissingReminderID ReminderError = "reminder ID is required"
	ErrNilConfig         ReminderError = "config cannot be nil"
	ErrNilReminderRepo   ReminderError = "reminder repository cannot be nil"
	ErrNilClock          ReminderError = "clock cannot be nil"
	ErrNilUUIDGenerator  ReminderError = "UUID generator cannot be nil"
	ErrNilLogger         ReminderError = "logger cannot be nil"
	ErrNilMetrics        ReminderError = "metrics cannot be nil"
)
