package reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/quickburst/internal/common/clock"
	"github.com/KirkDiggler/quickburst/internal/common/metrics"
	"github.com/KirkDiggler/quickburst/internal/common/uuid"
	"github.com/KirkDiggler/quickburst/internal/models"
	reminderRepo "github.com/KirkDiggler/quickburst/internal/repositories/reminder"
)

// UntitledTitle is used by quick add
const UntitledTitle = "Untitled"

// service implements the Service interface
type service struct {
	reminderRepo  reminderRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *logrus.Entry
	metrics       *metrics.Metrics
	validate      *validator.Validate
}

// New creates a new reminder service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ReminderRepo == nil {
		return nil, ErrNilReminderRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}
	if cfg.Metrics == nil {
		return nil, ErrNilMetrics
	}

	return &service{
		reminderRepo:  cfg.ReminderRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger,
		metrics:       cfg.Metrics,
		validate:      validator.New(),
	}, nil
}

// CreateReminder validates and stores a new reminder
func (s *service) CreateReminder(ctx context.Context, input *CreateReminderInput) (output *CreateReminderOutput, err error) {
	defer func() { s.metrics.ObserveReminderOp("create", err) }()

	if input == nil {
		return nil, ErrInvalidInput
	}

	reminder := &models.Reminder{
		ID:        s.uuidGenerator.NewUUID(),
		Title:     strings.TrimSpace(input.Title),
		Details:   input.Details,
		Priority:  defaultPriority(input.Priority),
		CreatedAt: s.clock.Now(),
		RemindAt:  copyTime(input.RemindAt),
	}

	if err := s.save(ctx, reminder); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"reminder_id": reminder.ID,
		"priority":    reminder.Priority.String(),
		"dated":       reminder.HasDate(),
	}).Info("reminder created")

	return &CreateReminderOutput{
		Reminder: reminder,
	}, nil
}

// QuickAddReminder stores an untitled medium priority reminder without a date
func (s *service) QuickAddReminder(ctx context.Context, input *QuickAddReminderInput) (*QuickAddReminderOutput, error) {
	output, err := s.CreateReminder(ctx, &CreateReminderInput{
		Title:    UntitledTitle,
		Priority: models.ReminderPriorityMedium,
	})
	if err != nil {
		return nil, err
	}

	return &QuickAddReminderOutput{
		Reminder: output.Reminder,
	}, nil
}

// UpdateReminder replaces title, details, priority and date. CreatedAt is kept,
// and backfilled from the clock when it was never set.
func (s *service) UpdateReminder(ctx context.Context, input *UpdateReminderInput) (output *UpdateReminderOutput, err error) {
	defer func() { s.metrics.ObserveReminderOp("update", err) }()

	if input == nil {
		return nil, ErrInvalidInput
	}

	reminder, err := s.get(ctx, input.ReminderID)
	if err != nil {
		return nil, err
	}

	reminder.Title = strings.TrimSpace(input.Title)
	reminder.Details = input.Details
	reminder.Priority = defaultPriority(input.Priority)
	reminder.RemindAt = copyTime(input.RemindAt)
	if reminder.CreatedAt.IsZero() {
		reminder.CreatedAt = s.clock.Now()
	}

	if err := s.save(ctx, reminder); err != nil {
		return nil, err
	}

	s.logger.WithField("reminder_id", reminder.ID).Info("reminder updated")

	return &UpdateReminderOutput{
		Reminder: reminder,
	}, nil
}

// DeleteReminder removes a reminder
func (s *service) DeleteReminder(ctx context.Context, input *DeleteReminderInput) (output *DeleteReminderOutput, err error) {
	defer func() { s.metrics.ObserveReminderOp("delete", err) }()

	if input == nil {
		return nil, ErrInvalidInput
	}
	if input.ReminderID == "" {
		return nil, ErrMissingReminderID
	}

	err = s.reminderRepo.DeleteReminder(ctx, &reminderRepo.DeleteReminderInput{
		ReminderID: input.ReminderID,
	})
	if err != nil {
		if errors.Is(err, reminderRepo.ErrReminderNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to delete reminder: %w", err)
	}

	s.logger.WithField("reminder_id", input.ReminderID).Info("reminder deleted")

	return &DeleteReminderOutput{
		Success: true,
	}, nil
}

// GetReminder retrieves a reminder
func (s *service) GetReminder(ctx context.Context, input *GetReminderInput) (*GetReminderOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	reminder, err := s.get(ctx, input.ReminderID)
	if err != nil {
		return nil, err
	}

	return &GetReminderOutput{
		Reminder: reminder,
	}, nil
}

// SnoozeReminder moves the date (or now, when there is none) by the given
// duration and snaps the result to the five minute grid
func (s *service) SnoozeReminder(ctx context.Context, input *SnoozeReminderInput) (output *SnoozeReminderOutput, err error) {
	defer func() { s.metrics.ObserveReminderOp("snooze", err) }()

	if input == nil {
		return nil, ErrInvalidInput
	}

	reminder, err := s.get(ctx, input.ReminderID)
	if err != nil {
		return nil, err
	}

	var base time.Time
	if reminder.HasDate() {
		base = *reminder.RemindAt
	} else {
		base = s.clock.Now()
	}
	remindAt := RoundTo(base.Add(input.By), SnoozeStep)
	reminder.RemindAt = &remindAt

	if err := s.save(ctx, reminder); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"reminder_id": reminder.ID,
		"remind_at":   remindAt,
	}).Info("reminder snoozed")

	return &SnoozeReminderOutput{
		Reminder: reminder,
	}, nil
}

// ListReminders returns one of the derived views, sorted
func (s *service) ListReminders(ctx context.Context, input *ListRemindersInput) (output *ListRemindersOutput, err error) {
	defer func() { s.metrics.ObserveReminderOp("list", err) }()

	if input == nil {
		return nil, ErrInvalidInput
	}

	now := s.clock.Now()

	var reminders []*models.Reminder
	switch input.Filter {
	case models.ReminderFilterToday:
		reminders, err = s.listToday(ctx, now)
	case models.ReminderFilterUpcoming:
		reminders, err = s.listUpcoming(ctx, now)
	case models.ReminderFilterAll, "":
		reminders, err = s.listAll(ctx)
	default:
		return nil, ErrInvalidFilter
	}
	if err != nil {
		return nil, err
	}

	SortReminders(reminders)

	return &ListRemindersOutput{
		Reminders: reminders,
	}, nil
}

// listToday returns reminders due today plus undated ones created today
func (s *service) listToday(ctx context.Context, now time.Time) ([]*models.Reminder, error) {
	start := clock.StartOfDay(now)
	end := start.AddDate(0, 0, 1)

	due, err := s.reminderRepo.ListRemindersDue(ctx, &reminderRepo.ListRemindersDueInput{
		From:  start,
		Until: end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders due today: %w", err)
	}

	undated, err := s.reminderRepo.ListUndatedReminders(ctx, &reminderRepo.ListUndatedRemindersInput{
		CreatedFrom:  start,
		CreatedUntil: end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list undated reminders: %w", err)
	}

	return append(due.Reminders, undated.Reminders...), nil
}

// listUpcoming returns reminders due strictly after now
func (s *service) listUpcoming(ctx context.Context, now time.Time) ([]*models.Reminder, error) {
	due, err := s.reminderRepo.ListRemindersDue(ctx, &reminderRepo.ListRemindersDueInput{
		From:        now,
		ExcludeFrom: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming reminders: %w", err)
	}

	return due.Reminders, nil
}

func (s *service) listAll(ctx context.Context) ([]*models.Reminder, error) {
	all, err := s.reminderRepo.ListReminders(ctx, &reminderRepo.ListRemindersInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	return all.Reminders, nil
}

// get loads a reminder and maps repository misses to ErrReminderNotFound
func (s *service) get(ctx context.Context, reminderID string) (*models.Reminder, error) {
	if reminderID == "" {
		return nil, ErrMissingReminderID
	}

	reminder, err := s.reminderRepo.GetReminder(ctx, &reminderRepo.GetReminderInput{
		ReminderID: reminderID,
	})
	if err != nil {
		if errors.Is(err, reminderRepo.ErrReminderNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

// save validates then persists a reminder
func (s *service) save(ctx context.Context, reminder *models.Reminder) error {
	if err := s.validateReminder(reminder); err != nil {
		return err
	}

	err := s.reminderRepo.SaveReminder(ctx, &reminderRepo.SaveReminderInput{
		Reminder: reminder,
	})
	if err != nil {
		return fmt.Errorf("failed to save reminder: %w", err)
	}

	return nil
}

// validateReminder maps struct validation failures onto the service errors
func (s *service) validateReminder(reminder *models.Reminder) error {
	err := s.validate.Struct(reminder)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("failed to validate reminder: %w", err)
	}

	switch validationErrs[0].Field() {
	case "Title":
		return ErrEmptyTitle
	case "Priority":
		return ErrInvalidPriority
	default:
		return fmt.Errorf("invalid reminder: %w", err)
	}
}

func defaultPriority(p models.ReminderPriority) models.ReminderPriority {
	if p == 0 {
		return models.ReminderPriorityMedium
	}
	return p
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
