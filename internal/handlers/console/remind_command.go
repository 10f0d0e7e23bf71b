package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/quickburst/internal/common/clock"
	"github.com/KirkDiggler/quickburst/internal/models"
	"github.com/KirkDiggler/quickburst/internal/services/messaging"
	"github.com/KirkDiggler/quickburst/internal/services/reminder"
)

// Preset times used by @tonight and @tomorrow
const (
	tonightHour  = 20
	tomorrowHour = 9
)

// RemindCommandConfig holds the dependencies of the remind command
type RemindCommandConfig struct {
	ReminderService  reminder.Service
	MessagingService messaging.Service
	Clock            clock.Clock
}

// RemindCommand handles the remind command
type RemindCommand struct {
	BaseCommand
	reminderService  reminder.Service
	messagingService messaging.Service
	clock            clock.Clock
}

// NewRemindCommand creates a new remind command handler
func NewRemindCommand(cfg *RemindCommandConfig) (*RemindCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.ReminderService == nil {
		return nil, errors.New("reminder service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &RemindCommand{
		BaseCommand: BaseCommand{
			Name:        "remind",
			Description: "Prioritized reminders",
			Subcommands: []Subcommand{
				{Name: "add", Args: "<low|medium|high> <title> [@when]", Description: "Add a reminder, @when is now, tonight, tomorrow or +<duration>"},
				{Name: "quick", Description: "Add an untitled reminder"},
				{Name: "list", Args: "[today|upcoming|all]", Description: "List reminders"},
				{Name: "show", Args: "<id>", Description: "Show a reminder"},
				{Name: "snooze", Args: "<id> <duration>", Description: "Push a reminder back, e.g. 15m or 1h"},
				{Name: "delete", Args: "<id>", Description: "Delete a reminder"},
			},
		},
		reminderService:  cfg.ReminderService,
		messagingService: cfg.MessagingService,
		clock:            cfg.Clock,
	}, nil
}

// Handle processes a remind subcommand
func (c *RemindCommand) Handle(ctx context.Context, w io.Writer, args []string) error {
	if len(args) == 0 {
		return RespondWithMessage(w, c.GetUsage())
	}

	rest := args[1:]

	var err error
	switch strings.ToLower(args[0]) {
	case "add":
		err = c.handleAdd(ctx, w, rest)
	case "quick":
		err = c.handleQuick(ctx, w)
	case "list":
		err = c.handleList(ctx, w, rest)
	case "show":
		err = c.handleShow(ctx, w, rest)
	case "snooze":
		err = c.handleSnooze(ctx, w, rest)
	case "delete":
		err = c.handleDelete(ctx, w, rest)
	default:
		return RespondWithError(w, fmt.Sprintf("Unknown subcommand %q", args[0]))
	}
	if err != nil {
		return c.respondWithServiceError(ctx, w, err)
	}

	return nil
}

// handleAdd handles the add subcommand
func (c *RemindCommand) handleAdd(ctx context.Context, w io.Writer, args []string) error {
	if len(args) < 2 {
		return RespondWithError(w, "Usage: remind add <low|medium|high> <title> [@when]")
	}

	priority, err := parsePriority(args[0])
	if err != nil {
		return RespondWithError(w, err.Error())
	}

	titleArgs := args[1:]
	var remindAt *time.Time
	if last := titleArgs[len(titleArgs)-1]; strings.HasPrefix(last, "@") {
		when, err := parseWhen(c.clock.Now(), strings.TrimPrefix(last, "@"))
		if err != nil {
			return RespondWithError(w, err.Error())
		}
		remindAt = &when
		titleArgs = titleArgs[:len(titleArgs)-1]
	}

	output, err := c.reminderService.CreateReminder(ctx, &reminder.CreateReminderInput{
		Title:    strings.Join(titleArgs, " "),
		Priority: priority,
		RemindAt: remindAt,
	})
	if err != nil {
		return err
	}

	r := output.Reminder
	return RespondWithMessage(w, fmt.Sprintf("Added %s (%s, %s)", r.Title, r.Priority.String(), formatWhen(c.clock.Now(), r.RemindAt)))
}

// handleQuick handles the quick subcommand
func (c *RemindCommand) handleQuick(ctx context.Context, w io.Writer) error {
	output, err := c.reminderService.QuickAddReminder(ctx, &reminder.QuickAddReminderInput{})
	if err != nil {
		return err
	}

	return RespondWithMessage(w, fmt.Sprintf("Added %s %s", output.Reminder.Title, output.Reminder.ID))
}

// handleList handles the list subcommand
func (c *RemindCommand) handleList(ctx context.Context, w io.Writer, args []string) error {
	filter := models.ReminderFilterToday
	if len(args) > 0 {
		filter = models.ReminderFilter(strings.ToLower(args[0]))
	}

	output, err := c.reminderService.ListReminders(ctx, &reminder.ListRemindersInput{
		Filter: filter,
	})
	if err != nil {
		return err
	}

	return renderReminders(w, listTitle(filter), output.Reminders)
}

// handleShow handles the show subcommand
func (c *RemindCommand) handleShow(ctx context.Context, w io.Writer, args []string) error {
	if len(args) != 1 {
		return RespondWithError(w, "Usage: remind show <id>")
	}

	output, err := c.reminderService.GetReminder(ctx, &reminder.GetReminderInput{
		ReminderID: args[0],
	})
	if err != nil {
		return err
	}

	return renderReminder(w, "Reminder", output.Reminder)
}

// handleSnooze handles the snooze subcommand
func (c *RemindCommand) handleSnooze(ctx context.Context, w io.Writer, args []string) error {
	if len(args) != 2 {
		return RespondWithError(w, "Usage: remind snooze <id> <duration>")
	}

	by, err := time.ParseDuration(args[1])
	if err != nil {
		return RespondWithError(w, fmt.Sprintf("%q is not a duration, try 15m or 1h", args[1]))
	}

	output, err := c.reminderService.SnoozeReminder(ctx, &reminder.SnoozeReminderInput{
		ReminderID: args[0],
		By:         by,
	})
	if err != nil {
		return err
	}

	return RespondWithMessage(w, fmt.Sprintf("Snoozed %s until %s", output.Reminder.Title, formatWhen(c.clock.Now(), output.Reminder.RemindAt)))
}

// handleDelete handles the delete subcommand
func (c *RemindCommand) handleDelete(ctx context.Context, w io.Writer, args []string) error {
	if len(args) != 1 {
		return RespondWithError(w, "Usage: remind delete <id>")
	}

	_, err := c.reminderService.DeleteReminder(ctx, &reminder.DeleteReminderInput{
		ReminderID: args[0],
	})
	if err != nil {
		return err
	}

	return RespondWithMessage(w, "Deleted.")
}

// respondWithServiceError turns a service error into friendly text
func (c *RemindCommand) respondWithServiceError(ctx context.Context, w io.Writer, err error) error {
	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err:           err,
		PreferredTone: messaging.ToneNeutral,
	})
	if msgErr != nil {
		return err
	}

	return RespondWithError(w, msg.Message)
}

// parsePriority accepts a name or the number 1 to 3
func parsePriority(s string) (models.ReminderPriority, error) {
	switch strings.ToLower(s) {
	case "low", "l":
		return models.ReminderPriorityLow, nil
	case "medium", "med", "m":
		return models.ReminderPriorityMedium, nil
	case "high", "h":
		return models.ReminderPriorityHigh, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < int(models.ReminderPriorityLow) || n > int(models.ReminderPriorityHigh) {
		return 0, fmt.Errorf("%q is not a priority, use low, medium or high", s)
	}
	return models.ReminderPriority(n), nil
}

// parseWhen understands now, tonight, tomorrow and +<duration>
func parseWhen(now time.Time, s string) (time.Time, error) {
	switch strings.ToLower(s) {
	case "now":
		return reminder.RoundTo(now, reminder.SnoozeStep), nil
	case "tonight":
		return reminder.Tonight(now, tonightHour, 0), nil
	case "tomorrow":
		return reminder.Tomorrow(now, tomorrowHour, 0), nil
	}

	if strings.HasPrefix(s, "+") {
		d, err := time.ParseDuration(strings.TrimPrefix(s, "+"))
		if err == nil {
			return reminder.RoundTo(now.Add(d), reminder.SnoozeStep), nil
		}
	}

	return time.Time{}, fmt.Errorf("%q is not a time, use @now, @tonight, @tomorrow or @+1h", "@"+s)
}

func listTitle(filter models.ReminderFilter) string {
	switch filter {
	case models.ReminderFilterToday:
		return "Today"
	case models.ReminderFilterUpcoming:
		return "Upcoming"
	case models.ReminderFilterAll:
		return "All"
	default:
		return "Reminders"
	}
}
