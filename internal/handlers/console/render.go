package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/KirkDiggler/quickburst/internal/models"
	"github.com/KirkDiggler/quickburst/internal/services/game"
)

const timeLayout = "Mon Jan 2 15:04"

// renderRoster renders the lobby with 1-based positions for remove
func renderRoster(w io.Writer, title, banner string, state *models.GameState) error {
	fields := make([]Field, 0, len(state.Players))
	for i, p := range state.Players {
		fields = append(fields, Field{
			Name:  fmt.Sprintf("%d", i+1),
			Value: p.Name,
		})
	}

	description := banner
	if len(state.Players) == 0 {
		description = strings.TrimSpace(banner + "\nNo players yet. Use: trivia add <name>")
	}

	return RespondWithEmbed(w, title, description, fields)
}

// renderQuestion renders the current question, marking the answer once revealed
func renderQuestion(w io.Writer, title, banner string, state *models.GameState) error {
	question := state.CurrentQuestion
	if question == nil {
		return RespondWithError(w, "No question in play.")
	}

	var b strings.Builder
	if banner != "" {
		fmt.Fprintln(&b, banner)
	}
	fmt.Fprintln(&b, question.Text)

	for i, option := range question.Options {
		marker := " "
		if state.ShowCorrectAnswer && question.IsCorrect(i) {
			marker = "*"
		}
		fmt.Fprintf(&b, " %s %d) %s", marker, i+1, option)

		if pickers := pickedBy(state, i); len(pickers) > 0 {
			fmt.Fprintf(&b, "  [%s]", strings.Join(pickers, ", "))
		}
		fmt.Fprintln(&b)
	}

	switch {
	case state.ShowCorrectAnswer && state.IsLastQuestion:
		fmt.Fprint(&b, "Last question done. Use: trivia next to see the scores")
	case state.ShowCorrectAnswer:
		fmt.Fprint(&b, "Use: trivia next")
	case state.ActivePlayer != nil:
		fmt.Fprintf(&b, "%s, you're up. Use: trivia answer <n>", state.ActivePlayer.Name)
	}

	return RespondWithEmbed(w, title, b.String(), nil)
}

// pickedBy lists who chose an option, only meaningful after the reveal
func pickedBy(state *models.GameState, option int) []string {
	if !state.ShowCorrectAnswer {
		return nil
	}

	var names []string
	for _, p := range state.Players {
		if answer, ok := state.AnswerFor(p.ID); ok && answer == option {
			names = append(names, p.Name)
		}
	}
	return names
}

// renderScoreboard renders ranked entries with an optional line per player
func renderScoreboard(w io.Writer, title, banner string, entries []game.ScoreboardEntry, lines map[string]string) error {
	fields := make([]Field, 0, len(entries))
	for _, e := range entries {
		value := fmt.Sprintf("%s (%d)", e.PlayerName, e.Score)
		if line := lines[e.PlayerID]; line != "" {
			value = fmt.Sprintf("%s  %s", value, line)
		}
		fields = append(fields, Field{
			Name:  fmt.Sprintf("#%d", e.Rank),
			Value: value,
		})
	}

	return RespondWithEmbed(w, title, banner, fields)
}

// renderReminders renders a list of reminders, one line each
func renderReminders(w io.Writer, title string, reminders []*models.Reminder) error {
	if len(reminders) == 0 {
		return RespondWithEmbed(w, title, "Nothing here. Enjoy the quiet.", nil)
	}

	var b strings.Builder
	for _, r := range reminders {
		fmt.Fprintf(&b, "[%-6s] %s  %s", r.Priority.String(), r.Title, r.ID)
		if r.HasDate() {
			fmt.Fprintf(&b, "  @ %s", r.RemindAt.Format(timeLayout))
		}
		fmt.Fprintln(&b)
	}

	return RespondWithEmbed(w, title, strings.TrimRight(b.String(), "\n"), nil)
}

// renderReminder renders a single reminder with all of its fields
func renderReminder(w io.Writer, title string, r *models.Reminder) error {
	fields := []Field{
		{Name: "ID", Value: r.ID},
		{Name: "Priority", Value: r.Priority.String()},
		{Name: "Created", Value: r.CreatedAt.Format(timeLayout)},
	}
	if r.HasDate() {
		fields = append(fields, Field{Name: "Remind at", Value: r.RemindAt.Format(timeLayout)})
	}
	if r.Details != "" {
		fields = append(fields, Field{Name: "Notes", Value: r.Details})
	}

	return RespondWithEmbed(w, fmt.Sprintf("%s: %s", title, r.Title), "", fields)
}

// formatWhen renders a due date relative to now for confirmations
func formatWhen(now time.Time, t *time.Time) string {
	if t == nil {
		return "no date"
	}
	if d := t.Sub(now); d > 0 && d < time.Hour {
		return fmt.Sprintf("in %d min", int(d.Round(time.Minute).Minutes()))
	}
	return t.Format(timeLayout)
}
