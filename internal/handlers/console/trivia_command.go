package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/quickburst/internal/models"
	"github.com/KirkDiggler/quickburst/internal/services/game"
	"github.com/KirkDiggler/quickburst/internal/services/messaging"
)

// TriviaCommandConfig holds the dependencies of the trivia command
type TriviaCommandConfig struct {
	// SessionID is the session every subcommand acts on
	SessionID string

	GameService      game.Service
	MessagingService messaging.Service
}

// TriviaCommand handles the trivia command
type TriviaCommand struct {
	BaseCommand
	sessionID        string
	gameService      game.Service
	messagingService messaging.Service
}

// NewTriviaCommand creates a new trivia command handler
func NewTriviaCommand(cfg *TriviaCommandConfig) (*TriviaCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.SessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &TriviaCommand{
		BaseCommand: BaseCommand{
			Name:        "trivia",
			Description: "Pass-the-remote trivia",
			Subcommands: []Subcommand{
				{Name: "add", Args: "<name>", Description: "Add a player"},
				{Name: "remove", Args: "<n>...", Description: "Remove players by roster number"},
				{Name: "start", Description: "Start a game"},
				{Name: "answer", Args: "<n>", Description: "Answer for the active player"},
				{Name: "next", Description: "Next question, or the scores after the last one"},
				{Name: "lobby", Description: "Back to the lobby"},
				{Name: "scores", Description: "Show the scoreboard"},
				{Name: "show", Description: "Show the current screen"},
				{Name: "sessions", Description: "List every live session"},
			},
		},
		sessionID:        cfg.SessionID,
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
	}, nil
}

// Handle processes a trivia subcommand
func (c *TriviaCommand) Handle(ctx context.Context, w io.Writer, args []string) error {
	if len(args) == 0 {
		return RespondWithMessage(w, c.GetUsage())
	}

	rest := args[1:]

	var err error
	switch strings.ToLower(args[0]) {
	case "add":
		err = c.handleAdd(ctx, w, rest)
	case "remove":
		err = c.handleRemove(ctx, w, rest)
	case "start":
		err = c.handleStart(ctx, w)
	case "answer":
		err = c.handleAnswer(ctx, w, rest)
	case "next":
		err = c.handleNext(ctx, w)
	case "lobby":
		err = c.handleLobby(ctx, w)
	case "scores":
		err = c.handleScores(ctx, w)
	case "show":
		err = c.handleShow(ctx, w)
	case "sessions":
		err = c.handleSessions(ctx, w)
	default:
		return RespondWithError(w, fmt.Sprintf("Unknown subcommand %q", args[0]))
	}
	if err != nil {
		return c.respondWithServiceError(ctx, w, err)
	}

	return nil
}

// handleAdd handles the add subcommand
func (c *TriviaCommand) handleAdd(ctx context.Context, w io.Writer, args []string) error {
	output, err := c.gameService.AddPlayer(ctx, &game.AddPlayerInput{
		SessionID:  c.sessionID,
		PlayerName: strings.Join(args, " "),
	})
	if err != nil {
		return err
	}

	playerName := ""
	if output.Player != nil {
		playerName = output.Player.Name
	}

	joinMsg, err := c.messagingService.GetJoinMessage(ctx, &messaging.GetJoinMessageInput{
		PlayerName: playerName,
		Added:      output.Added,
	})
	if err != nil {
		return err
	}

	if !output.Added {
		return RespondWithError(w, joinMsg.Message)
	}

	return c.renderState(ctx, w, joinMsg.Message, output.State)
}

// handleRemove handles the remove subcommand, numbers are as displayed
func (c *TriviaCommand) handleRemove(ctx context.Context, w io.Writer, args []string) error {
	if len(args) == 0 {
		return RespondWithError(w, "Usage: trivia remove <n>...")
	}

	indices := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return RespondWithError(w, fmt.Sprintf("%q is not a roster number", arg))
		}
		indices = append(indices, n-1)
	}

	output, err := c.gameService.RemovePlayers(ctx, &game.RemovePlayersInput{
		SessionID: c.sessionID,
		Indices:   indices,
	})
	if err != nil {
		return err
	}

	return c.renderState(ctx, w, fmt.Sprintf("Removed %d player(s).", output.Removed), output.State)
}

// handleStart handles the start subcommand
func (c *TriviaCommand) handleStart(ctx context.Context, w io.Writer) error {
	output, err := c.gameService.StartGame(ctx, &game.StartGameInput{
		SessionID: c.sessionID,
	})
	if err != nil {
		return err
	}

	return c.renderState(ctx, w, "", output.State)
}

// handleAnswer handles the answer subcommand, options are numbered from 1
func (c *TriviaCommand) handleAnswer(ctx context.Context, w io.Writer, args []string) error {
	if len(args) != 1 {
		return RespondWithError(w, "Usage: trivia answer <n>")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return RespondWithError(w, fmt.Sprintf("%q is not an option number", args[0]))
	}

	output, err := c.gameService.SelectAnswer(ctx, &game.SelectAnswerInput{
		SessionID:   c.sessionID,
		OptionIndex: n - 1,
	})
	if err != nil {
		return err
	}

	state := output.State
	if output.Revealed {
		return c.renderReveal(ctx, w, state)
	}

	nextName := ""
	if state.ActivePlayer != nil {
		nextName = state.ActivePlayer.Name
	}
	answerMsg, err := c.messagingService.GetAnswerMessage(ctx, &messaging.GetAnswerMessageInput{
		PlayerName:     playerName(state, output.PlayerID),
		NextPlayerName: nextName,
	})
	if err != nil {
		return err
	}

	return c.renderState(ctx, w, answerMsg.Message, state)
}

// handleNext handles the next subcommand
func (c *TriviaCommand) handleNext(ctx context.Context, w io.Writer) error {
	output, err := c.gameService.NextQuestion(ctx, &game.NextQuestionInput{
		SessionID: c.sessionID,
	})
	if err != nil {
		return err
	}

	if output.Finished {
		return c.renderScores(ctx, w, output.Scoreboard, output.State)
	}

	return c.renderState(ctx, w, "", output.State)
}

// handleLobby handles the lobby subcommand
func (c *TriviaCommand) handleLobby(ctx context.Context, w io.Writer) error {
	output, err := c.gameService.BackToLobby(ctx, &game.BackToLobbyInput{
		SessionID: c.sessionID,
	})
	if err != nil {
		return err
	}

	return c.renderState(ctx, w, "", output.State)
}

// handleScores handles the scores subcommand
func (c *TriviaCommand) handleScores(ctx context.Context, w io.Writer) error {
	output, err := c.gameService.GetScoreboard(ctx, &game.GetScoreboardInput{
		SessionID: c.sessionID,
	})
	if err != nil {
		return err
	}

	return renderScoreboard(w, "Scores", "", output.Entries, nil)
}

// handleShow handles the show subcommand
func (c *TriviaCommand) handleShow(ctx context.Context, w io.Writer) error {
	output, err := c.gameService.GetSession(ctx, &game.GetSessionInput{
		SessionID: c.sessionID,
	})
	if err != nil {
		return err
	}

	if output.State.Phase.IsScoreboard() {
		scores, err := c.gameService.GetScoreboard(ctx, &game.GetScoreboardInput{
			SessionID: c.sessionID,
		})
		if err != nil {
			return err
		}
		return c.renderScores(ctx, w, scores.Entries, output.State)
	}

	if output.State.Phase.IsQuestion() && output.State.ShowCorrectAnswer {
		return c.renderReveal(ctx, w, output.State)
	}

	return c.renderState(ctx, w, "", output.State)
}

// handleSessions handles the sessions subcommand
func (c *TriviaCommand) handleSessions(ctx context.Context, w io.Writer) error {
	output, err := c.gameService.ListSessions(ctx, &game.ListSessionsInput{})
	if err != nil {
		return err
	}

	fields := make([]Field, 0, len(output.Sessions))
	for _, state := range output.Sessions {
		name := state.SessionID
		if name == c.sessionID {
			name += " (this screen)"
		}
		fields = append(fields, Field{
			Name:  name,
			Value: fmt.Sprintf("%s, %d players", state.Phase, len(state.Players)),
		})
	}

	return RespondWithEmbed(w, "Sessions", fmt.Sprintf("%d live", len(output.Sessions)), fields)
}

// renderState renders the lobby or the current question with a phase banner
func (c *TriviaCommand) renderState(ctx context.Context, w io.Writer, note string, state *models.GameState) error {
	banner, err := c.messagingService.GetPhaseMessage(ctx, &messaging.GetPhaseMessageInput{
		Phase:          state.Phase,
		PlayerCount:    len(state.Players),
		QuestionNumber: state.CurrentQuestionIndex + 1,
		QuestionCount:  state.QuestionCount,
	})
	if err != nil {
		return err
	}

	description := joinLines(note, banner.Message)

	if state.Phase.IsQuestion() {
		return renderQuestion(w, banner.Title, description, state)
	}
	return renderRoster(w, banner.Title, description, state)
}

// renderReveal renders a scored question with a quip about who got it
func (c *TriviaCommand) renderReveal(ctx context.Context, w io.Writer, state *models.GameState) error {
	question := state.CurrentQuestion
	if question == nil {
		return RespondWithError(w, "No question in play.")
	}

	var correctPlayers []string
	for _, p := range state.Players {
		if answer, ok := state.AnswerFor(p.ID); ok && question.IsCorrect(answer) {
			correctPlayers = append(correctPlayers, p.Name)
		}
	}

	correctAnswer := ""
	if question.HasOption(question.CorrectIndex) {
		correctAnswer = question.Options[question.CorrectIndex]
	}

	reveal, err := c.messagingService.GetRevealMessage(ctx, &messaging.GetRevealMessageInput{
		CorrectAnswer:  correctAnswer,
		CorrectPlayers: correctPlayers,
		PlayerCount:    len(state.Players),
	})
	if err != nil {
		return err
	}

	return renderQuestion(w, reveal.Title, reveal.Message, state)
}

// renderScores renders the final scoreboard with a line for each player
func (c *TriviaCommand) renderScores(ctx context.Context, w io.Writer, entries []game.ScoreboardEntry, state *models.GameState) error {
	banner, err := c.messagingService.GetPhaseMessage(ctx, &messaging.GetPhaseMessageInput{
		Phase:       models.GamePhaseScoreboard,
		PlayerCount: len(state.Players),
	})
	if err != nil {
		return err
	}

	lines := make(map[string]string, len(entries))
	for _, e := range entries {
		line, err := c.messagingService.GetScoreboardMessage(ctx, &messaging.GetScoreboardMessageInput{
			PlayerName:   e.PlayerName,
			Score:        e.Score,
			Rank:         e.Rank,
			TotalPlayers: len(entries),
		})
		if err != nil {
			return err
		}
		lines[e.PlayerID] = line.Message
	}

	return renderScoreboard(w, banner.Title, banner.Message, entries, lines)
}

// respondWithServiceError turns a service error into friendly text
func (c *TriviaCommand) respondWithServiceError(ctx context.Context, w io.Writer, err error) error {
	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err: err,
	})
	if msgErr != nil {
		return err
	}

	return RespondWithError(w, msg.Message)
}

func playerName(state *models.GameState, playerID string) string {
	for _, p := range state.Players {
		if p.ID == playerID {
			return p.Name
		}
	}
	return "Someone"
}

func joinLines(lines ...string) string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
