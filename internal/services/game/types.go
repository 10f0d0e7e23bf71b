package game

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/quickburst/internal/common/clock"
	"github.com/KirkDiggler/quickburst/internal/common/metrics"
	"github.com/KirkDiggler/quickburst/internal/common/uuid"
	"github.com/KirkDiggler/quickburst/internal/models"
	sessionRepo "github.com/KirkDiggler/quickburst/internal/repositories/session"
	"github.com/KirkDiggler/quickburst/internal/shuffle"
)

// Config holds configuration for the game service
type Config struct {
	// Questions is the fixture set every session draws from
	Questions []*models.Question

	// Minimum roster size to start a game
	MinPlayers int

	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Shuffler      shuffle.Shuffler
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *logrus.Entry
	Metrics       *metrics.Metrics
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// SessionID is optional, one is generated when empty
	SessionID string
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	SessionID string
	State     *models.GameState
}

// GetSessionInput contains parameters for reading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the current state of a session
type GetSessionOutput struct {
	State *models.GameState
}

// EndSessionInput contains parameters for ending a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput contains the result of ending a session
type EndSessionOutput struct {
	Success bool

	// FinalScoreboard is the ranking at the moment the session ended
	FinalScoreboard []ScoreboardEntry
}

// SubscribeInput contains parameters for watching a session
type SubscribeInput struct {
	SessionID string

	// Buffer is the number of snapshots held for a slow reader
	Buffer int
}

// SubscribeOutput carries the snapshot stream
type SubscribeOutput struct {
	// Updates receives a snapshot after every change and closes on Cancel, ctx done or EndSession
	Updates <-chan models.GameState

	// Cancel stops the stream
	Cancel func()
}

// ListSessionsInput contains parameters for listing sessions
type ListSessionsInput struct {
}

// ListSessionsOutput contains the state of every live session
type ListSessionsOutput struct {
	Sessions []*models.GameState
}

// AddPlayerInput contains parameters for adding a player
type AddPlayerInput struct {
	SessionID  string
	PlayerName string
}

// AddPlayerOutput contains the result of adding a player
type AddPlayerOutput struct {
	// Added is false when the name was blank and nothing changed
	Added  bool
	Player *models.Player
	State  *models.GameState
}

// RemovePlayersInput contains parameters for removing players
type RemovePlayersInput struct {
	SessionID string

	// Indices are zero-based roster positions
	Indices []int
}

// RemovePlayersOutput contains the result of removing players
type RemovePlayersOutput struct {
	Removed int
	State   *models.GameState
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	SessionID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	State *models.GameState
}

// SelectAnswerInput contains parameters for answering the current question
type SelectAnswerInput struct {
	SessionID string

	// OptionIndex is the zero-based option chosen by the active player
	OptionIndex int
}

// SelectAnswerOutput contains the result of answering
type SelectAnswerOutput struct {
	PlayerID string
	Correct  bool

	// Revealed indicates every player has answered and the question was scored
	Revealed bool
	State    *models.GameState
}

// NextQuestionInput contains parameters for advancing the game
type NextQuestionInput struct {
	SessionID string
}

// NextQuestionOutput contains the result of advancing the game
type NextQuestionOutput struct {
	// Finished indicates the game moved to the scoreboard
	Finished   bool
	Scoreboard []ScoreboardEntry
	State      *models.GameState
}

// BackToLobbyInput contains parameters for returning to the lobby
type BackToLobbyInput struct {
	SessionID string
}

// BackToLobbyOutput contains the result of returning to the lobby
type BackToLobbyOutput struct {
	State *models.GameState
}

// GetScoreboardInput contains parameters for reading the scoreboard
type GetScoreboardInput struct {
	SessionID string
}

// GetScoreboardOutput contains the ranked roster
type GetScoreboardOutput struct {
	Entries []ScoreboardEntry

	// Winners are the names sharing the top score
	Winners []string
}

// ScoreboardEntry is one row of the scoreboard
type ScoreboardEntry struct {
	// Rank is 1-based, tied scores share a rank
	Rank       int
	PlayerID   string
	PlayerName string
	Score      int
}
