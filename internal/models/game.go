package models

import (
	"time"
)

// GamePhase represents the current stage of a trivia session
type GamePhase string

const (
	// GamePhaseLobby indicates players are being added before a game
	GamePhaseLobby GamePhase = "lobby"

	// GamePhaseQuestion indicates a question is being answered
	GamePhaseQuestion GamePhase = "question"

	// GamePhaseScoreboard indicates the game has finished and scores are shown
	GamePhaseScoreboard GamePhase = "scoreboard"
)

// IsLobby returns true if the session is in the lobby
func (p GamePhase) IsLobby() bool {
	return p == GamePhaseLobby
}

// IsQuestion returns true if a question is in progress
func (p GamePhase) IsQuestion() bool {
	return p == GamePhaseQuestion
}

// IsScoreboard returns true if the game has finished
func (p GamePhase) IsScoreboard() bool {
	return p == GamePhaseScoreboard
}

// GameState is a read-only snapshot of a trivia session
type GameState struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// Phase is the current stage of the session
	Phase GamePhase

	// Players is the roster in insertion order
	Players []Player

	// CurrentQuestion is the question being answered, nil when there is none
	CurrentQuestion *Question

	// CurrentQuestionIndex is the zero-based position in the active question sequence
	CurrentQuestionIndex int

	// QuestionCount is the length of the active question sequence
	QuestionCount int

	// ActivePlayer is the player expected to answer next, nil when there is none
	ActivePlayer *Player

	// ActivePlayerIndex is the roster position of the active player
	ActivePlayerIndex int

	// ShowCorrectAnswer indicates the correct answer is revealed
	ShowCorrectAnswer bool

	// IsLastQuestion indicates the current question is the last in the sequence
	IsLastQuestion bool

	// Answers maps player IDs to the option they chose for the current question
	Answers map[string]int

	// UpdatedAt is when the session last changed
	UpdatedAt time.Time
}

// AnswerFor returns the option chosen by a player for the current question
func (g *GameState) AnswerFor(playerID string) (int, bool) {
	if g == nil || g.Answers == nil {
		return 0, false
	}
	answer, ok := g.Answers[playerID]
	return answer, ok
}
