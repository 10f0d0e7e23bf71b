package trivia

import "errors"

// GameError is a custom error type for rejected session intents
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInsufficientPlayers GameError = "not enough players to start a game"
	ErrInvalidPhase        GameError = "operation not allowed in the current phase"
	ErrAlreadyRevealed     GameError = "the correct answer has already been revealed"
	ErrNotRevealed         GameError = "the current question has not been scored yet"
	ErrNoActivePlayer      GameError = "no player is expected to answer"
	ErrInvalidOptionIndex  GameError = "option index is outside the question's options"
	ErrNoQuestions         GameError = "question set cannot be empty"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilShuffler         GameError = "shuffler cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
	ErrNilUUIDGenerator    GameError = "UUID generator cannot be nil"
)

// Reason returns a short label for metrics and logs
func Reason(err error) string {
	if err == nil {
		return "none"
	}

	var gameErr GameError
	if !errors.As(err, &gameErr) {
		return "other"
	}

	switch gameErr {
	case ErrInsufficientPlayers:
		return "insufficient_players"
	case ErrInvalidPhase:
		return "invalid_phase"
	case ErrAlreadyRevealed:
		return "already_revealed"
	case ErrNotRevealed:
		return "not_revealed"
	case ErrNoActivePlayer:
		return "no_active_player"
	case ErrInvalidOptionIndex:
		return "invalid_option_index"
	default:
		return "other"
	}
}
