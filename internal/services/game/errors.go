package game

// GameError is a custom error type for game service errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound  GameError = "session not found"
	ErrSessionExists    GameError = "session already exists"
	ErrInvalidInput     GameError = "input cannot be nil"
	ErrMissingSessionID GameError = "session ID is required"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilSessionRepo   GameError = "session repository cannot be nil"
	ErrNoQuestions      GameError = "question set cannot be empty"
	ErrNilShuffler      GameError = "shuffler cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrNilLogger        GameError = "logger cannot be nil"
	ErrNilMetrics       GameError = "metrics cannot be nil"
)
