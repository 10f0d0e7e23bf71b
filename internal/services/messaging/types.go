package messaging

import (
	"github.com/KirkDiggler/quickburst/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed makes message selection repeatable, zero seeds from the clock
	Seed int64
}

// GetPhaseMessageInput contains parameters for a phase banner
type GetPhaseMessageInput struct {
	Phase       models.GamePhase
	PlayerCount int

	// QuestionNumber is 1-based
	QuestionNumber int
	QuestionCount  int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetPhaseMessageOutput contains the banner
type GetPhaseMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetJoinMessageInput contains parameters for a join message
type GetJoinMessageInput struct {
	PlayerName string

	// Added is false when the name was blank and nobody joined
	Added bool

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetJoinMessageOutput contains the join message
type GetJoinMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetAnswerMessageInput contains parameters for a locked-in answer message
type GetAnswerMessageInput struct {
	PlayerName string

	// NextPlayerName is empty when the answer closed the question
	NextPlayerName string
}

// GetAnswerMessageOutput contains the answer message
type GetAnswerMessageOutput struct {
	Message string
}

// GetRevealMessageInput contains parameters for a reveal quip
type GetRevealMessageInput struct {
	CorrectAnswer string

	// CorrectPlayers are the names of players who got it right
	CorrectPlayers []string
	PlayerCount    int
}

// GetRevealMessageOutput contains the reveal quip
type GetRevealMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetScoreboardMessageInput contains parameters for a scoreboard line
type GetScoreboardMessageInput struct {
	PlayerName string
	Score      int

	// Rank is 1-based, ties share a rank
	Rank         int
	TotalPlayers int
}

// GetScoreboardMessageOutput contains the scoreboard line
type GetScoreboardMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by a service
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}
