package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/quickburst/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetPhaseMessage returns a banner for the session's current phase
	GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error)

	// GetJoinMessage returns a message for when a player is added to the roster
	GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error)

	// GetAnswerMessage returns a message for a locked-in answer
	GetAnswerMessage(ctx context.Context, input *GetAnswerMessageInput) (*GetAnswerMessageOutput, error)

	// GetRevealMessage returns a quip for when the correct answer is revealed
	GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error)

	// GetScoreboardMessage returns a line for a player on the final scoreboard
	GetScoreboardMessage(ctx context.Context, input *GetScoreboardMessageInput) (*GetScoreboardMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
