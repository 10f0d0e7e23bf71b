package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/quickburst/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/quickburst/internal/trivia"
)

// Repository defines the interface for trivia session storage
type Repository interface {
	// CreateSession stores a new session under its ID, ErrSessionExists if the ID is taken
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*trivia.Session, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// ListSessions retrieves all stored sessions
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)
}
