package session

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/KirkDiggler/quickburst/internal/trivia"
)

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExists is returned when creating a session whose ID is already stored
	ErrSessionExists = errors.New("session already exists")
)

// memoryRepository keeps sessions in process memory. Game state is never
// persisted, so a restart drops every session.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*trivia.Session
}

// NewMemory creates a new in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*trivia.Session),
	}
}

// CreateSession stores a new session. Live sessions are never replaced.
func (r *memoryRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.ID() == "" {
		return errors.New("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[input.Session.ID()]; ok {
		return ErrSessionExists
	}
	r.sessions[input.Session.ID()] = input.Session

	return nil
}

// GetSession retrieves a session by ID
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*trivia.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// DeleteSession removes a session
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[input.SessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, input.SessionID)

	return nil
}

// ListSessions retrieves all sessions ordered by ID
func (r *memoryRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*trivia.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ID() < sessions[j].ID()
	})

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}
