package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/quickburst/internal/models"
	sessionRepo "github.com/KirkDiggler/quickburst/internal/repositories/session"
	"github.com/KirkDiggler/quickburst/internal/trivia"
)

// CreateSession opens a new trivia session in the lobby
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := trivia.New(&trivia.Config{
		ID:            input.SessionID,
		Questions:     s.questions,
		MinPlayers:    s.minPlayers,
		Shuffler:      s.shuffler,
		Clock:         s.clock,
		UUIDGenerator: s.uuidGenerator,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	err = s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		Session: session,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionExists) {
			return nil, ErrSessionExists
		}
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.metrics.SessionsCreated.Inc()
	s.logger.WithFields(logrus.Fields{
		"session_id": session.ID(),
		"questions":  len(s.questions),
	}).Info("session created")

	return &CreateSessionOutput{
		SessionID: session.ID(),
		State:     session.Snapshot(),
	}, nil
}

// GetSession returns the current state of a session
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		State: session.Snapshot(),
	}, nil
}

// EndSession discards a session and its game state
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	scoreboard, _ := buildScoreboard(session.SortedPlayersByScore())

	err = s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: session.ID(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	session.Close()

	s.logger.WithField("session_id", session.ID()).Info("session ended")

	return &EndSessionOutput{
		Success:         true,
		FinalScoreboard: scoreboard,
	}, nil
}

// Subscribe streams state snapshots until cancelled, ctx is done or the session ends
func (s *service) Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	updates, unsubscribe := session.Subscribe(input.Buffer)

	stop := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			unsubscribe()
			close(stop)
		})
	}

	// ctx ending releases the subscription. Cancel and session close end the watcher too.
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-session.Done():
		case <-stop:
		}
	}()

	return &SubscribeOutput{
		Updates: updates,
		Cancel:  cancel,
	}, nil
}

// ListSessions returns a snapshot of every live session, ordered by ID
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	out, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	states := make([]*models.GameState, 0, len(out.Sessions))
	for _, session := range out.Sessions {
		states = append(states, session.Snapshot())
	}

	return &ListSessionsOutput{
		Sessions: states,
	}, nil
}
