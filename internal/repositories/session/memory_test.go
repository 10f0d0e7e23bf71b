package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quickburst/internal/common/uuid"
	"github.com/KirkDiggler/quickburst/internal/models"
	"github.com/KirkDiggler/quickburst/internal/shuffle"
	"github.com/KirkDiggler/quickburst/internal/trivia"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo Repository
	ctx  context.Context
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.repo = NewMemory()
	s.ctx = context.Background()
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) newSession(id string) *trivia.Session {
	session, err := trivia.New(&trivia.Config{
		ID: id,
		Questions: []*models.Question{
			{ID: "q1", Text: "?", Options: []string{"a", "b"}, CorrectIndex: 0},
		},
		Shuffler:      shuffle.New(&shuffle.Config{Seed: 1}),
		Clock:         fixedClock{now: time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC)},
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)
	return session
}

func (s *MemoryRepositoryTestSuite) TestCreateAndGetSession() {
	session := s.newSession("session-1")

	err := s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: session})
	s.Require().NoError(err)

	got, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Same(session, got)
}

func (s *MemoryRepositoryTestSuite) TestCreateSession_KeepsExisting() {
	live := s.newSession("room")
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: live}))
	_, ok := live.AddPlayer("Ann")
	s.Require().True(ok)

	err := s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.newSession("room")})
	s.ErrorIs(err, ErrSessionExists)

	got, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "room"})
	s.Require().NoError(err)
	s.Same(live, got)
	s.Len(got.Players(), 1)
}

func (s *MemoryRepositoryTestSuite) TestGetSession_NotFound() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *MemoryRepositoryTestSuite) TestInvalidInput() {
	s.Error(s.repo.CreateSession(s.ctx, nil))
	s.Error(s.repo.CreateSession(s.ctx, &CreateSessionInput{}))

	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{})
	s.Error(err)
	s.NotErrorIs(err, ErrSessionNotFound)

	s.Error(s.repo.DeleteSession(s.ctx, nil))
}

func (s *MemoryRepositoryTestSuite) TestDeleteSession() {
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.newSession("session-1")}))

	s.Require().NoError(s.repo.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: "session-1"}))

	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "session-1"})
	s.ErrorIs(err, ErrSessionNotFound)

	err = s.repo.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: "session-1"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *MemoryRepositoryTestSuite) TestListSessions_SortedByID() {
	for _, id := range []string{"c", "a", "b"} {
		s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.newSession(id)}))
	}

	out, err := s.repo.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 3)
	s.Equal("a", out.Sessions[0].ID())
	s.Equal("b", out.Sessions[1].ID())
	s.Equal("c", out.Sessions[2].ID())
}
