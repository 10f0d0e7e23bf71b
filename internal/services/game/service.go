package game

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/quickburst/internal/common/clock"
	"github.com/KirkDiggler/quickburst/internal/common/metrics"
	"github.com/KirkDiggler/quickburst/internal/common/uuid"
	"github.com/KirkDiggler/quickburst/internal/models"
	sessionRepo "github.com/KirkDiggler/quickburst/internal/repositories/session"
	"github.com/KirkDiggler/quickburst/internal/shuffle"
	"github.com/KirkDiggler/quickburst/internal/trivia"
)

// service implements the Service interface
type service struct {
	questions     []*models.Question
	minPlayers    int
	sessionRepo   sessionRepo.Repository
	shuffler      shuffle.Shuffler
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *logrus.Entry
	metrics       *metrics.Metrics
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if len(cfg.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}
	if cfg.Metrics == nil {
		return nil, ErrNilMetrics
	}

	return &service{
		questions:     cfg.Questions,
		minPlayers:    cfg.MinPlayers,
		sessionRepo:   cfg.SessionRepo,
		shuffler:      cfg.Shuffler,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger,
		metrics:       cfg.Metrics,
	}, nil
}

// AddPlayer adds a player to the roster. A blank name is not an error.
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	player, added := session.AddPlayer(input.PlayerName)
	if added {
		s.logger.WithFields(logrus.Fields{
			"session_id": session.ID(),
			"player_id":  player.ID,
			"player":     player.Name,
		}).Info("player added")
	}

	return &AddPlayerOutput{
		Added:  added,
		Player: player,
		State:  session.Snapshot(),
	}, nil
}

// RemovePlayers removes players from the roster by position
func (s *service) RemovePlayers(ctx context.Context, input *RemovePlayersInput) (*RemovePlayersOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	removed := session.RemovePlayers(input.Indices...)
	if removed > 0 {
		s.logger.WithFields(logrus.Fields{
			"session_id": session.ID(),
			"removed":    removed,
		}).Info("players removed")
	}

	return &RemovePlayersOutput{
		Removed: removed,
		State:   session.Snapshot(),
	}, nil
}

// StartGame starts a new game with a reshuffled question set
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := session.StartGame(); err != nil {
		return nil, s.rejected(session, "start_game", err)
	}

	state := session.Snapshot()
	s.metrics.GamesStarted.Inc()
	s.logger.WithFields(logrus.Fields{
		"session_id": session.ID(),
		"players":    len(state.Players),
		"questions":  state.QuestionCount,
	}).Info("game started")

	return &StartGameOutput{
		State: state,
	}, nil
}

// SelectAnswer records the active player's answer
func (s *service) SelectAnswer(ctx context.Context, input *SelectAnswerInput) (*SelectAnswerOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	result, err := session.SelectAnswer(input.OptionIndex)
	if err != nil {
		return nil, s.rejected(session, "select_answer", err)
	}

	if result.Correct {
		s.metrics.AnswersRecorded.WithLabelValues("correct").Inc()
	} else {
		s.metrics.AnswersRecorded.WithLabelValues("incorrect").Inc()
	}

	log := s.logger.WithFields(logrus.Fields{
		"session_id": session.ID(),
		"player_id":  result.PlayerID,
		"option":     result.OptionIndex,
	})
	log.Debug("answer recorded")

	if result.Revealed {
		s.metrics.QuestionsRevealed.Inc()
		log.Info("question scored")
	}

	return &SelectAnswerOutput{
		PlayerID: result.PlayerID,
		Correct:  result.Correct,
		Revealed: result.Revealed,
		State:    session.Snapshot(),
	}, nil
}

// NextQuestion moves past a revealed question or finishes the game
func (s *service) NextQuestion(ctx context.Context, input *NextQuestionInput) (*NextQuestionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := session.NextQuestionOrFinish(); err != nil {
		return nil, s.rejected(session, "next_question", err)
	}

	state := session.Snapshot()
	output := &NextQuestionOutput{
		State: state,
	}

	if state.Phase.IsScoreboard() {
		output.Finished = true
		output.Scoreboard, _ = buildScoreboard(session.SortedPlayersByScore())
		s.metrics.GamesFinished.Inc()
		s.logger.WithField("session_id", session.ID()).Info("game finished")
	}

	return output, nil
}

// BackToLobby returns the session to the lobby keeping the roster
func (s *service) BackToLobby(ctx context.Context, input *BackToLobbyInput) (*BackToLobbyOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	session.BackToLobby()
	s.logger.WithField("session_id", session.ID()).Info("back to lobby")

	return &BackToLobbyOutput{
		State: session.Snapshot(),
	}, nil
}

// GetScoreboard returns the roster ranked by score
func (s *service) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	entries, winners := buildScoreboard(session.SortedPlayersByScore())

	return &GetScoreboardOutput{
		Entries: entries,
		Winners: winners,
	}, nil
}

// getSession loads a session and maps repository misses to ErrSessionNotFound
func (s *service) getSession(ctx context.Context, sessionID string) (*trivia.Session, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return session, nil
}

// rejected logs and counts an intent the session refused, then hands the error back
func (s *service) rejected(session *trivia.Session, operation string, err error) error {
	reason := trivia.Reason(err)
	s.metrics.IntentsRejected.WithLabelValues(operation, reason).Inc()
	s.logger.WithFields(logrus.Fields{
		"session_id": session.ID(),
		"operation":  operation,
		"reason":     reason,
		"phase":      session.Phase(),
	}).Warn("intent rejected")

	return err
}

// buildScoreboard ranks players that are already sorted by descending score.
// Tied players share a rank and the next rank skips accordingly.
func buildScoreboard(players []models.Player) ([]ScoreboardEntry, []string) {
	entries := make([]ScoreboardEntry, 0, len(players))
	var winners []string

	for i, p := range players {
		rank := i + 1
		if i > 0 && p.Score == players[i-1].Score {
			rank = entries[i-1].Rank
		}

		entries = append(entries, ScoreboardEntry{
			Rank:       rank,
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Score:      p.Score,
		})

		if rank == 1 {
			winners = append(winners, p.Name)
		}
	}

	return entries, winners
}
