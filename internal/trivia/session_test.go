package trivia

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/quickburst/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/quickburst/internal/common/uuid/mocks"
	"github.com/KirkDiggler/quickburst/internal/models"
	"github.com/KirkDiggler/quickburst/internal/shuffle"
	shuffleMocks "github.com/KirkDiggler/quickburst/internal/shuffle/mocks"
)

type SessionTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	mockShuffler *shuffleMocks.MockShuffler

	testTime  time.Time
	questions []*models.Question
	session   *Session
	nextID    int
}

func (s *SessionTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockShuffler = shuffleMocks.NewMockShuffler(s.mockCtrl)

	s.testTime = time.Date(2025, 11, 19, 20, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.nextID = 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.nextID++
		return fmt.Sprintf("player-%d", s.nextID)
	}).AnyTimes()

	s.questions = []*models.Question{
		{ID: "q1", Text: "First?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
		{ID: "q2", Text: "Second?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
		{ID: "q3", Text: "Third?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
	}

	session, err := New(&Config{
		ID:            "test-session",
		Questions:     s.questions,
		Shuffler:      s.mockShuffler,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.session = session
}

func (s *SessionTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

// keepOrder makes the next game start with the fixture order unchanged
func (s *SessionTestSuite) keepOrder() {
	s.mockShuffler.EXPECT().Shuffle(len(s.questions), gomock.Any())
}

func (s *SessionTestSuite) addPlayers(names ...string) {
	for _, name := range names {
		_, ok := s.session.AddPlayer(name)
		s.Require().True(ok)
	}
}

func (s *SessionTestSuite) startWith(names ...string) {
	s.addPlayers(names...)
	s.keepOrder()
	s.Require().NoError(s.session.StartGame())
}

func (s *SessionTestSuite) answer(option int) *AnswerResult {
	result, err := s.session.SelectAnswer(option)
	s.Require().NoError(err)
	return result
}

func (s *SessionTestSuite) TestNew_ValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Shuffler: s.mockShuffler, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNoQuestions)

	_, err = New(&Config{Questions: s.questions, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilShuffler)

	_, err = New(&Config{Questions: s.questions, Shuffler: s.mockShuffler, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{Questions: s.questions, Shuffler: s.mockShuffler, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *SessionTestSuite) TestNew_StartsInLobby() {
	s.Equal("test-session", s.session.ID())
	s.Equal(models.GamePhaseLobby, s.session.Phase())
	s.Empty(s.session.Players())
	s.Equal(0, s.session.CurrentQuestionIndex())
	s.Equal(3, s.session.QuestionCount())
	s.False(s.session.ShowCorrectAnswer())

	_, ok := s.session.ActivePlayer()
	s.False(ok)
}

func (s *SessionTestSuite) TestNew_GeneratesID() {
	session, err := New(&Config{
		Questions:     s.questions,
		Shuffler:      s.mockShuffler,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.Equal("player-1", session.ID())
}

func (s *SessionTestSuite) TestAddPlayer_TrimsAndPreservesOrder() {
	player, ok := s.session.AddPlayer("  Ann \n")
	s.Require().True(ok)
	s.Equal("Ann", player.Name)
	s.Equal(0, player.Score)
	s.Equal("player-1", player.ID)

	s.addPlayers("Bo", "Cy")

	players := s.session.Players()
	s.Require().Len(players, 3)
	s.Equal("Ann", players[0].Name)
	s.Equal("Bo", players[1].Name)
	s.Equal("Cy", players[2].Name)
}

func (s *SessionTestSuite) TestAddPlayer_IgnoresBlankNames() {
	names := []string{"Ann", "", "   ", "\t\n", "Bo", " Cy "}

	for _, name := range names {
		s.session.AddPlayer(name)
	}

	players := s.session.Players()
	s.Require().Len(players, 3)
	s.Equal([]string{"Ann", "Bo", "Cy"}, []string{players[0].Name, players[1].Name, players[2].Name})

	player, ok := s.session.AddPlayer("  ")
	s.False(ok)
	s.Nil(player)
}

func (s *SessionTestSuite) TestAddPlayer_UniqueIDs() {
	s.addPlayers("Ann", "Ann", "Ann")

	seen := map[string]bool{}
	for _, p := range s.session.Players() {
		s.False(seen[p.ID])
		seen[p.ID] = true
	}
}

func (s *SessionTestSuite) TestRemovePlayers() {
	s.addPlayers("Ann", "Bo", "Cy", "Di")

	removed := s.session.RemovePlayers(3, 1, 1, 9, -1)
	s.Equal(2, removed)

	players := s.session.Players()
	s.Require().Len(players, 2)
	s.Equal("Ann", players[0].Name)
	s.Equal("Cy", players[1].Name)
}

func (s *SessionTestSuite) TestRemovePlayers_OutOfRangeIsNoOp() {
	s.addPlayers("Ann")

	s.Equal(0, s.session.RemovePlayers(1, 5, -3))
	s.Equal(0, s.session.RemovePlayers())
	s.Len(s.session.Players(), 1)
}

func (s *SessionTestSuite) TestRemovePlayers_MidGameDoesNotPanic() {
	s.startWith("Ann", "Bo")
	s.answer(2)
	s.Equal(1, s.session.Snapshot().ActivePlayerIndex)

	s.Equal(1, s.session.RemovePlayers(1))

	// active index is untouched and now points past the roster
	s.Equal(1, s.session.Snapshot().ActivePlayerIndex)
	_, ok := s.session.ActivePlayer()
	s.False(ok)

	_, err := s.session.SelectAnswer(0)
	s.ErrorIs(err, ErrNoActivePlayer)
}

func (s *SessionTestSuite) TestStartGame_NeedsTwoPlayers() {
	s.ErrorIs(s.session.StartGame(), ErrInsufficientPlayers)
	s.Equal(models.GamePhaseLobby, s.session.Phase())

	s.addPlayers("Ann")
	s.ErrorIs(s.session.StartGame(), ErrInsufficientPlayers)
	s.Equal(models.GamePhaseLobby, s.session.Phase())
}

func (s *SessionTestSuite) TestStartGame_HonoursMinPlayers() {
	session, err := New(&Config{
		Questions:     s.questions,
		MinPlayers:    3,
		Shuffler:      s.mockShuffler,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	session.AddPlayer("Ann")
	session.AddPlayer("Bo")
	s.ErrorIs(session.StartGame(), ErrInsufficientPlayers)

	session.AddPlayer("Cy")
	s.mockShuffler.EXPECT().Shuffle(3, gomock.Any())
	s.NoError(session.StartGame())
}

func (s *SessionTestSuite) TestStartGame_ResetsState() {
	s.startWith("Ann", "Bo")

	state := s.session.Snapshot()
	s.Equal(models.GamePhaseQuestion, state.Phase)
	s.Equal(0, state.CurrentQuestionIndex)
	s.Equal(0, state.ActivePlayerIndex)
	s.False(state.ShowCorrectAnswer)
	s.Empty(state.Answers)
	s.Equal(3, state.QuestionCount)
	s.Require().NotNil(state.CurrentQuestion)
	s.Equal("q1", state.CurrentQuestion.ID)
	s.Require().NotNil(state.ActivePlayer)
	s.Equal("Ann", state.ActivePlayer.Name)
	for _, p := range state.Players {
		s.Equal(0, p.Score)
	}
}

func (s *SessionTestSuite) TestStartGame_RejectedMidGame() {
	s.startWith("Ann", "Bo")
	s.answer(0)

	s.ErrorIs(s.session.StartGame(), ErrInvalidPhase)
	s.Equal(1, s.session.Snapshot().ActivePlayerIndex)
}

func (s *SessionTestSuite) TestStartGame_UsesShuffledOrder() {
	s.addPlayers("Ann", "Bo")

	// reverse the fixture order
	s.mockShuffler.EXPECT().Shuffle(3, gomock.Any()).Do(func(n int, swap func(i, j int)) {
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	})
	s.Require().NoError(s.session.StartGame())

	q, ok := s.session.CurrentQuestion()
	s.Require().True(ok)
	s.Equal("q3", q.ID)

	// the fixture set itself is not reordered
	s.Equal("q1", s.questions[0].ID)
}

func (s *SessionTestSuite) TestStartGame_QuestionsArePermutationOfFixtures() {
	session, err := New(&Config{
		Questions:     s.questions,
		Shuffler:      shuffle.New(&shuffle.Config{Seed: 12345}),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	session.AddPlayer("Ann")
	session.AddPlayer("Bo")
	s.Require().NoError(session.StartGame())

	seen := map[string]int{}
	for i := 0; i < session.QuestionCount(); i++ {
		q, ok := session.CurrentQuestion()
		s.Require().True(ok)
		seen[q.ID]++

		_, err := session.SelectAnswer(0)
		s.Require().NoError(err)
		_, err = session.SelectAnswer(0)
		s.Require().NoError(err)
		s.Require().NoError(session.NextQuestionOrFinish())
	}

	s.Equal(map[string]int{"q1": 1, "q2": 1, "q3": 1}, seen)
	s.Equal(models.GamePhaseScoreboard, session.Phase())
}

func (s *SessionTestSuite) TestSelectAnswer_RotatesTurnsInRosterOrder() {
	s.startWith("Ann", "Bo", "Cy")

	var visited []string
	for i := 0; i < 3; i++ {
		active, ok := s.session.ActivePlayer()
		s.Require().True(ok)
		visited = append(visited, active.Name)
		s.False(s.session.ShowCorrectAnswer())
		s.answer(1)
	}

	s.Equal([]string{"Ann", "Bo", "Cy"}, visited)
	s.True(s.session.ShowCorrectAnswer())
	s.Equal(models.GamePhaseQuestion, s.session.Phase())
}

func (s *SessionTestSuite) TestSelectAnswer_ScoresOnlyCorrectPlayers() {
	s.startWith("Ann", "Bo", "Cy", "Di")

	// q1's correct index is 2
	first := s.answer(2)
	s.True(first.Correct)
	s.False(first.Revealed)
	s.Equal("player-1", first.PlayerID)

	// nobody is scored until the last answer
	for _, p := range s.session.Players() {
		s.Equal(0, p.Score)
	}

	s.False(s.answer(0).Correct)
	s.True(s.answer(2).Correct)
	last := s.answer(3)
	s.False(last.Correct)
	s.True(last.Revealed)

	scores := map[string]int{}
	for _, p := range s.session.Players() {
		scores[p.Name] = p.Score
	}
	s.Equal(map[string]int{"Ann": 1, "Bo": 0, "Cy": 1, "Di": 0}, scores)
}

func (s *SessionTestSuite) TestSelectAnswer_RecordsAnswers() {
	s.startWith("Ann", "Bo")

	s.answer(3)
	state := s.session.Snapshot()
	answer, ok := state.AnswerFor("player-1")
	s.True(ok)
	s.Equal(3, answer)
	_, ok = state.AnswerFor("player-2")
	s.False(ok)
}

func (s *SessionTestSuite) TestSelectAnswer_RejectsOutOfRangeOption() {
	s.startWith("Ann", "Bo")

	_, err := s.session.SelectAnswer(4)
	s.ErrorIs(err, ErrInvalidOptionIndex)
	_, err = s.session.SelectAnswer(-1)
	s.ErrorIs(err, ErrInvalidOptionIndex)

	state := s.session.Snapshot()
	s.Equal(0, state.ActivePlayerIndex)
	s.Empty(state.Answers)
}

func (s *SessionTestSuite) TestSelectAnswer_RejectedOutsideQuestionPhase() {
	s.addPlayers("Ann", "Bo")

	_, err := s.session.SelectAnswer(0)
	s.ErrorIs(err, ErrInvalidPhase)
}

func (s *SessionTestSuite) TestSelectAnswer_RejectedAfterReveal() {
	s.startWith("Ann", "Bo")
	s.answer(2)
	s.answer(2)

	_, err := s.session.SelectAnswer(2)
	s.ErrorIs(err, ErrAlreadyRevealed)

	for _, p := range s.session.Players() {
		s.Equal(1, p.Score)
	}
}

func (s *SessionTestSuite) TestNextQuestionOrFinish_RequiresReveal() {
	s.ErrorIs(s.session.NextQuestionOrFinish(), ErrInvalidPhase)

	s.startWith("Ann", "Bo")
	s.ErrorIs(s.session.NextQuestionOrFinish(), ErrNotRevealed)

	s.answer(0)
	s.ErrorIs(s.session.NextQuestionOrFinish(), ErrNotRevealed)
	s.Equal(0, s.session.CurrentQuestionIndex())
}

func (s *SessionTestSuite) TestNextQuestionOrFinish_DoesNotDoubleAdvance() {
	s.startWith("Ann", "Bo")
	s.answer(0)
	s.answer(0)

	s.Require().NoError(s.session.NextQuestionOrFinish())
	s.Equal(1, s.session.CurrentQuestionIndex())

	s.ErrorIs(s.session.NextQuestionOrFinish(), ErrNotRevealed)
	s.Equal(1, s.session.CurrentQuestionIndex())
}

func (s *SessionTestSuite) TestNextQuestionOrFinish_ClearsRoundState() {
	s.startWith("Ann", "Bo")
	s.answer(1)
	s.answer(1)

	s.Require().NoError(s.session.NextQuestionOrFinish())

	state := s.session.Snapshot()
	s.False(state.ShowCorrectAnswer)
	s.Empty(state.Answers)
	s.Equal(0, state.ActivePlayerIndex)
	s.Equal("q2", state.CurrentQuestion.ID)
}

func (s *SessionTestSuite) TestFullGame_TwoPlayersAllCorrect() {
	s.startWith("Ann", "Bo")
	s.Equal(models.GamePhaseQuestion, s.session.Phase())
	s.Equal(0, s.session.CurrentQuestionIndex())

	for i, q := range s.questions {
		s.Equal(i, s.session.CurrentQuestionIndex())
		s.Equal(i == len(s.questions)-1, s.session.IsLastQuestion())

		s.answer(q.CorrectIndex)
		s.answer(q.CorrectIndex)
		s.True(s.session.ShowCorrectAnswer())
		for _, p := range s.session.Players() {
			s.Equal(i+1, p.Score)
		}

		s.Require().NoError(s.session.NextQuestionOrFinish())
		s.False(s.session.ShowCorrectAnswer())
	}

	s.Equal(models.GamePhaseScoreboard, s.session.Phase())

	board := s.session.SortedPlayersByScore()
	s.Require().Len(board, 2)
	s.Equal("Ann", board[0].Name)
	s.Equal("Bo", board[1].Name)
	s.Equal(3, board[0].Score)
	s.Equal(3, board[1].Score)
}

func (s *SessionTestSuite) TestSortedPlayersByScore_StableTies() {
	s.startWith("Ann", "Bo", "Cy", "Di")

	// q1: Bo and Di correct
	s.answer(0)
	s.answer(2)
	s.answer(0)
	s.answer(2)
	s.Require().NoError(s.session.NextQuestionOrFinish())

	// q2: Di correct
	s.answer(0)
	s.answer(0)
	s.answer(0)
	s.answer(2)

	board := s.session.SortedPlayersByScore()
	names := make([]string, len(board))
	for i, p := range board {
		names[i] = p.Name
	}
	s.Equal([]string{"Di", "Bo", "Ann", "Cy"}, names)

	// roster order is untouched
	s.Equal("Ann", s.session.Players()[0].Name)
}

func (s *SessionTestSuite) TestBackToLobby_KeepsRosterAndScores() {
	s.startWith("Ann", "Bo")
	s.answer(2)
	s.answer(1)

	s.session.BackToLobby()

	state := s.session.Snapshot()
	s.Equal(models.GamePhaseLobby, state.Phase)
	s.Equal(0, state.CurrentQuestionIndex)
	s.Equal(0, state.ActivePlayerIndex)
	s.False(state.ShowCorrectAnswer)
	s.Empty(state.Answers)
	s.Require().Len(state.Players, 2)
	s.Equal(1, state.Players[0].Score)
	s.Equal(0, state.Players[1].Score)
}

func (s *SessionTestSuite) TestPlayAgain_FromScoreboard() {
	s.startWith("Ann", "Bo")
	for range s.questions {
		s.answer(2)
		s.answer(2)
		s.Require().NoError(s.session.NextQuestionOrFinish())
	}
	s.Require().Equal(models.GamePhaseScoreboard, s.session.Phase())

	s.keepOrder()
	s.Require().NoError(s.session.StartGame())

	state := s.session.Snapshot()
	s.Equal(models.GamePhaseQuestion, state.Phase)
	s.Equal(0, state.CurrentQuestionIndex)
	for _, p := range state.Players {
		s.Equal(0, p.Score)
	}
}

func (s *SessionTestSuite) TestSnapshot_IsDetached() {
	s.startWith("Ann", "Bo")

	state := s.session.Snapshot()
	state.Players[0].Score = 99
	state.CurrentQuestion.Options[0] = "mutated"
	state.Answers["x"] = 1

	fresh := s.session.Snapshot()
	s.Equal(0, fresh.Players[0].Score)
	s.Equal("a", fresh.CurrentQuestion.Options[0])
	s.Empty(fresh.Answers)
	s.Equal(s.testTime, fresh.UpdatedAt)
}

func (s *SessionTestSuite) TestSubscribe_ReceivesChanges() {
	updates, cancel := s.session.Subscribe(8)
	defer cancel()

	s.session.AddPlayer("Ann")
	s.session.AddPlayer("  ")
	s.session.AddPlayer("Bo")

	first := <-updates
	s.Len(first.Players, 1)
	second := <-updates
	s.Len(second.Players, 2)

	select {
	case extra := <-updates:
		s.Failf("unexpected update", "%+v", extra)
	default:
	}
}

func (s *SessionTestSuite) TestSubscribe_RejectedIntentsDoNotPublish() {
	updates, cancel := s.session.Subscribe(4)
	defer cancel()

	s.ErrorIs(s.session.StartGame(), ErrInsufficientPlayers)
	_, err := s.session.SelectAnswer(0)
	s.ErrorIs(err, ErrInvalidPhase)

	s.Len(updates, 0)
}

func (s *SessionTestSuite) TestSubscribe_SlowSubscriberDoesNotBlock() {
	updates, cancel := s.session.Subscribe(1)
	defer cancel()

	s.addPlayers("Ann", "Bo", "Cy")

	s.Len(updates, 1)
	s.Len(s.session.Players(), 3)
}

func (s *SessionTestSuite) TestSubscribe_CancelClosesChannel() {
	updates, cancel := s.session.Subscribe(1)
	cancel()
	cancel()

	_, open := <-updates
	s.False(open)

	s.session.AddPlayer("Ann")
	s.Len(s.session.Players(), 1)
}

func (s *SessionTestSuite) TestClose_ReleasesSubscribers() {
	first, cancelFirst := s.session.Subscribe(1)
	second, _ := s.session.Subscribe(1)

	s.session.Close()
	s.session.Close()

	_, open := <-first
	s.False(open)
	_, open = <-second
	s.False(open)

	select {
	case <-s.session.Done():
	default:
		s.Fail("done should be closed")
	}

	// cancelling after close must not double close
	cancelFirst()

	s.session.AddPlayer("Ann")
	s.Len(s.session.Players(), 1)
}

func (s *SessionTestSuite) TestSubscribe_AfterCloseIsClosed() {
	s.session.Close()

	updates, cancel := s.session.Subscribe(1)
	cancel()

	_, open := <-updates
	s.False(open)
}

func (s *SessionTestSuite) TestConcurrentIntentsKeepInvariants() {
	s.addPlayers("Ann", "Bo", "Cy")
	s.keepOrder()
	s.Require().NoError(s.session.StartGame())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.session.SelectAnswer(2)
		}()
	}
	wg.Wait()

	state := s.session.Snapshot()
	s.True(state.ShowCorrectAnswer)
	s.Len(state.Answers, 3)
	for _, p := range state.Players {
		s.Equal(1, p.Score)
	}
}

func TestReason(t *testing.T) {
	cases := map[error]string{
		ErrInsufficientPlayers:   "insufficient_players",
		ErrInvalidPhase:          "invalid_phase",
		ErrAlreadyRevealed:       "already_revealed",
		ErrNotRevealed:           "not_revealed",
		ErrNoActivePlayer:        "no_active_player",
		ErrInvalidOptionIndex:    "invalid_option_index",
		ErrNilConfig:             "other",
		fmt.Errorf("wrapped: %w", ErrInvalidPhase): "invalid_phase",
	}
	for err, want := range cases {
		if got := Reason(err); got != want {
			t.Errorf("Reason(%v) = %q, want %q", err, got, want)
		}
	}
	if got := Reason(nil); got != "none" {
		t.Errorf("Reason(nil) = %q", got)
	}
}
