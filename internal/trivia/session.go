package trivia

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/quickburst/internal/common/clock"
	"github.com/KirkDiggler/quickburst/internal/common/uuid"
	"github.com/KirkDiggler/quickburst/internal/models"
	"github.com/KirkDiggler/quickburst/internal/shuffle"
)

// DefaultMinPlayers is the smallest roster that can start a game
const DefaultMinPlayers = 2

// Config holds configuration for a trivia session
type Config struct {
	// ID identifies the session, one is generated when empty
	ID string

	// Questions is the fixture set drawn from at every game start
	Questions []*models.Question

	// MinPlayers is raised to DefaultMinPlayers when lower
	MinPlayers int

	// Service dependencies
	Shuffler      shuffle.Shuffler
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// AnswerResult describes what happened when a player answered
type AnswerResult struct {
	// PlayerID is the player who answered
	PlayerID string

	// OptionIndex is the option they chose
	OptionIndex int

	// Correct indicates the option matches the question's correct index
	Correct bool

	// Revealed indicates this was the last answer and the question was scored
	Revealed bool
}

// Session owns the full state of one trivia game: roster, turns, scoring and phase.
// All methods are safe for concurrent use and each one is a single atomic transition.
type Session struct {
	mu sync.Mutex

	id            string
	minPlayers    int
	fixtures      []*models.Question
	shuffler      shuffle.Shuffler
	clock         clock.Clock
	uuidGenerator uuid.UUID

	players              []*models.Player
	phase                models.GamePhase
	questions            []*models.Question
	currentQuestionIndex int
	currentAnswers       map[string]int
	activePlayerIndex    int
	showCorrectAnswer    bool
	updatedAt            time.Time

	subscribers      map[int]chan models.GameState
	nextSubscriberID int
	closed           bool
	done             chan struct{}
}

// New creates a session in the lobby with an empty roster
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, ErrNilConfig
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

	minPlayers := cfg.MinPlayers
	if minPlayers < DefaultMinPlayers {
		minPlayers = DefaultMinPlayers
	}

	id := cfg.ID
	if id == "" {
		id = cfg.UUIDGenerator.NewUUID()
	}

	fixtures := make([]*models.Question, len(cfg.Questions))
	copy(fixtures, cfg.Questions)

	questions := make([]*models.Question, len(fixtures))
	copy(questions, fixtures)

	return &Session{
		id:             id,
		minPlayers:     minPlayers,
		fixtures:       fixtures,
		shuffler:       cfg.Shuffler,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		players:        []*models.Player{},
		phase:          models.GamePhaseLobby,
		questions:      questions,
		currentAnswers: make(map[string]int),
		updatedAt:      cfg.Clock.Now(),
		subscribers:    make(map[int]chan models.GameState),
		done:           make(chan struct{}),
	}, nil
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// AddPlayer appends a player with a zero score. Names that are empty after
// trimming are ignored and reported with ok=false; that is not an error.
func (s *Session) AddPlayer(name string) (*models.Player, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player := &models.Player{
		ID:    s.uuidGenerator.NewUUID(),
		Name:  trimmed,
		Score: 0,
	}
	s.players = append(s.players, player)
	s.changedLocked()

	added := *player
	return &added, true
}

// RemovePlayers removes the players at the given roster positions and returns
// how many were removed. Out-of-range and repeated indices are ignored. The
// active player index is left alone, so mid-game it may point at someone else.
func (s *Session) RemovePlayers(indices ...int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	unique := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(s.players) {
			unique[idx] = true
		}
	}
	if len(unique) == 0 {
		return 0
	}

	remaining := make([]*models.Player, 0, len(s.players)-len(unique))
	for i, p := range s.players {
		if !unique[i] {
			remaining = append(remaining, p)
		}
	}
	s.players = remaining
	s.changedLocked()

	return len(unique)
}

// StartGame begins a new game from the lobby or the scoreboard with a freshly
// shuffled copy of the fixture set. Every score is reset to zero.
func (s *Session) StartGame() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == models.GamePhaseQuestion {
		return ErrInvalidPhase
	}
	if len(s.players) < s.minPlayers {
		return ErrInsufficientPlayers
	}

	questions := make([]*models.Question, len(s.fixtures))
	copy(questions, s.fixtures)
	s.shuffler.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	s.questions = questions
	s.currentQuestionIndex = 0
	for _, p := range s.players {
		p.Score = 0
	}
	s.currentAnswers = make(map[string]int)
	s.activePlayerIndex = 0
	s.showCorrectAnswer = false
	s.phase = models.GamePhaseQuestion
	s.changedLocked()

	return nil
}

// SelectAnswer records the active player's choice and passes the turn on.
// The last player's answer scores the question and reveals the correct option.
func (s *Session) SelectAnswer(optionIndex int) (*AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.GamePhaseQuestion {
		return nil, ErrInvalidPhase
	}
	if s.showCorrectAnswer {
		return nil, ErrAlreadyRevealed
	}

	player := s.activePlayerLocked()
	if player == nil {
		return nil, ErrNoActivePlayer
	}

	question := s.currentQuestionLocked()
	if !question.HasOption(optionIndex) {
		return nil, ErrInvalidOptionIndex
	}

	s.currentAnswers[player.ID] = optionIndex

	result := &AnswerResult{
		PlayerID:    player.ID,
		OptionIndex: optionIndex,
		Correct:     question.IsCorrect(optionIndex),
	}

	if s.activePlayerIndex < len(s.players)-1 {
		s.activePlayerIndex++
	} else {
		s.scoreCurrentQuestionLocked(question)
		result.Revealed = true
	}
	s.changedLocked()

	return result, nil
}

// scoreCurrentQuestionLocked awards one point per correct answer and reveals
func (s *Session) scoreCurrentQuestionLocked(question *models.Question) {
	for _, p := range s.players {
		chosen, ok := s.currentAnswers[p.ID]
		if ok && question.IsCorrect(chosen) {
			p.Score++
		}
	}
	s.showCorrectAnswer = true
}

// NextQuestionOrFinish moves past a revealed question, ending the game after the last one
func (s *Session) NextQuestionOrFinish() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.GamePhaseQuestion {
		return ErrInvalidPhase
	}
	if !s.showCorrectAnswer {
		return ErrNotRevealed
	}

	s.showCorrectAnswer = false
	s.currentAnswers = make(map[string]int)
	s.activePlayerIndex = 0

	if s.isLastQuestionLocked() {
		s.phase = models.GamePhaseScoreboard
	} else {
		s.currentQuestionIndex++
	}
	s.changedLocked()

	return nil
}

// BackToLobby returns to the lobby from any phase. The roster and scores stay.
func (s *Session) BackToLobby() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = models.GamePhaseLobby
	s.currentQuestionIndex = 0
	s.currentAnswers = make(map[string]int)
	s.activePlayerIndex = 0
	s.showCorrectAnswer = false
	s.changedLocked()
}

// Phase returns the current phase
func (s *Session) Phase() models.GamePhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Players returns a copy of the roster in insertion order
func (s *Session) Players() []models.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playersLocked()
}

// CurrentQuestion returns the question being played
func (s *Session) CurrentQuestion() (*models.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.currentQuestionLocked()
	if q == nil {
		return nil, false
	}
	return copyQuestion(q), true
}

// ActivePlayer returns the player expected to answer next
func (s *Session) ActivePlayer() (*models.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.activePlayerLocked()
	if p == nil {
		return nil, false
	}
	player := *p
	return &player, true
}

// CurrentQuestionIndex returns the zero-based position of the current question
func (s *Session) CurrentQuestionIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentQuestionIndex
}

// QuestionCount returns the length of the active question sequence
func (s *Session) QuestionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}

// ShowCorrectAnswer reports whether the correct answer is revealed
func (s *Session) ShowCorrectAnswer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showCorrectAnswer
}

// IsLastQuestion reports whether the current question ends the game
func (s *Session) IsLastQuestion() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLastQuestionLocked()
}

// SortedPlayersByScore returns the roster by descending score, ties in roster order
func (s *Session) SortedPlayersByScore() []models.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByScore(s.playersLocked())
}

// Snapshot returns a consistent copy of the whole session state
func (s *Session) Snapshot() *models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.snapshotLocked()
	return &state
}

func (s *Session) currentQuestionLocked() *models.Question {
	if s.currentQuestionIndex < 0 || s.currentQuestionIndex >= len(s.questions) {
		return nil
	}
	return s.questions[s.currentQuestionIndex]
}

func (s *Session) activePlayerLocked() *models.Player {
	if s.activePlayerIndex < 0 || s.activePlayerIndex >= len(s.players) {
		return nil
	}
	return s.players[s.activePlayerIndex]
}

func (s *Session) isLastQuestionLocked() bool {
	return s.currentQuestionIndex == len(s.questions)-1
}

func (s *Session) playersLocked() []models.Player {
	players := make([]models.Player, len(s.players))
	for i, p := range s.players {
		players[i] = *p
	}
	return players
}

func (s *Session) snapshotLocked() models.GameState {
	state := models.GameState{
		SessionID:            s.id,
		Phase:                s.phase,
		Players:              s.playersLocked(),
		CurrentQuestionIndex: s.currentQuestionIndex,
		QuestionCount:        len(s.questions),
		ActivePlayerIndex:    s.activePlayerIndex,
		ShowCorrectAnswer:    s.showCorrectAnswer,
		IsLastQuestion:       s.isLastQuestionLocked(),
		Answers:              make(map[string]int, len(s.currentAnswers)),
		UpdatedAt:            s.updatedAt,
	}

	if q := s.currentQuestionLocked(); q != nil {
		state.CurrentQuestion = copyQuestion(q)
	}
	if p := s.activePlayerLocked(); p != nil {
		player := *p
		state.ActivePlayer = &player
	}
	for id, answer := range s.currentAnswers {
		state.Answers[id] = answer
	}

	return state
}

// changedLocked stamps the update time and notifies subscribers
func (s *Session) changedLocked() {
	s.updatedAt = s.clock.Now()
	if len(s.subscribers) > 0 {
		s.publishLocked(s.snapshotLocked())
	}
}

func copyQuestion(q *models.Question) *models.Question {
	question := *q
	question.Options = append([]string(nil), q.Options...)
	return &question
}

func sortedByScore(players []models.Player) []models.Player {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score > players[j].Score
	})
	return players
}
