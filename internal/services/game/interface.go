package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/quickburst/internal/services/game Service

import "context"

// Service defines the interface for trivia game operations
type Service interface {
	// CreateSession opens a new trivia session in the lobby
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession returns the current state of a session
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// EndSession discards a session and its game state
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// Subscribe streams state snapshots until cancelled or ctx is done
	Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error)

	// ListSessions returns the state of every live session
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// AddPlayer adds a player to the roster
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayers removes players from the roster by position
	RemovePlayers(ctx context.Context, input *RemovePlayersInput) (*RemovePlayersOutput, error)

	// StartGame starts a new game with a reshuffled question set
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SelectAnswer records the active player's answer
	SelectAnswer(ctx context.Context, input *SelectAnswerInput) (*SelectAnswerOutput, error)

	// NextQuestion moves past a revealed question or finishes the game
	NextQuestion(ctx context.Context, input *NextQuestionInput) (*NextQuestionOutput, error)

	// BackToLobby returns the session to the lobby keeping the roster
	BackToLobby(ctx context.Context, input *BackToLobbyInput) (*BackToLobbyOutput, error)

	// GetScoreboard returns the roster ranked by score
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error)
}
