package session

import "github.com/KirkDiggler/quickburst/internal/trivia"

type CreateSessionInput struct {
	Session *trivia.Session
}

type GetSessionInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}

type ListSessionsInput struct {
}

type ListSessionsOutput struct {
	Sessions []*trivia.Session
}
