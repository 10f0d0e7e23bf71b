package models

// Player represents a participant in a trivia game
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// Name is the trimmed display name of the player
	Name string `json:"name"`

	// Score is the number of questions the player answered correctly in the current game
	Score int `json:"score"`
}
