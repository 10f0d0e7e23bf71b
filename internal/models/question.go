package models

// Question is a single multiple-choice trivia question
type Question struct {
	// ID is the unique identifier for the question
	ID string `json:"id" yaml:"id"`

	// Text is the prompt shown to players
	Text string `json:"text" yaml:"text" validate:"required"`

	// Options are the answer choices in display order
	Options []string `json:"options" yaml:"options" validate:"min=2,dive,required"`

	// CorrectIndex is the position of the correct answer in Options
	CorrectIndex int `json:"correct_index" yaml:"correct_index" validate:"gte=0"`
}

// IsCorrect reports whether the option at index is the correct answer
func (q *Question) IsCorrect(index int) bool {
	return q != nil && index == q.CorrectIndex
}

// HasOption reports whether index points at one of the question's options
func (q *Question) HasOption(index int) bool {
	return q != nil && index >= 0 && index < len(q.Options)
}
