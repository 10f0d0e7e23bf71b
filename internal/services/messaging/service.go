package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/quickburst/internal/models"
	"github.com/KirkDiggler/quickburst/internal/services/game"
	"github.com/KirkDiggler/quickburst/internal/services/reminder"
	"github.com/KirkDiggler/quickburst/internal/trivia"
)

// pool groups candidate messages by tone
type pool map[MessageTone][]string

// service implements the Service interface
type service struct {
	mu sync.Mutex

	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetPhaseMessage returns a banner for the session's current phase
func (s *service) GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var title string
	var messages pool

	switch input.Phase {
	case models.GamePhaseLobby:
		title = "QuickBurst"
		messages = pool{
			ToneNeutral: {
				fmt.Sprintf("%d players in the lobby. Add more or start the game.", input.PlayerCount),
			},
			ToneFunny: {
				fmt.Sprintf("%d brave souls so far. Who else thinks they know things?", input.PlayerCount),
				fmt.Sprintf("The couch holds %d contestants. Room for one more know-it-all?", input.PlayerCount),
				"Grab the remote, grab a snack, grab a friend.",
			},
			ToneEncouraging: {
				"Everyone's welcome, no trivia degree required!",
				fmt.Sprintf("%d players ready to learn something new.", input.PlayerCount),
			},
		}
	case models.GamePhaseQuestion:
		title = fmt.Sprintf("Question %d of %d", input.QuestionNumber, input.QuestionCount)
		messages = pool{
			ToneNeutral: {
				"Pick an answer when it's your turn.",
			},
			ToneFunny: {
				"No phones. We can see you.",
				"Take your time. Actually, don't.",
				"Trust your gut. Your gut has been wrong before, but still.",
			},
			ToneEncouraging: {
				"You've got this!",
				"Even a guess has a fighting chance.",
			},
		}
		if input.QuestionNumber == input.QuestionCount {
			messages[ToneFunny] = append(messages[ToneFunny], "Last one. Make it count!")
			messages[ToneCelebration] = []string{"Final question, the crowd goes wild!"}
		}
	case models.GamePhaseScoreboard:
		title = "Final Scores"
		messages = pool{
			ToneNeutral: {
				"The game is over. Here's how everyone did.",
			},
			ToneFunny: {
				"The results are in and some of you should be worried.",
				"Scores are final. No recounts, no appeals.",
			},
			ToneCelebration: {
				"What a game! Give it up for everyone!",
				"Confetti for all, extra confetti for the winner!",
			},
		}
	default:
		return nil, fmt.Errorf("unknown phase: %s", input.Phase)
	}

	message, tone := s.pick(messages, tone)

	return &GetPhaseMessageOutput{
		Title:   title,
		Message: message,
		Tone:    tone,
	}, nil
}

// GetJoinMessage returns a message for when a player is added to the roster
func (s *service) GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages pool
	if !input.Added {
		messages = pool{
			ToneNeutral: {"A player needs a name."},
			ToneFunny: {
				"Nameless players are spooky. Try again with a name.",
				"Mysterious, but we need something to put on the scoreboard.",
			},
		}
	} else {
		messages = pool{
			ToneNeutral: {
				fmt.Sprintf("%s joined the game.", input.PlayerName),
			},
			ToneFunny: {
				fmt.Sprintf("A new challenger appears: %s!", input.PlayerName),
				fmt.Sprintf("%s has entered the chat. Well, the couch.", input.PlayerName),
				fmt.Sprintf("Welcome %s! Stretch those brain muscles.", input.PlayerName),
			},
			ToneEncouraging: {
				fmt.Sprintf("Glad you're here, %s!", input.PlayerName),
			},
		}
	}

	message, tone := s.pick(messages, tone)

	return &GetJoinMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetAnswerMessage returns a message for a locked-in answer
func (s *service) GetAnswerMessage(ctx context.Context, input *GetAnswerMessageInput) (*GetAnswerMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	if input.NextPlayerName == "" {
		messages = []string{
			fmt.Sprintf("%s locks it in. That's everyone!", input.PlayerName),
			fmt.Sprintf("%s answers last. Drumroll please...", input.PlayerName),
		}
	} else {
		messages = []string{
			fmt.Sprintf("%s locks it in. %s, you're up!", input.PlayerName, input.NextPlayerName),
			fmt.Sprintf("Answer received from %s. Over to %s.", input.PlayerName, input.NextPlayerName),
			fmt.Sprintf("%s has spoken. No peeking, %s!", input.PlayerName, input.NextPlayerName),
		}
	}

	return &GetAnswerMessageOutput{
		Message: s.choose(messages),
	}, nil
}

// GetRevealMessage returns a quip for when the correct answer is revealed
func (s *service) GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	correct := len(input.CorrectPlayers)
	names := strings.Join(input.CorrectPlayers, ", ")

	var tone MessageTone
	var messages []string

	switch {
	case correct == 0:
		tone = ToneFunny
		messages = []string{
			fmt.Sprintf("Nobody got it. It was %s, obviously.", input.CorrectAnswer),
			fmt.Sprintf("A clean sweep of wrong answers! The answer was %s.", input.CorrectAnswer),
			fmt.Sprintf("%s. We'll pretend that one was a trick question.", input.CorrectAnswer),
		}
	case correct == input.PlayerCount:
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("Everyone got it! %s it is.", input.CorrectAnswer),
			fmt.Sprintf("Too easy? %s was the answer and you all knew it.", input.CorrectAnswer),
		}
	default:
		tone = ToneEncouraging
		messages = []string{
			fmt.Sprintf("%s was right. Point for %s!", input.CorrectAnswer, names),
			fmt.Sprintf("The answer was %s. Nice one, %s.", input.CorrectAnswer, names),
		}
	}

	return &GetRevealMessageOutput{
		Title:   "The answer is...",
		Message: s.choose(messages),
		Tone:    tone,
	}, nil
}

// GetScoreboardMessage returns a line for a player on the final scoreboard
func (s *service) GetScoreboardMessage(ctx context.Context, input *GetScoreboardMessageInput) (*GetScoreboardMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string

	switch {
	case input.Rank == 1:
		messages = []string{
			fmt.Sprintf("%s takes the crown with %d!", input.PlayerName, input.Score),
			fmt.Sprintf("Champion: %s, %d points of pure knowledge.", input.PlayerName, input.Score),
			fmt.Sprintf("%s wins with %d. Bow accordingly.", input.PlayerName, input.Score),
		}
	case input.Rank == input.TotalPlayers:
		messages = []string{
			fmt.Sprintf("%s with %d. There's always a rematch.", input.PlayerName, input.Score),
			fmt.Sprintf("%s: %d. Someone had to hold the scoreboard up.", input.PlayerName, input.Score),
		}
	default:
		messages = []string{
			fmt.Sprintf("#%d %s with %d. Solid showing.", input.Rank, input.PlayerName, input.Score),
			fmt.Sprintf("%s lands at #%d with %d.", input.PlayerName, input.Rank, input.Score),
		}
	}

	return &GetScoreboardMessageOutput{
		Message: s.choose(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	message, tone := s.pick(errorMessages(input.Err), tone)

	return &GetErrorMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// errorMessages returns the pool for a known error, or a generic one
func errorMessages(err error) pool {
	switch {
	case errors.Is(err, trivia.ErrInsufficientPlayers):
		return pool{
			ToneNeutral: {"You need at least two players to start."},
			ToneFunny: {
				"Trivia for one is just reading. Add another player!",
				"It takes two to trivia. Find a friend.",
			},
		}
	case errors.Is(err, trivia.ErrInvalidPhase):
		return pool{
			ToneNeutral: {"That can't be done right now."},
			ToneFunny: {
				"Wrong time for that move. Check the screen.",
				"Nice try, but the game isn't there yet.",
			},
		}
	case errors.Is(err, trivia.ErrAlreadyRevealed):
		return pool{
			ToneNeutral: {"The answer has already been revealed."},
			ToneFunny: {"Changing answers after the reveal? Bold strategy."},
		}
	case errors.Is(err, trivia.ErrNotRevealed):
		return pool{
			ToneNeutral: {"Everyone has to answer before moving on."},
			ToneFunny: {"Not so fast, somebody hasn't answered yet."},
		}
	case errors.Is(err, trivia.ErrNoActivePlayer):
		return pool{
			ToneNeutral: {"Nobody is up to answer."},
			ToneFunny: {"The hot seat is empty. Add a player or head back to the lobby."},
		}
	case errors.Is(err, trivia.ErrInvalidOptionIndex):
		return pool{
			ToneNeutral: {"That's not one of the options."},
			ToneFunny: {"Creative, but please pick one of the listed answers."},
		}
	case errors.Is(err, game.ErrSessionNotFound):
		return pool{
			ToneNeutral: {"That game could not be found."},
			ToneFunny: {"That game wandered off. Start a new one?"},
		}
	case errors.Is(err, game.ErrSessionExists):
		return pool{
			ToneNeutral: {"A game with that name is already running."},
		}
	case errors.Is(err, reminder.ErrEmptyTitle):
		return pool{
			ToneNeutral: {"A reminder needs a title."},
			ToneFunny: {"Remind you of... what exactly? Add a title."},
		}
	case errors.Is(err, reminder.ErrInvalidPriority):
		return pool{
			ToneNeutral: {"Priority must be low, medium or high."},
		}
	case errors.Is(err, reminder.ErrReminderNotFound):
		return pool{
			ToneNeutral: {"That reminder could not be found."},
			ToneFunny: {"That reminder forgot itself."},
		}
	case errors.Is(err, reminder.ErrInvalidFilter):
		return pool{
			ToneNeutral: {"Pick today, upcoming or all."},
		}
	default:
		return pool{
			ToneNeutral: {"Something went wrong. Please try again."},
			ToneFunny: {
				"Well, that didn't work. Give it another go.",
				"The gremlins are at it again. Try that one more time.",
			},
		}
	}
}

// pick selects a random message in the preferred tone, falling back to neutral
func (s *service) pick(messages pool, tone MessageTone) (string, MessageTone) {
	if candidates := messages[tone]; len(candidates) > 0 {
		return s.choose(candidates), tone
	}
	return s.choose(messages[ToneNeutral]), ToneNeutral
}

func (s *service) choose(messages []string) string {
	if len(messages) == 0 {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
