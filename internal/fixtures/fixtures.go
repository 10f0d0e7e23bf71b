package fixtures

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/quickburst/internal/common/uuid"
	"github.com/KirkDiggler/quickburst/internal/models"
)

//go:embed questions.yaml
var defaultQuestions []byte

// ErrNoQuestions is returned when a fixture document holds no questions
var ErrNoQuestions = errors.New("fixture set contains no questions")

type document struct {
	Questions []*models.Question `yaml:"questions"`
}

// Loader parses and validates question fixtures
type Loader struct {
	validate      *validator.Validate
	uuidGenerator uuid.UUID
}

// NewLoader creates a loader. A nil generator falls back to random UUIDs.
func NewLoader(uuidGenerator uuid.UUID) *Loader {
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	v := validator.New()
	v.RegisterStructValidation(validateCorrectIndex, models.Question{})

	return &Loader{
		validate:      v,
		uuidGenerator: uuidGenerator,
	}
}

// validateCorrectIndex makes sure the correct answer points at an option
func validateCorrectIndex(sl validator.StructLevel) {
	q := sl.Current().Interface().(models.Question)
	if q.CorrectIndex >= len(q.Options) {
		sl.ReportError(q.CorrectIndex, "CorrectIndex", "CorrectIndex", "option_index", "")
	}
}

// Load parses a YAML document of questions
func (l *Loader) Load(r io.Reader) ([]*models.Question, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoQuestions
		}
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}

	if len(doc.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	seen := make(map[string]bool, len(doc.Questions))
	for i, q := range doc.Questions {
		if q == nil {
			return nil, fmt.Errorf("question %d is empty", i+1)
		}

		q.Text = strings.TrimSpace(q.Text)
		if err := l.validate.Struct(q); err != nil {
			return nil, fmt.Errorf("invalid question %d: %w", i+1, err)
		}

		if q.ID == "" {
			q.ID = l.uuidGenerator.NewUUID()
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
	}

	return doc.Questions, nil
}

// LoadFile parses a YAML question file from disk
func (l *Loader) LoadFile(path string) ([]*models.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open questions file: %w", err)
	}
	defer f.Close()

	return l.Load(f)
}

// Default returns the embedded question pool
func (l *Loader) Default() ([]*models.Question, error) {
	return l.Load(bytes.NewReader(defaultQuestions))
}
