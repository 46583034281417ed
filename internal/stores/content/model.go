package content

import (
	"fmt"
	"strings"
)

// Event is a club event. Events are addressed by their title (a natural
// key, unique by convention but not enforced) rather than by their
// generated id; see StoreInterface.
type Event struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null;index" json:"title"`
	Date        string `gorm:"size:64" json:"date"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `gorm:"size:255" json:"location"`
}

// Fact is a cybersecurity fact
type Fact struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`
}

// Joke is a cybersecurity joke
type Joke struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`
}

// Quote is a cybersecurity quote with an optional author
type Quote struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`
	Author  string `gorm:"size:255" json:"author"`
}

// QuizItem is a multiple-choice quiz question. Options are stored as a
// JSON column; CorrectOption is a zero-based index into Options.
type QuizItem struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Question      string   `gorm:"type:text;not null" json:"question"`
	Options       []string `gorm:"serializer:json" json:"options"`
	CorrectOption int      `json:"correct_option"`
}

// Validate checks the authoring invariants on a quiz item before it is stored
func (q *QuizItem) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("%w: question cannot be empty", ErrValidation)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: a quiz needs at least 2 options, got %d", ErrValidation, len(q.Options))
	}
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		return fmt.Errorf("%w: correct_option %d is out of range for %d options", ErrValidation, q.CorrectOption, len(q.Options))
	}
	return nil
}

// Validate checks required event fields
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	return nil
}

// applyFields merges a partial-field map onto the event. Unspecified
// fields keep their prior value; unknown keys are ignored.
func (e *Event) applyFields(fields map[string]any) error {
	for key, value := range fields {
		switch key {
		case "title":
			s, err := stringField(key, value)
			if err != nil {
				return err
			}
			e.Title = s
		case "date":
			s, err := stringField(key, value)
			if err != nil {
				return err
			}
			e.Date = s
		case "description":
			s, err := stringField(key, value)
			if err != nil {
				return err
			}
			e.Description = s
		case "location":
			s, err := stringField(key, value)
			if err != nil {
				return err
			}
			e.Location = s
		}
	}
	return e.Validate()
}

func (f *Fact) applyFields(fields map[string]any) error {
	if value, ok := fields["content"]; ok {
		s, err := stringField("content", value)
		if err != nil {
			return err
		}
		f.Content = s
	}
	return nil
}

func (j *Joke) applyFields(fields map[string]any) error {
	if value, ok := fields["content"]; ok {
		s, err := stringField("content", value)
		if err != nil {
			return err
		}
		j.Content = s
	}
	return nil
}

func (q *Quote) applyFields(fields map[string]any) error {
	if value, ok := fields["content"]; ok {
		s, err := stringField("content", value)
		if err != nil {
			return err
		}
		q.Content = s
	}
	if value, ok := fields["author"]; ok {
		s, err := stringField("author", value)
		if err != nil {
			return err
		}
		q.Author = s
	}
	return nil
}

func (q *QuizItem) applyFields(fields map[string]any) error {
	if value, ok := fields["question"]; ok {
		s, err := stringField("question", value)
		if err != nil {
			return err
		}
		q.Question = s
	}
	if value, ok := fields["options"]; ok {
		options, err := stringSliceField("options", value)
		if err != nil {
			return err
		}
		q.Options = options
	}
	if value, ok := fields["correct_option"]; ok {
		n, err := intField("correct_option", value)
		if err != nil {
			return err
		}
		q.CorrectOption = n
	}
	// Re-check the invariant after merging so a partial update cannot
	// leave correct_option pointing outside the option list
	return q.Validate()
}

// stringField coerces a JSON field value to a string
func stringField(key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: field '%s' must be a string", ErrValidation, key)
	}
	return s, nil
}

// intField coerces a JSON field value to an int (JSON numbers decode as float64)
func intField(key string, value any) (int, error) {
	switch n := value.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: field '%s' must be a number", ErrValidation, key)
	}
}

// stringSliceField coerces a JSON field value to a string slice
func stringSliceField(key string, value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: field '%s' must be a list of strings", ErrValidation, key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: field '%s' must be a list of strings", ErrValidation, key)
	}
}
