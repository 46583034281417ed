package content

import "errors"

// ErrNotFound is returned when an identity matches no stored record
var ErrNotFound = errors.New("record not found")

// ErrValidation is returned for malformed payloads. Validation failures
// never reach the database.
var ErrValidation = errors.New("validation error")

// StoreInterface is the contract for the five content collections.
//
// Two addressing schemes coexist, preserved from the original API
// surface: facts, jokes, quotes and quizzes are addressed by their
// store-generated id, while events are addressed by their title. An
// event update may itself change the title, after which the old title
// no longer resolves. Duplicate titles are tolerated; title-addressed
// operations act on the oldest match.
type StoreInterface interface {
	ListEvents() ([]Event, error)
	GetEvent(title string) (*Event, error)
	CreateEvent(event *Event) (*Event, error)
	UpdateEvent(title string, fields map[string]any) (*Event, error)
	DeleteEvent(title string) error

	ListFacts() ([]Fact, error)
	GetFact(id string) (*Fact, error)
	CreateFact(fact *Fact) (*Fact, error)
	UpdateFact(id string, fields map[string]any) (*Fact, error)
	DeleteFact(id string) error

	ListJokes() ([]Joke, error)
	GetJoke(id string) (*Joke, error)
	CreateJoke(joke *Joke) (*Joke, error)
	UpdateJoke(id string, fields map[string]any) (*Joke, error)
	DeleteJoke(id string) error

	ListQuotes() ([]Quote, error)
	GetQuote(id string) (*Quote, error)
	CreateQuote(quote *Quote) (*Quote, error)
	UpdateQuote(id string, fields map[string]any) (*Quote, error)
	DeleteQuote(id string) error

	ListQuizzes() ([]QuizItem, error)
	GetQuiz(id string) (*QuizItem, error)
	CreateQuiz(quiz *QuizItem) (*QuizItem, error)
	UpdateQuiz(id string, fields map[string]any) (*QuizItem, error)
	DeleteQuiz(id string) error

	Close() error
}
