package content

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-memory implementation of StoreInterface. It backs
// tests and local development runs where no MySQL instance is available.
type MemoryStore struct {
	mu      sync.RWMutex
	nextID  uint
	events  map[uint]Event
	facts   map[uint]Fact
	jokes   map[uint]Joke
	quotes  map[uint]Quote
	quizzes map[uint]QuizItem
}

// NewMemoryStore creates an empty in-memory content store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:  1,
		events:  make(map[uint]Event),
		facts:   make(map[uint]Fact),
		jokes:   make(map[uint]Joke),
		quotes:  make(map[uint]Quote),
		quizzes: make(map[uint]QuizItem),
	}
}

// Close implements StoreInterface; nothing to release
func (s *MemoryStore) Close() error {
	return nil
}

// sortedIDs returns the map keys in insertion (id) order so listings
// are stable
func sortedIDs[T any](rows map[uint]T) []uint {
	ids := make([]uint, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func listRows[T any](rows map[uint]T) []T {
	out := make([]T, 0, len(rows))
	for _, id := range sortedIDs(rows) {
		out = append(out, rows[id])
	}
	return out
}

/* ---- EVENTS (title-addressed) ---- */

func (s *MemoryStore) ListEvents() ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listRows(s.events), nil
}

// findEvent returns the oldest event with the given title (duplicates
// are tolerated). Caller must hold the lock.
func (s *MemoryStore) findEvent(title string) (Event, bool) {
	for _, id := range sortedIDs(s.events) {
		if s.events[id].Title == title {
			return s.events[id], true
		}
	}
	return Event{}, false
}

func (s *MemoryStore) GetEvent(title string) (*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.findEvent(title)
	if !ok {
		return nil, ErrNotFound
	}
	return &event, nil
}

func (s *MemoryStore) CreateEvent(event *Event) (*Event, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.nextID
	s.nextID++
	s.events[event.ID] = *event
	return event, nil
}

func (s *MemoryStore) UpdateEvent(title string, fields map[string]any) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.findEvent(title)
	if !ok {
		return nil, ErrNotFound
	}
	if err := event.applyFields(fields); err != nil {
		return nil, err
	}
	s.events[event.ID] = event
	return &event, nil
}

func (s *MemoryStore) DeleteEvent(title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.findEvent(title)
	if !ok {
		return ErrNotFound
	}
	delete(s.events, event.ID)
	return nil
}

/* ---- FACTS ---- */

func (s *MemoryStore) ListFacts() ([]Fact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listRows(s.facts), nil
}

func (s *MemoryStore) GetFact(id string) (*Fact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fact, ok := s.facts[lookupID(id)]
	if !ok {
		return nil, ErrNotFound
	}
	return &fact, nil
}

func (s *MemoryStore) CreateFact(fact *Fact) (*Fact, error) {
	if strings.TrimSpace(fact.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fact.ID = s.nextID
	s.nextID++
	s.facts[fact.ID] = *fact
	return fact, nil
}

func (s *MemoryStore) UpdateFact(id string, fields map[string]any) (*Fact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fact, ok := s.facts[lookupID(id)]
	if !ok {
		return nil, ErrNotFound
	}
	if err := fact.applyFields(fields); err != nil {
		return nil, err
	}
	s.facts[fact.ID] = fact
	return &fact, nil
}

func (s *MemoryStore) DeleteFact(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.facts[lookupID(id)]; !ok {
		return ErrNotFound
	}
	delete(s.facts, lookupID(id))
	return nil
}

/* ---- JOKES ---- */

func (s *MemoryStore) ListJokes() ([]Joke, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listRows(s.jokes), nil
}

func (s *MemoryStore) GetJoke(id string) (*Joke, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	joke, ok := s.jokes[lookupID(id)]
	if !ok {
		return nil, ErrNotFound
	}
	return &joke, nil
}

func (s *MemoryStore) CreateJoke(joke *Joke) (*Joke, error) {
	if strings.TrimSpace(joke.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	joke.ID = s.nextID
	s.nextID++
	s.jokes[joke.ID] = *joke
	return joke, nil
}

func (s *MemoryStore) UpdateJoke(id string, fields map[string]any) (*Joke, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	joke, ok := s.jokes[lookupID(id)]
	if !ok {
		return nil, ErrNotFound
	}
	if err := joke.applyFields(fields); err != nil {
		return nil, err
	}
	s.jokes[joke.ID] = joke
	return &joke, nil
}

func (s *MemoryStore) DeleteJoke(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jokes[lookupID(id)]; !ok {
		return ErrNotFound
	}
	delete(s.jokes, lookupID(id))
	return nil
}

/* ---- QUOTES ---- */

func (s *MemoryStore) ListQuotes() ([]Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listRows(s.quotes), nil
}

func (s *MemoryStore) GetQuote(id string) (*Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quote, ok := s.quotes[lookupID(id)]
	if !ok {
		return nil, ErrNotFound
	}
	return &quote, nil
}

func (s *MemoryStore) CreateQuote(quote *Quote) (*Quote, error) {
	if strings.TrimSpace(quote.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(quote.Author) == "" {
		quote.Author = "Unknown"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	quote.ID = s.nextID
	s.nextID++
	s.quotes[quote.ID] = *quote
	return quote, nil
}

func (s *MemoryStore) UpdateQuote(id string, fields map[string]any) (*Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quote, ok := s.quotes[lookupID(id)]
	if !ok {
		return nil, ErrNotFound
	}
	if err := quote.applyFields(fields); err != nil {
		return nil, err
	}
	s.quotes[quote.ID] = quote
	return &quote, nil
}

func (s *MemoryStore) DeleteQuote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quotes[lookupID(id)]; !ok {
		return ErrNotFound
	}
	delete(s.quotes, lookupID(id))
	return nil
}

/* ---- QUIZZES ---- */

func (s *MemoryStore) ListQuizzes() ([]QuizItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listRows(s.quizzes), nil
}

func (s *MemoryStore) GetQuiz(id string) (*QuizItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quiz, ok := s.quizzes[lookupID(id)]
	if !ok {
		return nil, ErrNotFound
	}
	return &quiz, nil
}

func (s *MemoryStore) CreateQuiz(quiz *QuizItem) (*QuizItem, error) {
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	quiz.ID = s.nextID
	s.nextID++
	s.quizzes[quiz.ID] = *quiz
	return quiz, nil
}

func (s *MemoryStore) UpdateQuiz(id string, fields map[string]any) (*QuizItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz, ok := s.quizzes[lookupID(id)]
	if !ok {
		return nil, ErrNotFound
	}
	if err := quiz.applyFields(fields); err != nil {
		return nil, err
	}
	s.quizzes[quiz.ID] = quiz
	return &quiz, nil
}

func (s *MemoryStore) DeleteQuiz(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quizzes[lookupID(id)]; !ok {
		return ErrNotFound
	}
	delete(s.quizzes, lookupID(id))
	return nil
}

// lookupID parses a decimal record id; 0 is never assigned so it is a
// safe miss value
func lookupID(id string) uint {
	n, ok := parseID(id)
	if !ok {
		return 0
	}
	return n
}
