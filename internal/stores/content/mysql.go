package content

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Store is the MySQL-backed implementation of StoreInterface
type Store struct {
	db *gorm.DB
}

// NewStore opens a MySQL connection and migrates the content tables
func NewStore(databaseURL string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// migrate creates or updates the content tables
func (s *Store) migrate() error {
	return s.db.AutoMigrate(&Event{}, &Fact{}, &Joke{}, &Quote{}, &QuizItem{})
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}

/* ---- EVENTS (title-addressed) ---- */

func (s *Store) ListEvents() ([]Event, error) {
	return listAll[Event](s.db)
}

func (s *Store) GetEvent(title string) (*Event, error) {
	var event Event
	err := s.db.Where("title = ?", title).Order("id").First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

func (s *Store) CreateEvent(event *Event) (*Event, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}
	// No uniqueness check on title: duplicates are possible and title
	// addressed operations act on the oldest match
	if err := s.db.Create(event).Error; err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *Store) UpdateEvent(title string, fields map[string]any) (*Event, error) {
	event, err := s.GetEvent(title)
	if err != nil {
		return nil, err
	}
	if err := event.applyFields(fields); err != nil {
		return nil, err
	}
	if err := s.db.Save(event).Error; err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *Store) DeleteEvent(title string) error {
	event, err := s.GetEvent(title)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&Event{}, event.ID).Error; err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

/* ---- FACTS ---- */

func (s *Store) ListFacts() ([]Fact, error) {
	return listAll[Fact](s.db)
}

func (s *Store) GetFact(id string) (*Fact, error) {
	return getByID[Fact](s.db, id)
}

func (s *Store) CreateFact(fact *Fact) (*Fact, error) {
	if strings.TrimSpace(fact.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}
	return create(s.db, fact)
}

func (s *Store) UpdateFact(id string, fields map[string]any) (*Fact, error) {
	return updateByID[Fact](s.db, id, fields)
}

func (s *Store) DeleteFact(id string) error {
	return deleteByID[Fact](s.db, id)
}

/* ---- JOKES ---- */

func (s *Store) ListJokes() ([]Joke, error) {
	return listAll[Joke](s.db)
}

func (s *Store) GetJoke(id string) (*Joke, error) {
	return getByID[Joke](s.db, id)
}

func (s *Store) CreateJoke(joke *Joke) (*Joke, error) {
	if strings.TrimSpace(joke.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}
	return create(s.db, joke)
}

func (s *Store) UpdateJoke(id string, fields map[string]any) (*Joke, error) {
	return updateByID[Joke](s.db, id, fields)
}

func (s *Store) DeleteJoke(id string) error {
	return deleteByID[Joke](s.db, id)
}

/* ---- QUOTES ---- */

func (s *Store) ListQuotes() ([]Quote, error) {
	return listAll[Quote](s.db)
}

func (s *Store) GetQuote(id string) (*Quote, error) {
	return getByID[Quote](s.db, id)
}

func (s *Store) CreateQuote(quote *Quote) (*Quote, error) {
	if strings.TrimSpace(quote.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(quote.Author) == "" {
		quote.Author = "Unknown"
	}
	return create(s.db, quote)
}

func (s *Store) UpdateQuote(id string, fields map[string]any) (*Quote, error) {
	return updateByID[Quote](s.db, id, fields)
}

func (s *Store) DeleteQuote(id string) error {
	return deleteByID[Quote](s.db, id)
}

/* ---- QUIZZES ---- */

func (s *Store) ListQuizzes() ([]QuizItem, error) {
	return listAll[QuizItem](s.db)
}

func (s *Store) GetQuiz(id string) (*QuizItem, error) {
	return getByID[QuizItem](s.db, id)
}

func (s *Store) CreateQuiz(quiz *QuizItem) (*QuizItem, error) {
	if err := quiz.Validate(); err != nil {
		return nil, err
	}
	return create(s.db, quiz)
}

func (s *Store) UpdateQuiz(id string, fields map[string]any) (*QuizItem, error) {
	return updateByID[QuizItem](s.db, id, fields)
}

func (s *Store) DeleteQuiz(id string) error {
	return deleteByID[QuizItem](s.db, id)
}

/* ---- GENERIC HELPERS (id-addressed collections) ---- */

// mergeable is implemented by all content models; see model.go
type mergeable interface {
	applyFields(map[string]any) error
}

// parseID parses a decimal record id. An unparseable id matches no
// record and is reported as not found rather than as a caller error.
func parseID(id string) (uint, bool) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

func listAll[T any](db *gorm.DB) ([]T, error) {
	var rows []T
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return rows, nil
}

func create[T any](db *gorm.DB, row *T) (*T, error) {
	if err := db.Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	return row, nil
}

func getByID[T any](db *gorm.DB, id string) (*T, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, ErrNotFound
	}

	var row T
	if err := db.First(&row, n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &row, nil
}

func updateByID[T any, PT interface {
	*T
	mergeable
}](db *gorm.DB, id string, fields map[string]any) (*T, error) {
	row, err := getByID[T](db, id)
	if err != nil {
		return nil, err
	}
	if err := PT(row).applyFields(fields); err != nil {
		return nil, err
	}
	if err := db.Save(row).Error; err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	return row, nil
}

func deleteByID[T any](db *gorm.DB, id string) error {
	n, ok := parseID(id)
	if !ok {
		return ErrNotFound
	}

	var row T
	result := db.Delete(&row, n)
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
