package content_test

import (
	"testing"

	"github.com/shellmates/cyberbot/internal/stores/content"
	"github.com/stretchr/testify/assert"
)

func TestEventTitleAddressing(t *testing.T) {
	assert := assert.New(t)
	store := content.NewMemoryStore()

	created, err := store.CreateEvent(&content.Event{
		Title:       "CTF Night",
		Date:        "2026-09-01T18:00:00Z",
		Description: "Jeopardy-style CTF",
		Location:    "Room E12",
	})
	assert.Nil(err)
	assert.NotZero(created.ID)

	got, err := store.GetEvent("CTF Night")
	assert.Nil(err)
	assert.Equal("Room E12", got.Location)

	// Partial update touches only the supplied field
	updated, err := store.UpdateEvent("CTF Night", map[string]any{"location": "Amphi A"})
	assert.Nil(err)
	assert.Equal("Amphi A", updated.Location)
	assert.Equal("Jeopardy-style CTF", updated.Description)
	assert.Equal("2026-09-01T18:00:00Z", updated.Date)

	// A title update re-addresses the record: the old title stops resolving
	_, err = store.UpdateEvent("CTF Night", map[string]any{"title": "CTF Finals"})
	assert.Nil(err)

	_, err = store.GetEvent("CTF Night")
	assert.ErrorIs(err, content.ErrNotFound)

	got, err = store.GetEvent("CTF Finals")
	assert.Nil(err)
	assert.Equal("Amphi A", got.Location)
}

func TestEventDuplicateTitles(t *testing.T) {
	assert := assert.New(t)
	store := content.NewMemoryStore()

	first, err := store.CreateEvent(&content.Event{Title: "Workshop", Location: "Lab 1"})
	assert.Nil(err)
	_, err = store.CreateEvent(&content.Event{Title: "Workshop", Location: "Lab 2"})
	assert.Nil(err)

	// Title-addressed operations act on the oldest match
	got, err := store.GetEvent("Workshop")
	assert.Nil(err)
	assert.Equal(first.ID, got.ID)

	assert.Nil(store.DeleteEvent("Workshop"))

	got, err = store.GetEvent("Workshop")
	assert.Nil(err)
	assert.Equal("Lab 2", got.Location)
}

func TestUpdateMissingIdentity(t *testing.T) {
	assert := assert.New(t)
	store := content.NewMemoryStore()

	_, err := store.UpdateEvent("No Such Event", map[string]any{"location": "nowhere"})
	assert.ErrorIs(err, content.ErrNotFound)

	_, err = store.UpdateFact("42", map[string]any{"content": "new"})
	assert.ErrorIs(err, content.ErrNotFound)

	_, err = store.UpdateQuiz("not-a-number", map[string]any{"question": "?"})
	assert.ErrorIs(err, content.ErrNotFound)
}

func TestDeleteTwice(t *testing.T) {
	assert := assert.New(t)
	store := content.NewMemoryStore()

	fact, err := store.CreateFact(&content.Fact{Content: "DNS runs over port 53"})
	assert.Nil(err)

	id := "1"
	assert.NotZero(fact.ID)
	assert.Nil(store.DeleteFact(id))

	// Second delete reports not found, it does not escalate
	assert.ErrorIs(store.DeleteFact(id), content.ErrNotFound)
}

func TestQuoteAuthorDefault(t *testing.T) {
	assert := assert.New(t)
	store := content.NewMemoryStore()

	quote, err := store.CreateQuote(&content.Quote{Content: "Security is a process."})
	assert.Nil(err)
	assert.Equal("Unknown", quote.Author)

	quote, err = store.CreateQuote(&content.Quote{Content: "Trust, but verify.", Author: "Proverb"})
	assert.Nil(err)
	assert.Equal("Proverb", quote.Author)
}

func TestQuizValidation(t *testing.T) {
	assert := assert.New(t)
	store := content.NewMemoryStore()

	// Fewer than two options
	_, err := store.CreateQuiz(&content.QuizItem{Question: "Q", Options: []string{"only"}, CorrectOption: 0})
	assert.ErrorIs(err, content.ErrValidation)

	// Correct option out of range
	_, err = store.CreateQuiz(&content.QuizItem{Question: "Q", Options: []string{"X", "Y"}, CorrectOption: 2})
	assert.ErrorIs(err, content.ErrValidation)

	quiz, err := store.CreateQuiz(&content.QuizItem{Question: "Q", Options: []string{"X", "Y"}, CorrectOption: 0})
	assert.Nil(err)

	// An update cannot leave correct_option outside the merged option list
	_, err = store.UpdateQuiz("1", map[string]any{"correct_option": float64(5)})
	assert.ErrorIs(err, content.ErrValidation)

	got, err := store.GetQuiz("1")
	assert.Nil(err)
	assert.Equal(quiz.CorrectOption, got.CorrectOption)
}

func TestEmptyContentRejected(t *testing.T) {
	assert := assert.New(t)
	store := content.NewMemoryStore()

	_, err := store.CreateFact(&content.Fact{Content: "   "})
	assert.ErrorIs(err, content.ErrValidation)

	_, err = store.CreateJoke(&content.Joke{})
	assert.ErrorIs(err, content.ErrValidation)

	_, err = store.CreateEvent(&content.Event{Title: ""})
	assert.ErrorIs(err, content.ErrValidation)

	facts, err := store.ListFacts()
	assert.Nil(err)
	assert.Empty(facts)
}
