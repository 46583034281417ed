package main

import (
	"context"
	"net/http/httptest"
	"testing"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/shellmates/cyberbot/internal/api"
	"github.com/shellmates/cyberbot/internal/stores/content"
	"github.com/shellmates/cyberbot/pkg/sdk"
	"github.com/shellmates/cyberbot/pkg/utils"
)

func TestParseQuizOptions(t *testing.T) {
	options, correct, err := ParseQuizOptions("TCP, UDP,,  ICMP ", 2)
	assert.Nil(t, err)
	assert.Equal(t, []string{"TCP", "UDP", "ICMP"}, options)
	assert.Equal(t, 1, correct)
}

func TestParseQuizOptionsRejectsTooFew(t *testing.T) {
	_, _, err := ParseQuizOptions("only one, ,", 1)
	assert.NotNil(t, err)

	_, _, err = ParseQuizOptions(",,,", 1)
	assert.NotNil(t, err)
}

func TestParseQuizOptionsRejectsBadAnswerNumber(t *testing.T) {
	_, _, err := ParseQuizOptions("a, b, c", 0)
	assert.NotNil(t, err)

	_, _, err = ParseQuizOptions("a, b, c", 4)
	assert.NotNil(t, err)
}

func TestSessionSingleAnswer(t *testing.T) {
	store := NewSessionStore()
	id := store.Deal(&sdk.QuizItem{
		Question:      "What does XSS stand for?",
		Options:       []string{"Cross-site scripting", "Extra secure sockets"},
		CorrectOption: 0,
	})

	// First answer is scored
	result, ok := store.Answer(id, 1)
	assert.True(t, ok)
	assert.False(t, result.AlreadyAnswered)
	assert.False(t, result.Correct)
	assert.Equal(t, "Cross-site scripting", result.CorrectAnswer)

	// Every later answer is a locked no-op, even the correct one
	result, ok = store.Answer(id, 0)
	assert.True(t, ok)
	assert.True(t, result.AlreadyAnswered)
	assert.False(t, result.Correct)
}

func TestSessionCorrectAnswer(t *testing.T) {
	store := NewSessionStore()
	id := store.Deal(&sdk.QuizItem{
		Question:      "Default SSH port?",
		Options:       []string{"21", "22", "23"},
		CorrectOption: 1,
	})

	result, ok := store.Answer(id, 1)
	assert.True(t, ok)
	assert.True(t, result.Correct)
}

func TestSessionEviction(t *testing.T) {
	store := NewSessionStore()
	id := store.Deal(&sdk.QuizItem{
		Question:      "Q",
		Options:       []string{"X", "Y"},
		CorrectOption: 0,
	})

	_, ok := store.Answer(id, 0)
	assert.True(t, ok)

	// Once evicted the session is gone and later clicks are unknown
	store.Evict(id)
	assert.Empty(t, store.sessions)

	_, ok = store.Answer(id, 0)
	assert.False(t, ok)
	_, ok = store.Snapshot(id)
	assert.False(t, ok)
}

func TestSessionUnknownID(t *testing.T) {
	store := NewSessionStore()

	_, ok := store.Answer("no-such-session", 0)
	assert.False(t, ok)

	_, ok = store.Snapshot("no-such-session")
	assert.False(t, ok)
}

func TestQuizCustomIDRoundTrip(t *testing.T) {
	id := quizCustomID("abc-123", 2)
	sessionID, choice, ok := parseQuizCustomID(id)
	assert.True(t, ok)
	assert.Equal(t, "abc-123", sessionID)
	assert.Equal(t, 2, choice)

	_, _, ok = parseQuizCustomID("unrelated-button")
	assert.False(t, ok)

	_, _, ok = parseQuizCustomID("quiz:abc:not-a-number")
	assert.False(t, ok)
}

// TestQuizEndToEnd runs the authoring-to-answer flow through the real
// HTTP stack: parse free-text options, store the quiz over the API,
// deal a session from the fetched record and score both answers.
func TestQuizEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := api.NewEngine(utils.NewConfig(nil), content.NewMemoryStore())
	server := httptest.NewServer(engine)
	defer server.Close()

	client := sdk.NewClient(server.URL)
	ctx := context.Background()

	options, correct, err := ParseQuizOptions("X, Y", 1)
	assert.Nil(t, err)

	_, err = client.CreateQuiz(ctx, &sdk.QuizItem{
		Question:      "Q",
		Options:       options,
		CorrectOption: correct,
	})
	assert.Nil(t, err)

	quizzes, err := client.ListQuizzes(ctx)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(quizzes))

	store := NewSessionStore()
	id := store.Deal(&quizzes[0])

	// Wrong answer first: scored once, naming the correct option
	result, ok := store.Answer(id, 1)
	assert.True(t, ok)
	assert.False(t, result.AlreadyAnswered)
	assert.False(t, result.Correct)
	assert.Equal(t, "X", result.CorrectAnswer)

	// The session is locked, the right answer no longer scores
	result, ok = store.Answer(id, 0)
	assert.True(t, ok)
	assert.True(t, result.AlreadyAnswered)
}

func TestQuizButtonsRowLayout(t *testing.T) {
	options := []string{"a", "b", "c", "d", "e", "f", "g"}
	components := quizButtons("session", options, false)

	// Seven options split into a row of five and a row of two
	assert.Equal(t, 2, len(components))
	first := components[0].(discordgo.ActionsRow)
	second := components[1].(discordgo.ActionsRow)
	assert.Equal(t, 5, len(first.Components))
	assert.Equal(t, 2, len(second.Components))
}

func TestTruncateCountsRunes(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 80))

	// Multi-byte labels shorten on rune boundaries, never mid-rune
	label := "sécurité informatique — défense réseau"
	cut := truncate(label, 10)
	assert.Equal(t, []rune(label)[:7], []rune(cut)[:7])
	assert.Equal(t, 10, len([]rune(cut)))
	assert.True(t, utf8.ValidString(cut))

	assert.Equal(t, "...", truncate("anything", 3))
}
