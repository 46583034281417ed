package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/shellmates/cyberbot/pkg/sdk"
)

// QuizSession is the ephemeral state behind one dealt quiz message. It
// is mutated exactly once, on the first answer.
type QuizSession struct {
	Question      string
	Options       []string
	CorrectOption int
	answered      bool
}

// AnswerResult reports the outcome of one selection on a session
type AnswerResult struct {
	AlreadyAnswered bool
	Correct         bool
	CorrectAnswer   string
}

// SessionStore tracks active quiz sessions by session id. The mutex
// makes the Dealt -> Answered transition atomic: at most one selection
// is ever scored per session, no matter how button events interleave.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*QuizSession
}

// NewSessionStore initializes an empty SessionStore
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*QuizSession)}
}

// Deal creates a session for a quiz item and returns its id
func (s *SessionStore) Deal(quiz *sdk.QuizItem) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &QuizSession{
		Question:      quiz.Question,
		Options:       quiz.Options,
		CorrectOption: quiz.CorrectOption,
	}
	return id
}

// Snapshot returns a copy of the session state for rendering
func (s *SessionStore) Snapshot(id string) (QuizSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return QuizSession{}, false
	}
	return *session, true
}

// Answer records a selection on a session. The first call scores the
// answer and locks the session; every later call is a no-op reported
// through AlreadyAnswered. The second return is false when the session
// id is unknown.
func (s *SessionStore) Answer(id string, choice int) (AnswerResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return AnswerResult{}, false
	}

	if session.answered {
		return AnswerResult{AlreadyAnswered: true}, true
	}
	session.answered = true

	result := AnswerResult{
		Correct:       choice == session.CorrectOption,
		CorrectAnswer: session.Options[session.CorrectOption],
	}
	return result, true
}

// Evict drops a session once its hosting message is no longer
// interactive, keeping the store from growing for the process lifetime.
// Later selections on the evicted session resolve as unknown.
func (s *SessionStore) Evict(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// ParseQuizOptions turns a free-text comma-separated option list and a
// 1-based correct-answer number into the stored form: trimmed options
// with empties dropped, and a zero-based correct index
func ParseQuizOptions(raw string, answerNumber int) ([]string, int, error) {
	var options []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			options = append(options, trimmed)
		}
	}

	if len(options) < 2 {
		return nil, 0, fmt.Errorf("a quiz needs at least 2 options, got %d", len(options))
	}
	if answerNumber < 1 || answerNumber > len(options) {
		return nil, 0, fmt.Errorf("the correct answer number must be between 1 and %d", len(options))
	}

	return options, answerNumber - 1, nil
}

// quizCustomID builds the component custom id for one option button
func quizCustomID(sessionID string, option int) string {
	return fmt.Sprintf("quiz:%s:%d", sessionID, option)
}

// parseQuizCustomID inverts quizCustomID
func parseQuizCustomID(customID string) (string, int, bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 3 || parts[0] != "quiz" {
		return "", 0, false
	}

	choice, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, false
	}
	return parts[1], choice, true
}
