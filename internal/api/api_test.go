package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shellmates/cyberbot/internal/api"
	"github.com/shellmates/cyberbot/internal/stores/content"
	"github.com/shellmates/cyberbot/pkg/sdk"
	"github.com/shellmates/cyberbot/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := utils.NewConfig(nil)
	return api.NewEngine(cfg, content.NewMemoryStore())
}

func doRequest(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewBuffer(b)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestEventLifecycle(t *testing.T) {
	assert := assert.New(t)
	engine := newTestEngine()

	// Create
	w := doRequest(engine, http.MethodPost, "/api/events", map[string]any{
		"title":       "CTF Night",
		"date":        "2026-09-01T18:00:00Z",
		"description": "Jeopardy-style CTF",
		"location":    "Room E12",
	})
	assert.Equal(http.StatusOK, w.Code)

	// Get by title
	w = doRequest(engine, http.MethodGet, "/api/events/CTF%20Night", nil)
	assert.Equal(http.StatusOK, w.Code)

	var got sdk.ApiResponse[sdk.Event]
	assert.Nil(json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal("Room E12", got.Data.Location)

	// Partial update leaves the other fields untouched
	w = doRequest(engine, http.MethodPut, "/api/events/CTF%20Night", map[string]any{
		"location": "Amphi A",
	})
	assert.Equal(http.StatusOK, w.Code)
	assert.Nil(json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal("Amphi A", got.Data.Location)
	assert.Equal("Jeopardy-style CTF", got.Data.Description)

	// Delete, then the title no longer resolves
	w = doRequest(engine, http.MethodDelete, "/api/events/CTF%20Night", nil)
	assert.Equal(http.StatusOK, w.Code)

	w = doRequest(engine, http.MethodGet, "/api/events/CTF%20Night", nil)
	assert.Equal(http.StatusNotFound, w.Code)

	w = doRequest(engine, http.MethodDelete, "/api/events/CTF%20Night", nil)
	assert.Equal(http.StatusNotFound, w.Code)
}

func TestUpdateMissingRecord(t *testing.T) {
	assert := assert.New(t)
	engine := newTestEngine()

	w := doRequest(engine, http.MethodPut, "/api/facts/99", map[string]any{"content": "updated"})
	assert.Equal(http.StatusNotFound, w.Code)

	w = doRequest(engine, http.MethodPut, "/api/events/Nothing", map[string]any{"location": "nowhere"})
	assert.Equal(http.StatusNotFound, w.Code)
}

func TestQuizValidationAtCreate(t *testing.T) {
	assert := assert.New(t)
	engine := newTestEngine()

	// Single option is rejected before the store is touched
	w := doRequest(engine, http.MethodPost, "/api/quizzes", map[string]any{
		"question":       "What port does SSH use?",
		"options":        []string{"22"},
		"correct_option": 0,
	})
	assert.Equal(http.StatusBadRequest, w.Code)

	// Out-of-range correct_option
	w = doRequest(engine, http.MethodPost, "/api/quizzes", map[string]any{
		"question":       "What port does SSH use?",
		"options":        []string{"22", "23"},
		"correct_option": 2,
	})
	assert.Equal(http.StatusBadRequest, w.Code)

	w = doRequest(engine, http.MethodGet, "/api/quizzes", nil)
	assert.Equal(http.StatusOK, w.Code)

	var list sdk.ApiResponse[[]sdk.QuizItem]
	assert.Nil(json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(list.Data)

	// Valid quiz passes
	w = doRequest(engine, http.MethodPost, "/api/quizzes", map[string]any{
		"question":       "What port does SSH use?",
		"options":        []string{"22", "23"},
		"correct_option": 0,
	})
	assert.Equal(http.StatusOK, w.Code)
}

func TestQuoteDefaultsAndHealth(t *testing.T) {
	assert := assert.New(t)
	engine := newTestEngine()

	w := doRequest(engine, http.MethodPost, "/api/quotes", map[string]any{
		"content": "Security is a process, not a product.",
	})
	assert.Equal(http.StatusOK, w.Code)

	var got sdk.ApiResponse[sdk.Quote]
	assert.Nil(json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal("Unknown", got.Data.Author)

	w = doRequest(engine, http.MethodGet, "/api/health", nil)
	assert.Equal(http.StatusOK, w.Code)

	w = doRequest(engine, http.MethodGet, "/api/about", nil)
	assert.Equal(http.StatusOK, w.Code)

	var about sdk.ApiResponse[sdk.About]
	assert.Nil(json.Unmarshal(w.Body.Bytes(), &about))
	assert.Equal("Shellmates", about.Data.Name)
}
