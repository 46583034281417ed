package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

/* ---- EVENTS ---- */

// ListEvents fetches all events
func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var out ApiResponse[[]Event]
	if err := c.doJSON(ctx, http.MethodGet, "/api/events", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GetEvent fetches one event by title (the events natural key)
func (c *Client) GetEvent(ctx context.Context, title string) (*Event, error) {
	path := fmt.Sprintf("/api/events/%s", url.PathEscape(title))

	var out ApiResponse[Event]
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// CreateEvent creates a new event
func (c *Client) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	var out ApiResponse[Event]
	if err := c.doJSON(ctx, http.MethodPost, "/api/events", event, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdateEvent applies a partial-field update to the event with the given title
func (c *Client) UpdateEvent(ctx context.Context, title string, fields map[string]any) (*Event, error) {
	path := fmt.Sprintf("/api/events/%s", url.PathEscape(title))

	var out ApiResponse[Event]
	if err := c.doJSON(ctx, http.MethodPut, path, fields, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeleteEvent deletes the event with the given title
func (c *Client) DeleteEvent(ctx context.Context, title string) error {
	path := fmt.Sprintf("/api/events/%s", url.PathEscape(title))
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

/* ---- FACTS ---- */

// ListFacts fetches all facts
func (c *Client) ListFacts(ctx context.Context) ([]Fact, error) {
	var out ApiResponse[[]Fact]
	if err := c.doJSON(ctx, http.MethodGet, "/api/facts", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GetFact fetches one fact by id
func (c *Client) GetFact(ctx context.Context, id string) (*Fact, error) {
	var out ApiResponse[Fact]
	if err := c.doJSON(ctx, http.MethodGet, "/api/facts/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// CreateFact creates a new fact
func (c *Client) CreateFact(ctx context.Context, fact *Fact) (*Fact, error) {
	var out ApiResponse[Fact]
	if err := c.doJSON(ctx, http.MethodPost, "/api/facts", fact, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdateFact applies a partial-field update to a fact
func (c *Client) UpdateFact(ctx context.Context, id string, fields map[string]any) (*Fact, error) {
	var out ApiResponse[Fact]
	if err := c.doJSON(ctx, http.MethodPut, "/api/facts/"+url.PathEscape(id), fields, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeleteFact deletes a fact by id
func (c *Client) DeleteFact(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/facts/"+url.PathEscape(id), nil, nil)
}

/* ---- JOKES ---- */

// ListJokes fetches all jokes
func (c *Client) ListJokes(ctx context.Context) ([]Joke, error) {
	var out ApiResponse[[]Joke]
	if err := c.doJSON(ctx, http.MethodGet, "/api/jokes", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateJoke creates a new joke
func (c *Client) CreateJoke(ctx context.Context, joke *Joke) (*Joke, error) {
	var out ApiResponse[Joke]
	if err := c.doJSON(ctx, http.MethodPost, "/api/jokes", joke, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeleteJoke deletes a joke by id
func (c *Client) DeleteJoke(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/jokes/"+url.PathEscape(id), nil, nil)
}

/* ---- QUOTES ---- */

// ListQuotes fetches all quotes
func (c *Client) ListQuotes(ctx context.Context) ([]Quote, error) {
	var out ApiResponse[[]Quote]
	if err := c.doJSON(ctx, http.MethodGet, "/api/quotes", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateQuote creates a new quote
func (c *Client) CreateQuote(ctx context.Context, quote *Quote) (*Quote, error) {
	var out ApiResponse[Quote]
	if err := c.doJSON(ctx, http.MethodPost, "/api/quotes", quote, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeleteQuote deletes a quote by id
func (c *Client) DeleteQuote(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/quotes/"+url.PathEscape(id), nil, nil)
}

/* ---- QUIZZES ---- */

// ListQuizzes fetches all quiz items
func (c *Client) ListQuizzes(ctx context.Context) ([]QuizItem, error) {
	var out ApiResponse[[]QuizItem]
	if err := c.doJSON(ctx, http.MethodGet, "/api/quizzes", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateQuiz creates a new quiz item
func (c *Client) CreateQuiz(ctx context.Context, quiz *QuizItem) (*QuizItem, error) {
	var out ApiResponse[QuizItem]
	if err := c.doJSON(ctx, http.MethodPost, "/api/quizzes", quiz, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeleteQuiz deletes a quiz item by id
func (c *Client) DeleteQuiz(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/quizzes/"+url.PathEscape(id), nil, nil)
}

/* ---- ABOUT ---- */

// GetAbout fetches the static club information
func (c *Client) GetAbout(ctx context.Context) (*About, error) {
	var out ApiResponse[About]
	if err := c.doJSON(ctx, http.MethodGet, "/api/about", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
