// Package client is the Go service layer for the todo API. Each method maps
// to one HTTP operation; any transport failure or non-success status is
// collapsed into an OperationError with a fixed, operation-specific message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/eleven-am/tick/internal/logger"
)

// Todo is the wire shape of one todo record.
type Todo struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"created_at"`
}

// Client issues requests against a todo API server.
type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a Client for the server at baseURL, e.g.
// "http://localhost:3000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		log:     logger.Client(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns all todos.
func (c *Client) Fetch(ctx context.Context) ([]Todo, error) {
	var resp struct {
		Todos []Todo `json:"todos"`
	}
	if err := c.do(ctx, opFetch, http.MethodGet, "/api/todos", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Todos, nil
}

// Create adds a new todo with the given text and returns the server's copy.
func (c *Client) Create(ctx context.Context, text string) (Todo, error) {
	var resp struct {
		Todo Todo `json:"todo"`
	}
	body := map[string]string{"text": text}
	if err := c.do(ctx, opCreate, http.MethodPost, "/api/todos", body, &resp); err != nil {
		return Todo{}, err
	}
	return resp.Todo, nil
}

// Update sets the completed flag of the todo with the given id and returns
// the server's copy.
func (c *Client) Update(ctx context.Context, id int64, completed bool) (Todo, error) {
	var resp struct {
		Todo Todo `json:"todo"`
	}
	body := map[string]bool{"completed": completed}
	path := fmt.Sprintf("/api/todos/%d", id)
	if err := c.do(ctx, opUpdate, http.MethodPut, path, body, &resp); err != nil {
		return Todo{}, err
	}
	return resp.Todo, nil
}

// Delete removes the todo with the given id. A nil error means the server
// confirmed the delete; no body is parsed.
func (c *Client) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/todos/%d", id)
	return c.do(ctx, opDelete, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, dest any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return c.fail(op, 0, err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return c.fail(op, 0, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(op, resp.StatusCode, fmt.Errorf("server returned %s", resp.Status))
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return c.fail(op, resp.StatusCode, err)
	}
	return nil
}

func (c *Client) fail(op string, status int, cause error) error {
	c.log.Error("request failed", "op", op, "status", status, "error", cause)
	return &OperationError{Op: op, Message: messages[op], Status: status, Err: cause}
}
