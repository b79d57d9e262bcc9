// Package view holds the client-side list of todos that drives a UI. Every
// mutation is confirmed by the server's response before local state changes;
// the list never predicts a result optimistically.
package view

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eleven-am/tick/pkg/client"
)

// ErrEmptyText is the form-boundary rejection for blank input. It is raised
// locally, before any network call, mirroring the server-side rule.
var ErrEmptyText = errors.New("todo cannot be empty")

// Service is the API surface the view needs. *client.Client satisfies it.
type Service interface {
	Fetch(ctx context.Context) ([]client.Todo, error)
	Create(ctx context.Context, text string) (client.Todo, error)
	Update(ctx context.Context, id int64, completed bool) (client.Todo, error)
	Delete(ctx context.Context, id int64) error
}

var _ Service = (*client.Client)(nil)

// List is the in-memory todo list. It preserves the order confirmed by the
// server: newest-first on initial load, with later additions appended. It is
// not safe for concurrent use; a UI drives it from a single goroutine.
type List struct {
	svc   Service
	todos []client.Todo
}

// NewList creates an empty List backed by svc.
func NewList(svc Service) *List {
	return &List{svc: svc}
}

// Load fetches the full list and replaces local state wholesale.
func (l *List) Load(ctx context.Context) error {
	todos, err := l.svc.Fetch(ctx)
	if err != nil {
		return err
	}
	l.todos = todos
	return nil
}

// Add creates a todo from the given input text and appends the
// server-confirmed record. Blank input fails locally with ErrEmptyText and no
// request is made. On any failure the list is left untouched.
func (l *List) Add(ctx context.Context, text string) (client.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return client.Todo{}, ErrEmptyText
	}

	created, err := l.svc.Create(ctx, text)
	if err != nil {
		return client.Todo{}, err
	}

	l.todos = append(l.todos, created)
	return created, nil
}

// Toggle flips the completed flag of the todo with the given id, sending the
// negation of the current local value and replacing the record in place with
// the server's copy.
func (l *List) Toggle(ctx context.Context, id int64) (client.Todo, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return client.Todo{}, fmt.Errorf("no todo with id %d", id)
	}

	updated, err := l.svc.Update(ctx, id, !l.todos[idx].Completed)
	if err != nil {
		return client.Todo{}, err
	}

	l.todos[idx] = updated
	return updated, nil
}

// Remove deletes the todo with the given id and drops it from local state
// once the server confirms. A failed delete (including a racing
// double-delete observing not-found) leaves the list unchanged and returns
// the error for the UI to surface.
func (l *List) Remove(ctx context.Context, id int64) error {
	if err := l.svc.Delete(ctx, id); err != nil {
		return err
	}

	if idx := l.indexOf(id); idx >= 0 {
		l.todos = append(l.todos[:idx], l.todos[idx+1:]...)
	}
	return nil
}

// Todos returns a copy of the current list.
func (l *List) Todos() []client.Todo {
	out := make([]client.Todo, len(l.todos))
	copy(out, l.todos)
	return out
}

// Len returns the number of todos currently held.
func (l *List) Len() int {
	return len(l.todos)
}

func (l *List) indexOf(id int64) int {
	for i, t := range l.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
