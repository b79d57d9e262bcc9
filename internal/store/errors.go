package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/eleven-am/tick/internal/todo"
)

// Error provides detailed error information for a failed store operation.
type Error struct {
	Op    string // Operation that failed
	Table string // Table involved
	Err   error  // Underlying error
}

func (e *Error) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("store: %s", e.Op))

	if e.Table != "" {
		parts = append(parts, fmt.Sprintf("table=%s", e.Table))
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrap converts driver-level errors into store errors. An empty result set
// becomes todo.ErrNotFound so callers never have to know about sql.ErrNoRows.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		err = todo.ErrNotFound
	}
	return &Error{Op: op, Table: tableName, Err: err}
}

// IsNotFound reports whether err means the referenced todo does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, todo.ErrNotFound)
}
