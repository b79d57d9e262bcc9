package store

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eleven-am/tick/internal/todo"
)

func TestErrorFormatting(t *testing.T) {
	err := &Error{Op: "get", Table: "todos", Err: todo.ErrNotFound}
	assert.Equal(t, "store: get: table=todos: todo not found", err.Error())
	assert.Equal(t, todo.ErrNotFound, errors.Unwrap(err))
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, wrap("get", nil))
	})

	t.Run("no rows becomes not found", func(t *testing.T) {
		err := wrap("get", sql.ErrNoRows)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.NotErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("other errors keep their identity", func(t *testing.T) {
		cause := errors.New("disk on fire")
		err := wrap("list", cause)
		require.Error(t, err)
		assert.False(t, IsNotFound(err))
		assert.ErrorIs(t, err, cause)

		var serr *Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "list", serr.Op)
		assert.Equal(t, "todos", serr.Table)
	})
}
