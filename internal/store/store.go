// Package store implements the record store for todos: a single todos table
// accessed through sqlx, with queries built by squirrel. It supports the
// sqlite3 and postgres drivers and is the only component that knows the
// persisted completed field is a 0/1 integer.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/eleven-am/tick/internal/logger"
	"github.com/eleven-am/tick/internal/todo"
)

const tableName = "todos"

var columns = []string{"id", "text", "completed", "created_at"}

// Execer represents an interface that can execute database operations.
// It is satisfied by both *sqlx.DB and *sqlx.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	DriverName() string
}

// Compile-time checks that both sqlx.DB and sqlx.Tx satisfy Execer
var (
	_ Execer = (*sqlx.DB)(nil)
	_ Execer = (*sqlx.Tx)(nil)
)

// Store provides CRUD access to the todos table. All writes are durable;
// every read re-queries the database.
type Store struct {
	db        Execer
	sb        squirrel.StatementBuilderType
	returning bool
	now       func() time.Time
	log       logger.Logger
}

// New creates a Store on top of an open connection. The driver name selects
// the placeholder format and id-return strategy: postgres uses $N
// placeholders and INSERT ... RETURNING, everything else uses ? and
// LastInsertId.
func New(db Execer) *Store {
	var placeholder squirrel.PlaceholderFormat = squirrel.Question
	returning := false
	if db.DriverName() == "postgres" {
		placeholder = squirrel.Dollar
		returning = true
	}

	return &Store{
		db:        db,
		sb:        squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		returning: returning,
		now:       time.Now,
		log:       logger.Store(),
	}
}

// Open connects to the database, verifies the connection, and ensures the
// todos table exists.
func Open(ctx context.Context, driver, dsn string) (*Store, *sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, nil, wrap("open", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, wrap("ping", err)
	}

	s := New(db)
	if err := s.InitSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	return s, db, nil
}

// row is the persisted shape of a record. completed is stored as a 0/1
// integer; record() is the single conversion point back to a boolean.
type row struct {
	ID        int64  `db:"id"`
	Text      string `db:"text"`
	Completed int64  `db:"completed"`
	CreatedAt int64  `db:"created_at"`
}

func (r row) record() todo.Record {
	return todo.Record{
		ID:        r.ID,
		Text:      r.Text,
		Completed: r.Completed != 0,
		CreatedAt: r.CreatedAt,
	}
}

// List returns all todos ordered newest first. Timestamp collisions are
// tie-broken by id descending so the order is deterministic.
func (s *Store) List(ctx context.Context) ([]todo.Record, error) {
	query, args, err := s.sb.Select(columns...).
		From(tableName).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, wrap("list", err)
	}

	var rows []row
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrap("list", err)
	}

	records := make([]todo.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.record())
	}
	return records, nil
}

// Get returns the todo with the given id, or todo.ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (todo.Record, error) {
	query, args, err := s.sb.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return todo.Record{}, wrap("get", err)
	}

	var r row
	if err := s.db.GetContext(ctx, &r, query, args...); err != nil {
		return todo.Record{}, wrap("get", err)
	}
	return r.record(), nil
}

// Insert creates a new todo with the given text, completed=false, and the
// current time in milliseconds, then re-reads the stored row so the caller
// gets the canonical copy.
func (s *Store) Insert(ctx context.Context, text string) (todo.Record, error) {
	createdAt := s.now().UnixMilli()

	builder := s.sb.Insert(tableName).
		Columns("text", "completed", "created_at").
		Values(text, 0, createdAt)

	var id int64
	if s.returning {
		query, args, err := builder.Suffix("RETURNING id").ToSql()
		if err != nil {
			return todo.Record{}, wrap("insert", err)
		}
		if err := s.db.GetContext(ctx, &id, query, args...); err != nil {
			return todo.Record{}, wrap("insert", err)
		}
	} else {
		query, args, err := builder.ToSql()
		if err != nil {
			return todo.Record{}, wrap("insert", err)
		}
		result, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return todo.Record{}, wrap("insert", err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return todo.Record{}, wrap("insert", err)
		}
	}

	s.log.Debug("inserted todo", "id", id)
	return s.Get(ctx, id)
}

// SetCompleted updates the completed flag of the todo with the given id and
// returns the updated record, or todo.ErrNotFound if no such row exists.
func (s *Store) SetCompleted(ctx context.Context, id int64, completed bool) (todo.Record, error) {
	value := 0
	if completed {
		value = 1
	}

	query, args, err := s.sb.Update(tableName).
		Set("completed", value).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return todo.Record{}, wrap("update", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return todo.Record{}, wrap("update", err)
	}

	// Re-read so the caller sees exactly what was persisted. A missing row
	// surfaces here as not-found.
	return s.Get(ctx, id)
}

// Remove deletes the todo with the given id and returns the number of rows
// deleted (0 or 1) so callers can distinguish a no-op from a real delete.
func (s *Store) Remove(ctx context.Context, id int64) (int64, error) {
	query, args, err := s.sb.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, wrap("delete", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrap("delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, wrap("delete", err)
	}

	s.log.Debug("deleted todos", "id", id, "rows", affected)
	return affected, nil
}
