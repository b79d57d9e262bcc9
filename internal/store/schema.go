package store

import (
	"context"
	"fmt"
)

const (
	schemaSQLite = `CREATE TABLE IF NOT EXISTS todos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL,
	completed INTEGER DEFAULT 0,
	created_at INTEGER NOT NULL
)`

	schemaPostgres = `CREATE TABLE IF NOT EXISTS todos (
	id BIGSERIAL PRIMARY KEY,
	text TEXT NOT NULL,
	completed INTEGER DEFAULT 0,
	created_at BIGINT NOT NULL
)`
)

// InitSchema creates the todos table if it does not exist. It is safe to run
// on every startup.
func (s *Store) InitSchema(ctx context.Context) error {
	ddl := schemaSQLite
	if s.db.DriverName() == "postgres" {
		ddl = schemaPostgres
	}

	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return wrap("init schema", fmt.Errorf("create todos table: %w", err))
	}

	s.log.Info("database initialized")
	return nil
}
