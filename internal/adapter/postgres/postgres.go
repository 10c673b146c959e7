package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"healthlog/internal/domain"
)

// DB wraps a *sql.DB and implements the domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// New wraps an existing *sql.DB without running migrations. Used by tests.
func New(s *sql.DB) *DB {
	return &DB{sql: s}
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			age INT CHECK (age >= 0),
			height NUMERIC(5,2) CHECK (height >= 0))`,
		`CREATE TABLE IF NOT EXISTS methods (
			id BIGSERIAL PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			description TEXT)`,
		`CREATE TABLE IF NOT EXISTS adds (
			id BIGSERIAL PRIMARY KEY,
			image_link TEXT NOT NULL,
			target_link TEXT NOT NULL,
			counter BIGINT NOT NULL DEFAULT 0)`,
		`CREATE TABLE IF NOT EXISTS weights (
			id BIGSERIAL PRIMARY KEY,
			date DATE NOT NULL,
			value NUMERIC(10,2) NOT NULL,
			method_id BIGINT REFERENCES methods(id) ON DELETE RESTRICT,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE)`,
		`CREATE TABLE IF NOT EXISTS heartbeats (
			id BIGSERIAL PRIMARY KEY,
			date DATE NOT NULL,
			value NUMERIC(10,2) NOT NULL,
			method_id BIGINT REFERENCES methods(id) ON DELETE RESTRICT,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE)`,
		`CREATE TABLE IF NOT EXISTS steps (
			id BIGSERIAL PRIMARY KEY,
			date DATE NOT NULL,
			value NUMERIC(10,2) NOT NULL,
			method_id BIGINT REFERENCES methods(id) ON DELETE RESTRICT,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE)`,
		"CREATE INDEX IF NOT EXISTS idx_weights_user_id ON weights(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_heartbeats_user_id ON heartbeats(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_steps_user_id ON steps(user_id)",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// storageErr wraps a driver failure so handlers never see raw driver text.
func storageErr(op string, err error) error {
	return &domain.StorageError{Op: op, Err: err}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
