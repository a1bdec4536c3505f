package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Open connects to PostgreSQL and verifies the connection. Returns nil if the
// URL is empty (postgres not configured; callers fall back to the in-memory
// store).
func Open(url string) (*sql.DB, error) {
	if url == "" {
		return nil, nil
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return db, nil
}

// Schema is the full DDL for the service. EnsureSchema applies it on startup;
// every statement is idempotent so repeated boots are safe.
const Schema = `
CREATE TABLE IF NOT EXISTS registrations (
	id          UUID PRIMARY KEY,
	seq         BIGSERIAL,
	last_name   TEXT NOT NULL DEFAULT '',
	first_name  TEXT NOT NULL DEFAULT '',
	email       TEXT NOT NULL,
	submitted_at TIMESTAMPTZ NOT NULL,
	status      TEXT NOT NULL,
	reg_type    TEXT NOT NULL DEFAULT '',
	proof_ref   TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS registrations_email_idx ON registrations (lower(email));
CREATE INDEX IF NOT EXISTS registrations_submitted_idx ON registrations (submitted_at DESC, seq DESC);

CREATE TABLE IF NOT EXISTS whitelist (
	email      TEXT PRIMARY KEY,
	last_name  TEXT NOT NULL DEFAULT '',
	first_name TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
