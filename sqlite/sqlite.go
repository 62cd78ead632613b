// Package sqlite provides a SQLite index of the coding standards and a
// pystandards.StandardService that reads from it.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait up to 5 seconds on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL is unavailable for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Child rows are removed through ON DELETE CASCADE.
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// Stats returns database statistics.
func (db *DB) Stats() sql.DBStats {
	return db.db.Stats()
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			content_hash TEXT NOT NULL DEFAULT '',
			indexed_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS guidelines (
			category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (category_id, position)
		);

		CREATE TABLE IF NOT EXISTS examples (
			id TEXT PRIMARY KEY,
			category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			code TEXT NOT NULL DEFAULT '',
			good_example TEXT NOT NULL DEFAULT '',
			bad_example TEXT NOT NULL DEFAULT '',
			field_order TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS commands (
			example_id TEXT NOT NULL REFERENCES examples(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			task TEXT NOT NULL,
			command TEXT NOT NULL,
			PRIMARY KEY (example_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_categories_position ON categories(position);
		CREATE INDEX IF NOT EXISTS idx_examples_category_id ON examples(category_id);
	`

	_, err := db.db.Exec(schema)
	return err
}
