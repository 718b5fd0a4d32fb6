// Package store backs the note store service with a SQLite file: one table,
// filename to blob, last writer wins.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var ErrNotFound = errors.New("file not found")

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store database: %w", err)
	}

	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS files (
		name text not null primary key,
		body blob not null,
		updated_at timestamp not null
		)`,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create files table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// List returns every stored filename. Order is display order only; callers
// must not read meaning into it.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM files ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan file name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file names: %w", err)
	}
	return names, nil
}

// Get returns the blob stored under name, or ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM files WHERE name = ?`, name,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %q: %w", name, err)
	}
	return body, nil
}

// Put stores body under name, overwriting any previous blob.
func (s *Store) Put(ctx context.Context, name, body string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO files(name, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		name, body, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to put %q: %w", name, err)
	}
	return nil
}
