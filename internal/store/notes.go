package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a note does not exist.
var ErrNotFound = errors.New("note not found")

// ErrEmptyNote is returned when adding a note without text.
var ErrEmptyNote = errors.New("note body is empty")

// Note is a single stored note.
type Note struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Add stores a new note and returns it.
func (db *DB) Add(ctx context.Context, body string) (Note, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return Note{}, ErrEmptyNote
	}

	n := Note{
		ID:        uuid.New().String(),
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO notes (id, body, created_at)
		VALUES (?, ?, ?)
	`, n.ID, n.Body, formatTime(n.CreatedAt))
	if err != nil {
		return Note{}, fmt.Errorf("insert note: %w", err)
	}
	return n, nil
}

// Get returns the note with the given ID.
func (db *DB) Get(ctx context.Context, id string) (Note, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.conn.QueryRowContext(ctx, `SELECT id, body, created_at FROM notes WHERE id = ?`, id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Note{}, ErrNotFound
	}
	return n, err
}

// List returns all notes, newest first.
func (db *DB) List(ctx context.Context) ([]Note, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, body, created_at FROM notes
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Delete removes the note with the given ID.
func (db *DB) Delete(ctx context.Context, id string) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	res, err := db.conn.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (Note, error) {
	var (
		n       Note
		created string
	)
	if err := s.Scan(&n.ID, &n.Body, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Note{}, err
		}
		return Note{}, fmt.Errorf("scan note: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Note{}, fmt.Errorf("parse created_at: %w", err)
	}
	n.CreatedAt = t
	return n, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
