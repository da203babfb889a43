// Package sqlite provides a SQLite-backed catalog store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/media"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
	section     TEXT    NOT NULL,
	name        TEXT    NOT NULL,
	kind        TEXT    NOT NULL,
	size        INTEGER NOT NULL DEFAULT 0,
	mod_time    TEXT    NOT NULL DEFAULT '',
	orientation INTEGER NOT NULL DEFAULT 0,
	taken_at    TEXT    NOT NULL DEFAULT '',
	scanned_at  TEXT    NOT NULL,
	PRIMARY KEY (section, name)
);
`

const timeLayout = time.RFC3339Nano

// SQLiteStorage stores the catalog in a SQLite database.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage creates a SQLite-backed storage at the provided path.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return storage, nil
}

func (s *SQLiteStorage) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}
	return nil
}

// Close closes the underlying SQLite connection.
func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Replace swaps the listing of section inside one transaction.
func (s *SQLiteStorage) Replace(ctx context.Context, section media.Section, entries []media.Entry) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite storage: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM entries WHERE section = ?`, string(section)); err != nil {
		return fmt.Errorf("sqlite storage: clear %s: %w", section, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries
		(section, name, kind, size, mod_time, orientation, taken_at, scanned_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite storage: prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(timeLayout)
	for _, e := range entries {
		if _, err = stmt.ExecContext(ctx,
			string(section), e.Name, e.Kind.String(), e.Size,
			formatTime(e.ModTime), e.Orientation, formatTime(e.TakenAt), now,
		); err != nil {
			return fmt.Errorf("sqlite storage: insert %s: %w", e.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sqlite storage: commit: %w", err)
	}
	return nil
}

// List returns the entries of section sorted by name.
func (s *SQLiteStorage) List(ctx context.Context, section media.Section) ([]media.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, size, mod_time, orientation, taken_at
		FROM entries WHERE section = ? ORDER BY name`, string(section))
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list %s: %w", section, err)
	}
	defer rows.Close()

	var entries []media.Entry
	for rows.Next() {
		var (
			e                media.Entry
			modTime, takenAt string
		)
		if err := rows.Scan(&e.Name, &e.Size, &modTime, &e.Orientation, &takenAt); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan row: %w", err)
		}
		e.Section = section
		e.Kind = media.Classify(e.Name)
		e.ModTime = parseTime(modTime)
		e.TakenAt = parseTime(takenAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: iterate rows: %w", err)
	}
	return entries, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
