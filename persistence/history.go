// Package persistence keeps the explorer's state that outlives a
// single run, currently the recently opened files.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// RecentFile is one row of the open-file history.
type RecentFile struct {
	Path       string
	Language   string
	OpenCount  int
	LastOpened time.Time
}

// HistoryStore persists recently opened files in a SQLite database.
type HistoryStore struct {
	db *sql.DB
}

// OpenHistory opens/creates the database at dbPath.
func OpenHistory(dbPath string) (*HistoryStore, error) {
	if dbPath == "" {
		return nil, errors.New("history path required")
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	store := &HistoryStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *HistoryStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS recent_files (
		path TEXT PRIMARY KEY,
		language TEXT,
		open_count INTEGER NOT NULL DEFAULT 0,
		last_opened TIMESTAMP NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the underlying database handle.
func (s *HistoryStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Touch upserts a file into the history, bumping its open count and
// timestamp.
func (s *HistoryStore) Touch(ctx context.Context, path, language string) error {
	if path == "" {
		return errors.New("path required")
	}
	query := `
	INSERT INTO recent_files (path, language, open_count, last_opened)
	VALUES (?, ?, 1, ?)
	ON CONFLICT(path) DO UPDATE SET
		language=excluded.language,
		open_count=recent_files.open_count+1,
		last_opened=excluded.last_opened
	`
	_, err := s.db.ExecContext(ctx, query, path, language, time.Now().UTC())
	return err
}

// Recent returns the most recently opened files, newest first.
func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]RecentFile, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `SELECT path, language, open_count, last_opened
		FROM recent_files ORDER BY last_opened DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecent(rows)
}

// Forget removes a file from the history.
func (s *HistoryStore) Forget(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM recent_files WHERE path = ?`, path)
	return err
}

func scanRecent(rows *sql.Rows) ([]RecentFile, error) {
	results := make([]RecentFile, 0)
	for rows.Next() {
		var rf RecentFile
		if err := rows.Scan(&rf.Path, &rf.Language, &rf.OpenCount, &rf.LastOpened); err != nil {
			return nil, err
		}
		results = append(results, rf)
	}
	return results, rows.Err()
}
