// ============================================================================
// boolex - Boolean logic toolkit
// ============================================================================
//
// Package:     history
// Description: SQLite store for processed expressions with JSON lines
//              export and import
// Author:      msto63
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/boolex/foundation/core/error"
	mdwlog "github.com/msto63/boolex/foundation/core/log"
)

// Config holds configuration for the SQLite store
type Config struct {
	Path   string
	Logger *mdwlog.Logger
}

// ListOptions filters List
type ListOptions struct {
	Limit  int  // 0 lists everything
	Unique bool // keep only the newest entry per digest
}

// Store persists expression history in SQLite
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	logger *mdwlog.Logger
}

// Open creates the directory and schema if needed and opens the store
func Open(cfg Config) (*Store, error) {
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, dbError(err, "failed to create directory", "history.Open")
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError(err, "failed to open database", "history.Open")
	}

	store := &Store{
		db:     db,
		logger: cfg.Logger.WithField("component", "history"),
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema", "history.Open")
	}

	store.logger.Debug("History store opened", mdwlog.Fields{"path": cfg.Path})
	return store, nil
}

// initSchema creates the necessary tables
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		source TEXT NOT NULL,
		digest TEXT NOT NULL,
		variables TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		true_rows INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_history_digest ON history(digest);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores an entry, assigning a UUID and timestamp when missing
func (s *Store) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (id, created_at, source, digest, variables, row_count, true_rows)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.CreatedAt, entry.Source, entry.Digest, entry.Variables, entry.Rows, entry.TrueRows)
	if err != nil {
		return dbError(err, "failed to insert history entry", "history.Record").WithDetail("id", entry.ID)
	}

	s.logger.Debug("Expression recorded", mdwlog.Fields{"id": entry.ID, "digest": entry.Digest[:min(12, len(entry.Digest))]})
	return nil
}

// List returns entries newest first
func (s *Store) List(ctx context.Context, opts ListOptions) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, created_at, source, digest, variables, row_count, true_rows FROM history h`
	var args []interface{}

	if opts.Unique {
		query += ` WHERE h.rowid = (
			SELECT rowid FROM history WHERE digest = h.digest
			ORDER BY created_at DESC, rowid DESC LIMIT 1
		)`
	}

	query += " ORDER BY created_at DESC, rowid DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	return s.query(ctx, "history.List", query, args...)
}

// Get returns the entry with the given id
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.query(ctx, "history.Get",
		`SELECT id, created_at, source, digest, variables, row_count, true_rows FROM history WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, mdwerror.New("history entry not found").
			WithCode(mdwerror.CodeNotFound).
			WithDetail("id", id).
			WithOperation("history.Get")
	}
	return entries[0], nil
}

// Count returns the number of stored entries
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, dbError(err, "failed to count history", "history.Count")
	}
	return n, nil
}

// Clear removes every entry and returns how many were deleted
func (s *Store) Clear(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, dbError(err, "failed to clear history", "history.Clear")
	}
	deleted, _ := result.RowsAffected()

	s.logger.Info("History cleared", mdwlog.Fields{"deleted": deleted})
	return deleted, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// query runs a select with the standard column list; callers hold the lock
func (s *Store) query(ctx context.Context, op, query string, args ...interface{}) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to query history", op)
	}
	defer rows.Close()

	entries := []*Entry{}
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.CreatedAt, &entry.Source, &entry.Digest,
			&entry.Variables, &entry.Rows, &entry.TrueRows); err != nil {
			return nil, dbError(err, "failed to scan history entry", op)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to read history", op)
	}

	return entries, nil
}

func dbError(err error, msg, op string) *mdwerror.Error {
	return mdwerror.Wrap(err, msg).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation(op)
}
