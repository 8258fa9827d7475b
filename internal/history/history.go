// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history provides local recording of analysis runs.
//
// Every successful project analysis is summarized into a row in a
// SQLite database under ~/.splasp/, so the user can review past runs
// without the backend. Recording is best-effort: a history failure
// never fails the analysis itself.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrClosed   = errors.New("history store closed")
	ErrNotFound = errors.New("analysis run not found")
)

// =============================================================================
// RUN TYPE
// =============================================================================

// Run is a recorded analysis run.
type Run struct {
	ID        int64
	Filename  string
	SessionID string

	// Result summary
	ProjectLevel      string
	BlockCount        int
	TotalScripts      int
	DuplicateScripts  int
	TotalCombinations int
	DeadFeatures      int

	CreatedAt time.Time
}

// =============================================================================
// HISTORY STORE
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS analysis_runs (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	filename           TEXT NOT NULL,
	session_id         TEXT NOT NULL DEFAULT '',
	project_level      TEXT NOT NULL DEFAULT '',
	block_count        INTEGER NOT NULL DEFAULT 0,
	total_scripts      INTEGER NOT NULL DEFAULT 0,
	duplicate_scripts  INTEGER NOT NULL DEFAULT 0,
	total_combinations INTEGER NOT NULL DEFAULT 0,
	dead_features      INTEGER NOT NULL DEFAULT 0,
	created_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_created ON analysis_runs(created_at DESC);
`

// Store records analysis runs in a SQLite database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default history database location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".splasp", "history.db"), nil
}

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// =============================================================================
// RECORD / QUERY
// =============================================================================

// Record inserts a run and returns its assigned ID.
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	if s.db == nil {
		return 0, ErrClosed
	}

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO analysis_runs
			(filename, session_id, project_level, block_count, total_scripts,
			 duplicate_scripts, total_combinations, dead_features, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Filename, run.SessionID, run.ProjectLevel, run.BlockCount,
		run.TotalScripts, run.DuplicateScripts, run.TotalCombinations,
		run.DeadFeatures, createdAt)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit runs, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, session_id, project_level, block_count,
		       total_scripts, duplicate_scripts, total_combinations,
		       dead_features, created_at
		FROM analysis_runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Filename, &r.SessionID, &r.ProjectLevel,
			&r.BlockCount, &r.TotalScripts, &r.DuplicateScripts,
			&r.TotalCombinations, &r.DeadFeatures, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Get returns a single run by ID.
func (s *Store) Get(ctx context.Context, id int64) (Run, error) {
	if s.db == nil {
		return Run{}, ErrClosed
	}

	var r Run
	err := s.db.QueryRowContext(ctx, `
		SELECT id, filename, session_id, project_level, block_count,
		       total_scripts, duplicate_scripts, total_combinations,
		       dead_features, created_at
		FROM analysis_runs WHERE id = ?`, id).
		Scan(&r.ID, &r.Filename, &r.SessionID, &r.ProjectLevel,
			&r.BlockCount, &r.TotalScripts, &r.DuplicateScripts,
			&r.TotalCombinations, &r.DeadFeatures, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to load run: %w", err)
	}
	return r, nil
}

// Clear removes all recorded runs.
func (s *Store) Clear(ctx context.Context) error {
	if s.db == nil {
		return ErrClosed
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM analysis_runs")
	return err
}
