// Package duckdb persists validation run history.
// Runs are recorded in DuckDB (queryable, append-only).
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection for the validation run history.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS validation_runs (
		run_at TIMESTAMP,
		path VARCHAR,
		file_size BIGINT,
		strict BOOLEAN,
		passed BOOLEAN,
		violation_count INTEGER,
		violations VARCHAR
	)`)
	return err
}

// Run is one recorded validation run.
type Run struct {
	RunAt          time.Time
	Path           string
	FileSize       int64
	Strict         bool
	Passed         bool
	ViolationCount int
	Violations     []string // formatted violation lines, capped at maxStoredViolations
}

// maxStoredViolations caps how many violation lines are persisted per run.
const maxStoredViolations = 20

// RecordRun appends a run to the history.
func (s *Store) RecordRun(run Run) error {
	stored := run.Violations
	if len(stored) > maxStoredViolations {
		stored = stored[:maxStoredViolations]
	}

	_, err := s.db.Exec(
		`INSERT INTO validation_runs VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunAt, run.Path, run.FileSize, run.Strict, run.Passed,
		run.ViolationCount, strings.Join(stored, "\n"),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT run_at, path, file_size, strict, passed, violation_count, violations
		 FROM validation_runs ORDER BY run_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var violations string
		if err := rows.Scan(&r.RunAt, &r.Path, &r.FileSize, &r.Strict,
			&r.Passed, &r.ViolationCount, &violations); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if violations != "" {
			r.Violations = strings.Split(violations, "\n")
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// StatFile returns the size of a file for run records, 0 when unknown
// (e.g. stdin).
func StatFile(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
