// Package storage persists analysis runs in a local SQLite database so later
// runs can be compared against a baseline.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"harmonia/internal/harmony"
	"harmonia/internal/report"
)

// ErrNoRuns is returned when the database holds no saved runs yet.
var ErrNoRuns = errors.New("no saved runs")

// StoredRun is a persisted analysis run with its records.
type StoredRun struct {
	ID        int64
	Root      string
	CreatedAt time.Time
	Files     int
	Total     int
	Summary   report.Summary
	Records   []harmony.Record
}

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			root TEXT,
			created_at TIMESTAMP,
			files INTEGER,
			total INTEGER,
			summary JSON
		);`,
		`CREATE TABLE IF NOT EXISTS findings (
			run_id INTEGER,
			name TEXT,
			file TEXT,
			line INTEGER,
			distance REAL,
			severity TEXT,
			intent JSON,
			execution JSON,
			PRIMARY KEY (run_id, file, name, line)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_findings_run ON findings(run_id);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun persists a run and all its records, returning the run id.
func (s *SQLiteStore) SaveRun(ctx context.Context, run *report.Run) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	summary, err := json.Marshal(run.Summary)
	if err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (root, created_at, files, total, summary)
		VALUES (?, ?, ?, ?, ?)
	`, run.Root, time.Now().UTC(), run.Files, run.Total, summary)
	if err != nil {
		return 0, err
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO findings (run_id, name, file, line, distance, severity, intent, execution)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, file, name, line) DO NOTHING
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, rec := range run.Records() {
		intent, err := json.Marshal(rec.Intent)
		if err != nil {
			return 0, err
		}
		execution, err := json.Marshal(rec.Execution)
		if err != nil {
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx, runID, rec.Name, rec.File, rec.Line,
			rec.Distance, rec.Severity.String(), intent, execution); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// LatestRun loads the most recently saved run, or ErrNoRuns.
func (s *SQLiteStore) LatestRun(ctx context.Context) (*StoredRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, root, created_at, files, total, summary
		FROM runs ORDER BY id DESC LIMIT 1
	`)

	var run StoredRun
	var summary []byte
	if err := row.Scan(&run.ID, &run.Root, &run.CreatedAt, &run.Files, &run.Total, &summary); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRuns
		}
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	if err := json.Unmarshal(summary, &run.Summary); err != nil {
		return nil, fmt.Errorf("failed to decode run summary: %w", err)
	}

	records, err := s.loadRecords(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Records = records

	return &run, nil
}

func (s *SQLiteStore) loadRecords(ctx context.Context, runID int64) ([]harmony.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, file, line, distance, severity, intent, execution
		FROM findings WHERE run_id = ? ORDER BY file, line
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query findings: %w", err)
	}
	defer rows.Close()

	var records []harmony.Record
	for rows.Next() {
		var rec harmony.Record
		var severity string
		var intent, execution []byte
		if err := rows.Scan(&rec.Name, &rec.File, &rec.Line, &rec.Distance,
			&severity, &intent, &execution); err != nil {
			return nil, fmt.Errorf("failed to scan finding: %w", err)
		}
		rec.Severity = harmony.ParseSeverity(severity)
		if err := json.Unmarshal(intent, &rec.Intent); err != nil {
			return nil, fmt.Errorf("failed to decode intent: %w", err)
		}
		if err := json.Unmarshal(execution, &rec.Execution); err != nil {
			return nil, fmt.Errorf("failed to decode execution: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
