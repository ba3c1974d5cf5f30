// Package store keeps the practice history in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/ttypr/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY,
		started_at TEXT NOT NULL,
		ended_at TEXT NOT NULL,
		mode INTEGER NOT NULL,
		correct_nonspace INTEGER NOT NULL,
		incorrect_nonspace INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS session_char_stats (
		session_id INTEGER NOT NULL REFERENCES sessions(id),
		char TEXT NOT NULL,
		correct INTEGER NOT NULL,
		incorrect INTEGER NOT NULL,
		PRIMARY KEY (session_id, char)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
}

// Store is the run history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and brings its schema up to date.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			if cerr := db.Close(); cerr != nil {
				_ = cerr
			}
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertSession stores a finished run and its per-character counts in one
// transaction and returns the new run id.
func (s *Store) InsertSession(ctx context.Context, run model.SessionStats, chars []model.CharStats) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rerr := tx.Rollback(); rerr != nil {
			_ = rerr
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (started_at, ended_at, mode, correct_nonspace, incorrect_nonspace, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.EndedAt.UTC().Format(time.RFC3339Nano),
		int(run.Mode),
		run.CorrectNonSpace,
		run.IncorrectNonSpace,
		run.DurationMs,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert session: %w", err)
	}
	if id, err = res.LastInsertId(); err != nil {
		return 0, fmt.Errorf("failed to read session id: %w", err)
	}
	for _, cs := range chars {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO session_char_stats (session_id, char, correct, incorrect) VALUES (?, ?, ?, ?)`,
			id, cs.Char, cs.Correct, cs.Incorrect,
		); err != nil {
			return 0, fmt.Errorf("failed to insert char stats: %w", err)
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit session: %w", err)
	}
	return id, nil
}

// ListSessions returns every stored run, oldest first.
func (s *Store) ListSessions(ctx context.Context) ([]model.SessionAggregate, error) {
	return query(ctx, s.db,
		`SELECT id, ended_at, mode, correct_nonspace, incorrect_nonspace, duration_ms
		 FROM sessions ORDER BY ended_at ASC, id ASC`,
		func(rows *sql.Rows) (model.SessionAggregate, error) {
			var (
				agg     model.SessionAggregate
				endedAt string
				mode    int
			)
			if err := rows.Scan(&agg.SessionID, &endedAt, &mode, &agg.Correct, &agg.Incorrect, &agg.DurationMs); err != nil {
				return agg, err
			}
			parsed, err := time.Parse(time.RFC3339Nano, endedAt)
			if err != nil {
				return agg, fmt.Errorf("bad ended_at %q: %w", endedAt, err)
			}
			agg.EndedAt = parsed
			agg.Mode = model.Mode(mode)
			return agg, nil
		})
}

// ListCharAggregates sums the per-character counts of every stored run.
func (s *Store) ListCharAggregates(ctx context.Context) ([]model.CharAggregate, error) {
	return query(ctx, s.db,
		`SELECT char, SUM(correct), SUM(incorrect)
		 FROM session_char_stats GROUP BY char ORDER BY char`,
		func(rows *sql.Rows) (model.CharAggregate, error) {
			var agg model.CharAggregate
			err := rows.Scan(&agg.Char, &agg.Correct, &agg.Incorrect)
			return agg, err
		})
}

func query[T any](ctx context.Context, db *sql.DB, q string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			_ = cerr
		}
	}()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return out, nil
}
