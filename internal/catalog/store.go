// Package catalog keeps a SQLite history of export verification runs.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/cstexports/internal/verify"
)

// DefaultRecentLimit caps RecentRuns when no positive limit is given.
const DefaultRecentLimit = 20

// Run is one recorded verification.
type Run struct {
	ID           string // UUID assigned by RecordRun
	Project      string
	Root         string
	ManifestPath string
	Expected     int
	Found        int
	Missing      int
	Unexpected   int
	MissingNames []string
	RecordedAt   time.Time
}

// Complete reports whether the run found every expected export.
func (r *Run) Complete() bool {
	return r.Missing == 0
}

// NewRun summarizes a verification result for recording.
func NewRun(res *verify.Result, root, manifestPath string) *Run {
	return &Run{
		Project:      res.Project,
		Root:         root,
		ManifestPath: manifestPath,
		Expected:     res.Expected(),
		Found:        len(res.Found),
		Missing:      len(res.Missing),
		Unexpected:   len(res.Unexpected),
		MissingNames: append([]string(nil), res.Missing...),
	}
}

// Store manages the SQLite catalog database
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the catalog at dbPath and applies
// pending migrations. ":memory:" opens a private in-memory database.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		// Each connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA busy_timeout=5000", // Must be first
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if err := execWithRetry(db, pragma, 5, 10*time.Millisecond); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	store := &Store{db: db, dbPath: dbPath}
	if err := store.ApplyMigrations(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return store, nil
}

// execWithRetry executes a statement with exponential backoff on lock errors.
func execWithRetry(db *sql.DB, stmt string, maxRetries int, baseDelay time.Duration) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := db.Exec(stmt)
		if err == nil {
			return nil
		}
		if !strings.Contains(err.Error(), "database is locked") {
			return err
		}
		lastErr = err
		time.Sleep(baseDelay * time.Duration(1<<attempt))
	}
	return lastErr
}

// Path returns the database path the store was opened with.
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores run, assigning a new UUID and, when unset, the current
// time as RecordedAt.
func (s *Store) RecordRun(ctx context.Context, run *Run) error {
	if run.RecordedAt.IsZero() {
		run.RecordedAt = time.Now()
	}
	// Stored as text; a single zone keeps ORDER BY chronological
	run.RecordedAt = run.RecordedAt.UTC()

	missingJSON := "[]"
	if len(run.MissingNames) > 0 {
		data, err := json.Marshal(run.MissingNames)
		if err != nil {
			return fmt.Errorf("marshal missing names: %w", err)
		}
		missingJSON = string(data)
	}

	id := uuid.New().String()
	query := `INSERT INTO verify_runs
		(id, project, root, manifest_path, expected, found, missing, unexpected, missing_names, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		id,
		run.Project,
		run.Root,
		run.ManifestPath,
		run.Expected,
		run.Found,
		run.Missing,
		run.Unexpected,
		missingJSON,
		run.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("insert verify run: %w", err)
	}

	run.ID = id
	return nil
}

// RecentRuns returns up to limit runs, newest first. An empty project
// returns runs of every project; limit <= 0 means DefaultRecentLimit.
func (s *Store) RecentRuns(ctx context.Context, project string, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	query := `SELECT id, project, root, manifest_path, expected, found, missing, unexpected, missing_names, recorded_at
		FROM verify_runs
		WHERE (? = '' OR project = ?)
		ORDER BY recorded_at DESC, seq DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, project, project, limit)
	if err != nil {
		return nil, fmt.Errorf("query verify runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		var root, manifestPath, missingNames sql.NullString
		err := rows.Scan(
			&run.ID,
			&run.Project,
			&root,
			&manifestPath,
			&run.Expected,
			&run.Found,
			&run.Missing,
			&run.Unexpected,
			&missingNames,
			&run.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan verify run: %w", err)
		}

		run.Root = root.String
		run.ManifestPath = manifestPath.String
		if missingNames.Valid && missingNames.String != "" {
			if err := json.Unmarshal([]byte(missingNames.String), &run.MissingNames); err != nil {
				return nil, fmt.Errorf("unmarshal missing names: %w", err)
			}
		}

		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate verify runs: %w", err)
	}

	return runs, nil
}
