package benchmark

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"benchreport/internal/utils"

	"github.com/spf13/afero"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store defines the interface for storing benchmark runs.
type Store interface {
	Save(run Run) (int64, error)
	LoadLatest() (*Run, error)
	LoadAll() ([]Run, error)
	Close() error
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database at path, creating its directory, and
// applies migrations. The driver opens path itself, so the directory is
// created on the OS filesystem.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := utils.EnsureDir(afero.NewOsFs(), filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS results (
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		benchmark TEXT NOT NULL,
		mode TEXT NOT NULL,
		params TEXT NOT NULL,
		score REAL NOT NULL,
		score_error REAL NOT NULL,
		unit TEXT NOT NULL,
		PRIMARY KEY (run_id, position)
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save stores a run and its results in one transaction and returns the new
// run ID.
func (s *SQLiteStore) Save(run Run) (int64, error) {
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (source, created_at) VALUES (?, ?)`, run.Source, run.Timestamp.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`INSERT INTO results (run_id, position, benchmark, mode, params, score, score_error, unit) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i, r := range run.Results {
		if _, err := stmt.Exec(id, i, r.Benchmark, r.Mode, r.Params, r.Score, r.Error, r.Unit); err != nil {
			return 0, fmt.Errorf("failed to insert result %s: %w", r.Benchmark, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// LoadAll returns every run, oldest first.
func (s *SQLiteStore) LoadAll() ([]Run, error) {
	rows, err := s.db.Query(`SELECT id, source, created_at FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Source, &run.Timestamp); err != nil {
			rows.Close()
			return nil, err
		}
		runs = append(runs, run)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		results, err := s.loadResults(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Results = results
	}
	return runs, nil
}

// LoadLatest returns the most recent run, or nil when none was saved.
func (s *SQLiteStore) LoadLatest() (*Run, error) {
	var run Run
	err := s.db.QueryRow(`SELECT id, source, created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`).
		Scan(&run.ID, &run.Source, &run.Timestamp)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	run.Results, err = s.loadResults(run.ID)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (s *SQLiteStore) loadResults(runID int64) ([]Result, error) {
	rows, err := s.db.Query(`SELECT benchmark, mode, params, score, score_error, unit FROM results WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Benchmark, &r.Mode, &r.Params, &r.Score, &r.Error, &r.Unit); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// LatestPair returns the two most recent runs. prev is nil when fewer than
// two runs exist.
func LatestPair(s Store) (prev, curr *Run, err error) {
	runs, err := s.LoadAll()
	if err != nil {
		return nil, nil, err
	}
	switch n := len(runs); n {
	case 0:
		return nil, nil, nil
	case 1:
		return nil, &runs[0], nil
	default:
		return &runs[n-2], &runs[n-1], nil
	}
}
