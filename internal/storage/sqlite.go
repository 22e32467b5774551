// Package storage persists scores: a plain-text file for the single high
// score the game reads at startup, and a SQLite run history behind it for
// the scoreboard. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID         int64
	Score      int
	Difficulty string
	Duration   int // Seconds
	CreatedAt  time.Time
}

// RunStats contains aggregated statistics across runs.
type RunStats struct {
	Difficulty string // Empty for the all-difficulties aggregate
	RunCount   int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_difficulty ON runs(difficulty, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(score int, difficulty string, duration time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (score, difficulty, duration_secs) VALUES (?, ?, ?)",
		score, difficulty, int(duration.Seconds()),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best N runs, ordered by score descending.
// An empty difficulty matches every run.
func (s *Store) TopRuns(difficulty string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, score, difficulty, duration_secs, created_at
	          FROM runs ORDER BY score DESC LIMIT ?`
	args := []any{limit}
	if difficulty != "" {
		query = `SELECT id, score, difficulty, duration_secs, created_at
		         FROM runs WHERE difficulty = ? ORDER BY score DESC LIMIT ?`
		args = []any{difficulty, limit}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Difficulty, &r.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseDBTime(createdAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// HighScore returns the best score across all runs, or for one difficulty
// if given. Returns 0 if no runs exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	query := "SELECT MAX(score) FROM runs"
	args := []any{}
	if difficulty != "" {
		query = "SELECT MAX(score) FROM runs WHERE difficulty = ?"
		args = []any{difficulty}
	}

	var score sql.NullInt64
	if err := s.db.QueryRow(query, args...).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics per difficulty, keyed by difficulty
// name.
func (s *Store) Stats() (map[string]*RunStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM runs
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*RunStats)
	for rows.Next() {
		var st RunStats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.RunCount, &st.HighScore,
			&st.AvgScore, &st.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseDBTime(lastPlayed)
		stats[st.Difficulty] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearRuns deletes the entire run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseDBTime handles the driver returning datetimes as either time.Time
// or strings.
func parseDBTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
