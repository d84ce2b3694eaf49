// Package storage keeps a ledger of finished sessions in an in-memory SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Nothing is written to disk; the ledger lives as long as the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Ledger records finished sessions for the current process run.
type Ledger struct {
	db *sql.DB
}

// Run is one finished session.
type Run struct {
	ID        int64
	Mode      string
	Score     int
	Ordinary  int // Ordinary coins collected
	Premium   int // Premium coins collected
	Ticks     int // Ticks played
	Won       bool
	CreatedAt time.Time
}

// Open creates an empty in-memory ledger.
func Open() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	ledger := &Ledger{db: db}

	if err := ledger.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return ledger, nil
}

// migrate creates the schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			ordinary INTEGER NOT NULL DEFAULT 0,
			premium INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the ledger.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// RecordRun stores a finished session.
// Returns the ID of the inserted record.
func (l *Ledger) RecordRun(run Run) (int64, error) {
	result, err := l.db.Exec(
		"INSERT INTO runs (mode, score, ordinary, premium, ticks, won) VALUES (?, ?, ?, ?, ?, ?)",
		run.Mode, run.Score, run.Ordinary, run.Premium, run.Ticks, run.Won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs for the given mode.
// Results are ordered by score descending, then by insertion order.
func (l *Ledger) TopRuns(mode string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.Query(
		`SELECT id, mode, score, ordinary, premium, ticks, won, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Mode, &r.Score, &r.Ordinary, &r.Premium, &r.Ticks, &r.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest recorded score for the given mode.
// Returns 0 if no runs exist.
func (l *Ledger) BestScore(mode string) (int, error) {
	var score sql.NullInt64
	err := l.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats contains aggregated statistics for one mode.
type Stats struct {
	Mode     string
	Runs     int
	Wins     int
	Best     int
	AvgScore float64
	Ordinary int // Total ordinary coins over all runs
	Premium  int // Total premium coins over all runs
	Ticks    int // Total ticks played
}

// Stats retrieves aggregated statistics for the given mode.
func (l *Ledger) Stats(mode string) (*Stats, error) {
	stats := &Stats{Mode: mode}

	err := l.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(ordinary), 0), COALESCE(SUM(premium), 0), COALESCE(SUM(ticks), 0)
		 FROM runs WHERE mode = ?`,
		mode,
	).Scan(&stats.Runs, &stats.Wins, &stats.Best, &stats.AvgScore, &stats.Ordinary, &stats.Premium, &stats.Ticks)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
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
