// Package stats records finished and abandoned games in a small SQLite
// database so `freecell stats` can report totals and win rate.
package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DBFileName is the database filename inside the data directory.
const DBFileName = "stats.db"

// Seeds are stored as decimal strings: they are unsigned 64-bit values and
// SQLite integers are signed.
const schemaDDL = `CREATE TABLE IF NOT EXISTS games (
    game_id     TEXT PRIMARY KEY,
    seed        TEXT NOT NULL,
    started_at  TEXT NOT NULL,
    finished_at TEXT,
    won         INTEGER NOT NULL DEFAULT 0,
    moves       INTEGER NOT NULL DEFAULT 0
);`

// Store is an open statistics database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the statistics database at path. The
// parent directory is created if missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening stats db: %w", err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing stats schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordStart inserts a new game row and returns its id.
func (s *Store) RecordStart(seed uint64) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO games (game_id, seed, started_at) VALUES (?, ?, ?)`,
		id, strconv.FormatUint(seed, 10), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("recording game start: %w", err)
	}
	return id, nil
}

// RecordResult marks a game finished. Called with won=false when a game is
// abandoned for a new deal or on quit.
func (s *Store) RecordResult(id string, won bool, moves int) error {
	wonInt := 0
	if won {
		wonInt = 1
	}
	_, err := s.db.Exec(
		`UPDATE games SET finished_at = ?, won = ?, moves = ? WHERE game_id = ?`,
		time.Now().UTC().Format(time.RFC3339), wonInt, moves, id,
	)
	if err != nil {
		return fmt.Errorf("recording game result: %w", err)
	}
	return nil
}

// Summary aggregates the recorded games.
type Summary struct {
	Played int
	Won    int
}

// WinRate is the fraction of played games won, 0 when nothing was played.
func (sum Summary) WinRate() float64 {
	if sum.Played == 0 {
		return 0
	}
	return float64(sum.Won) / float64(sum.Played)
}

// Summary returns totals over all recorded games.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	row := s.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(won), 0) FROM games`)
	if err := row.Scan(&sum.Played, &sum.Won); err != nil {
		return Summary{}, fmt.Errorf("reading stats summary: %w", err)
	}
	return sum, nil
}
