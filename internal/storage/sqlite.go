// Package storage provides SQLite-based persistence for play sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session statistics.
type Store struct {
	db *sql.DB
}

// Session is one finished board: how many gestures were made on it.
// Board contents are not persisted.
type Session struct {
	ID        int64
	GameID    string
	Username  string // SSH user, or empty for local play
	PickUps   int
	Swaps     int
	Reverts   int
	StartedAt time.Time
	EndedAt   time.Time
	CreatedAt time.Time
}

// Duration returns how long the session lasted.
func (s Session) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// started_at and ended_at hold Unix milliseconds.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			username TEXT NOT NULL DEFAULT '',
			pickups INTEGER NOT NULL DEFAULT 0,
			swaps INTEGER NOT NULL DEFAULT 0,
			reverts INTEGER NOT NULL DEFAULT 0,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_username ON sessions(username);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.GameID == "" {
		return 0, errors.New("storage: session has no game id")
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (game_id, username, pickups, swaps, reverts, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.GameID, sess.Username, sess.PickUps, sess.Swaps, sess.Reverts,
		sess.StartedAt.UnixMilli(), sess.EndedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the latest sessions, newest first.
// An empty gameID matches every variant.
func (s *Store) RecentSessions(gameID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, username, pickups, swaps, reverts, started_at, ended_at, created_at
		 FROM sessions
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var e Session
		var started, ended int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Username, &e.PickUps, &e.Swaps, &e.Reverts,
			&started, &ended, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.StartedAt = time.UnixMilli(started)
		e.EndedAt = time.UnixMilli(ended)
		e.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// ClearSessions deletes all sessions for the given variant.
func (s *Store) ClearSessions(gameID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a variant.
type GameStats struct {
	GameID       string
	SessionCount int
	PickUps      int
	Swaps        int
	Reverts      int
	LastPlayed   time.Time
}

// SwapRate returns the share of releases that committed a swap.
func (g GameStats) SwapRate() float64 {
	total := g.Swaps + g.Reverts
	if total == 0 {
		return 0
	}
	return float64(g.Swaps) / float64(total)
}

// GetGameStats retrieves aggregated statistics for a specific variant.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastEnded int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(pickups), 0), COALESCE(SUM(swaps), 0),
		        COALESCE(SUM(reverts), 0), COALESCE(MAX(ended_at), 0)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.SessionCount, &stats.PickUps, &stats.Swaps, &stats.Reverts, &lastEnded)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	if lastEnded > 0 {
		stats.LastPlayed = time.UnixMilli(lastEnded)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all variants that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), SUM(pickups), SUM(swaps), SUM(reverts), MAX(ended_at)
		 FROM sessions
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var g GameStats
		var lastEnded int64
		if err := rows.Scan(&g.GameID, &g.SessionCount, &g.PickUps, &g.Swaps, &g.Reverts, &lastEnded); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		g.LastPlayed = time.UnixMilli(lastEnded)
		stats[g.GameID] = &g
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime converts a DATETIME column value; the driver may return
// either time.Time or a string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
