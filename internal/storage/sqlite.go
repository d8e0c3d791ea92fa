// Package storage provides SQLite-based persistence for finished match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a match ID has no stored result.
var ErrNotFound = errors.New("storage: result not found")

// Winner values stored with each result.
const (
	WinnerPlayer   = "player"
	WinnerOpponent = "opponent"
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the results log.
type Store struct {
	db *sql.DB
}

// Result is one finished match.
type Result struct {
	ID        int64
	MatchID   string // UUID, generated on save when empty
	GameID    string
	Player    string
	Winner    string // WinnerPlayer or WinnerOpponent
	Shots     int    // Shots fired by the player
	Hits      int    // Player shots that hit
	Score     int
	CreatedAt time.Time
}

// Won returns true if the player won the match.
func (r Result) Won() bool {
	return r.Winner == WinnerPlayer
}

// Accuracy returns the player's hit ratio in [0, 1].
func (r Result) Accuracy() float64 {
	if r.Shots == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Shots)
}

// GameStats aggregates results for one game mode.
type GameStats struct {
	GameID     string
	Played     int
	Wins       int
	HighScore  int
	BestShots  int // Fewest shots in a win, 0 without wins
	LastPlayed time.Time
}

// Losses returns the number of matches the player lost.
func (g GameStats) Losses() int {
	return g.Played - g.Wins
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			winner TEXT NOT NULL,
			shots INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(game_id, score DESC);
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

// SaveResult records a finished match and returns it with ID and MatchID set.
func (s *Store) SaveResult(r Result) (Result, error) {
	if r.Winner != WinnerPlayer && r.Winner != WinnerOpponent {
		return r, fmt.Errorf("storage: invalid winner %q", r.Winner)
	}
	if r.MatchID == "" {
		r.MatchID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (match_id, game_id, player, winner, shots, hits, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.GameID, r.Player, r.Winner, r.Shots, r.Hits, r.Score,
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save result: %w", err)
	}

	r.ID, err = res.LastInsertId()
	if err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return r, nil
}

// ResultByMatchID retrieves a single result.
func (s *Store) ResultByMatchID(matchID string) (Result, error) {
	row := s.db.QueryRow(
		`SELECT id, match_id, game_id, player, winner, shots, hits, score, created_at
		 FROM results WHERE match_id = ?`,
		matchID,
	)

	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, fmt.Errorf("%w: %s", ErrNotFound, matchID)
	}
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return r, nil
}

// TopResults retrieves the N best scores for the given game.
// Ties keep the order in which they were recorded.
func (s *Store) TopResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryResults(
		`SELECT id, match_id, game_id, player, winner, shots, hits, score, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentResults retrieves the N most recent results, newest first.
// An empty gameID includes every game.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryResults(
		`SELECT id, match_id, game_id, player, winner, shots, hits, score, created_at
		 FROM results
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
}

// HighScore returns the highest score for the given game.
// Returns 0 if no results exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for a specific game.
func (s *Store) Stats(gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(MIN(CASE WHEN winner = ? THEN shots END), 0),
		        MAX(created_at)
		 FROM results WHERE game_id = ?`,
		WinnerPlayer, WinnerPlayer, gameID,
	).Scan(&stats.Played, &stats.Wins, &stats.HighScore, &stats.BestShots, &lastPlayed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllStats retrieves statistics for every game that has results.
func (s *Store) AllStats() (map[string]GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*),
		        SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END),
		        MAX(score),
		        COALESCE(MIN(CASE WHEN winner = ? THEN shots END), 0),
		        MAX(created_at)
		 FROM results
		 GROUP BY game_id`,
		WinnerPlayer, WinnerPlayer,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]GameStats)
	for rows.Next() {
		var g GameStats
		var lastPlayed any
		if err := rows.Scan(&g.GameID, &g.Played, &g.Wins, &g.HighScore, &g.BestShots, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		g.LastPlayed = parseTime(lastPlayed)
		stats[g.GameID] = g
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearResults deletes all results for the given game.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (Result, error) {
	var r Result
	var createdAt any
	err := row.Scan(&r.ID, &r.MatchID, &r.GameID, &r.Player, &r.Winner, &r.Shots, &r.Hits, &r.Score, &createdAt)
	if err != nil {
		return Result{}, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both driver-parsed and raw text DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(sqliteTime, string(t)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
