// Package storage provides SQLite-based persistence for scores and saved games.
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

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/scores"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single recorded score.
type ScoreEntry struct {
	ID         int64
	Score      int
	Settings   config.GameSettings
	SettingsID string
	CreatedAt  time.Time
}

// SettingsSummary aggregates the scores of one settings combination.
type SettingsSummary struct {
	SettingsID string
	Settings   config.GameSettings
	Count      int
	Best       int
	AvgScore   float64
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

	// SQLite allows a single writer; SSH sessions share this handle.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			board_size INTEGER NOT NULL,
			four_percent REAL NOT NULL,
			settings_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_settings ON scores(settings_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(settings_id, score DESC);

		CREATE TABLE IF NOT EXISTS saved_games (
			game_id TEXT PRIMARY KEY,
			state_json TEXT NOT NULL,
			settings_id TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// Ensure Store can back a score recorder.
var _ scores.Sink = (*Store)(nil)

// SaveScore stores a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(rec scores.Record) (int64, error) {
	if err := rec.Settings.Validate(); err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	recordedAt := rec.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO scores (score, board_size, four_percent, settings_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Value, rec.Settings.BoardSize, rec.Settings.FourTilePercent, rec.Settings.ID(),
		recordedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// ScoresBySettings retrieves the top N scores for a settings combination.
// Results are ordered by score descending.
func (s *Store) ScoresBySettings(settingsID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, board_size, four_percent, settings_id, created_at
		 FROM scores
		 WHERE settings_id = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		settingsID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// TopScores retrieves the top N scores across all settings.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, board_size, four_percent, settings_id, created_at
		 FROM scores
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.Settings.BoardSize, &e.Settings.FourTilePercent,
			&e.SettingsID, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for a settings combination.
// Returns 0 if no scores exist.
func (s *Store) HighScore(settingsID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE settings_id = ?",
		settingsID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// SettingsSummaries lists every settings combination that has scores,
// most played first.
func (s *Store) SettingsSummaries() ([]SettingsSummary, error) {
	rows, err := s.db.Query(
		`SELECT settings_id, MAX(board_size), MAX(four_percent), COUNT(*), MAX(score), AVG(score), MAX(created_at)
		 FROM scores
		 GROUP BY settings_id
		 ORDER BY COUNT(*) DESC, settings_id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get settings summaries: %w", err)
	}
	defer rows.Close()

	var summaries []SettingsSummary
	for rows.Next() {
		var sum SettingsSummary
		var lastPlayed any
		if err := rows.Scan(&sum.SettingsID, &sum.Settings.BoardSize, &sum.Settings.FourTilePercent,
			&sum.Count, &sum.Best, &sum.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		sum.LastPlayed = parseTime(lastPlayed)
		summaries = append(summaries, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return summaries, nil
}

// ClearScores deletes all scores for a settings combination.
func (s *Store) ClearScores(settingsID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE settings_id = ?", settingsID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveGame stores the current state of a game, replacing any earlier save.
func (s *Store) SaveGame(gameID string, st t2048.GameState, settings config.GameSettings) error {
	data, err := t2048.MarshalState(st)
	if err != nil {
		return fmt.Errorf("storage: cannot encode game: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saved_games (game_id, state_json, settings_id, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
		   state_json = excluded.state_json,
		   settings_id = excluded.settings_id,
		   updated_at = excluded.updated_at`,
		gameID, string(data), settings.ID(), time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame returns the saved state of a game.
// Returns false if nothing is saved.
func (s *Store) LoadGame(gameID string) (t2048.GameState, bool, error) {
	var data string
	err := s.db.QueryRow(
		"SELECT state_json FROM saved_games WHERE game_id = ?",
		gameID,
	).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return t2048.GameState{}, false, nil
	}
	if err != nil {
		return t2048.GameState{}, false, fmt.Errorf("storage: cannot load game: %w", err)
	}

	st, err := t2048.UnmarshalState([]byte(data))
	if err != nil {
		return t2048.GameState{}, false, fmt.Errorf("storage: saved game %q is corrupt: %w", gameID, err)
	}
	return st, true, nil
}

// DeleteGame removes a saved game. Deleting a missing game is not an error.
func (s *Store) DeleteGame(gameID string) error {
	_, err := s.db.Exec("DELETE FROM saved_games WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete game: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
