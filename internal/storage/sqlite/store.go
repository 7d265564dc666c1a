// Package sqlite provides the SQLite-backed shard stores and the user
// directory.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "embed"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/tealeaves/wordstats/internal/model"
	"github.com/tealeaves/wordstats/internal/storage"
)

//go:embed schema.sql
var schemaSQL string

// Store is one shard's game history. Each shard is a separate database
// file; the store never sees players routed to other shards.
type Store struct {
	db *sql.DB
}

// Open creates or opens a shard database at the given path.
// Applies WAL mode and the schema; safe to call on an existing file.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open shard database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to shard database: %w", err)
	}

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent inserts to this shard.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply shard schema: %w", err)
	}

	return &Store{db: db}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}

// Close closes the shard's database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Ensure Store implements the interface
var _ storage.GameStore = (*Store)(nil)

func (s *Store) InsertRecord(ctx context.Context, record *model.GameRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games (player_id, game_id, finished, guesses, won) VALUES (?, ?, ?, ?, ?)`,
		record.PlayerID.String(), record.GameID, record.Finished.UTC(), record.Guesses, record.Won,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return model.ErrRecordExists
		}
		return fmt.Errorf("insert game record: %w", err)
	}
	return nil
}

func (s *Store) HasRecord(ctx context.Context, playerID model.PlayerID, gameID model.GameID) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM games WHERE player_id = ? AND game_id = ?`,
		playerID.String(), gameID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check game record: %w", err)
	}
	return n > 0, nil
}

func (s *Store) RecordsForPlayer(ctx context.Context, playerID model.PlayerID) ([]model.GameRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT player_id, game_id, finished, guesses, won FROM games WHERE player_id = ? ORDER BY game_id`,
		playerID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query player records: %w", err)
	}
	defer rows.Close()

	var records []model.GameRecord
	for rows.Next() {
		var (
			rec      model.GameRecord
			idText   string
			finished time.Time
		)
		if err := rows.Scan(&idText, &rec.GameID, &finished, &rec.Guesses, &rec.Won); err != nil {
			return nil, fmt.Errorf("scan game record: %w", err)
		}
		id, err := uuid.Parse(idText)
		if err != nil {
			return nil, fmt.Errorf("parse player id %q: %w", idText, err)
		}
		rec.PlayerID = id
		rec.Finished = finished.UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) TopWins(ctx context.Context, limit int) ([]model.WinCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT player_id, COUNT(*) AS wins
		 FROM games
		 WHERE won = 1
		 GROUP BY player_id
		 ORDER BY wins DESC, player_id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query top wins: %w", err)
	}
	defer rows.Close()

	var counts []model.WinCount
	for rows.Next() {
		var (
			idText string
			wc     model.WinCount
		)
		if err := rows.Scan(&idText, &wc.Wins); err != nil {
			return nil, fmt.Errorf("scan win count: %w", err)
		}
		id, err := uuid.Parse(idText)
		if err != nil {
			return nil, fmt.Errorf("parse player id %q: %w", idText, err)
		}
		wc.PlayerID = id
		counts = append(counts, wc)
	}
	return counts, rows.Err()
}

func (s *Store) WinDaysByPlayer(ctx context.Context) (map[model.PlayerID][]time.Time, error) {
	// Distinct calendar days only; the streak grouping itself is done in
	// the stats package rather than with window functions so it behaves
	// identically on every storage backend.
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT player_id, date(finished)
		 FROM games
		 WHERE won = 1
		 ORDER BY player_id, date(finished)`,
	)
	if err != nil {
		return nil, fmt.Errorf("query win days: %w", err)
	}
	defer rows.Close()

	out := make(map[model.PlayerID][]time.Time)
	for rows.Next() {
		var idText, dayText string
		if err := rows.Scan(&idText, &dayText); err != nil {
			return nil, fmt.Errorf("scan win day: %w", err)
		}
		id, err := uuid.Parse(idText)
		if err != nil {
			return nil, fmt.Errorf("parse player id %q: %w", idText, err)
		}
		day, err := time.ParseInLocation("2006-01-02", dayText, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse win day %q: %w", dayText, err)
		}
		out[id] = append(out[id], day)
	}
	return out, rows.Err()
}
