package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tealeaves/wordstats/internal/model"
	"github.com/tealeaves/wordstats/internal/storage"
)

const directorySchema = `
CREATE TABLE IF NOT EXISTS users (
    player_id TEXT PRIMARY KEY,
    username  TEXT NOT NULL UNIQUE
);
`

// Directory is the SQLite-backed account directory. It lives in its own
// database file, separate from any shard: player lookups and shard-local
// queries are always two explicit steps joined in application code.
type Directory struct {
	db *sql.DB
}

// OpenDirectory creates or opens the user directory database
func OpenDirectory(path string) (*Directory, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open user directory: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to user directory: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(directorySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply directory schema: %w", err)
	}

	return &Directory{db: db}, nil
}

// Close closes the directory's database connection
func (d *Directory) Close() error {
	return d.db.Close()
}

// Ensure Directory implements the interface
var _ storage.Directory = (*Directory)(nil)

func (d *Directory) SavePlayer(ctx context.Context, player *model.Player) error {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO users (player_id, username) VALUES (?, ?)`,
		player.ID.String(), player.Username,
	)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (d *Directory) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	var username string
	err := d.db.QueryRowContext(ctx,
		`SELECT username FROM users WHERE player_id = ?`, id.String(),
	).Scan(&username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query player: %w", err)
	}
	return &model.Player{ID: id, Username: username}, nil
}

func (d *Directory) GetPlayerByUsername(ctx context.Context, username string) (*model.Player, error) {
	var idText string
	err := d.db.QueryRowContext(ctx,
		`SELECT player_id FROM users WHERE username = ?`, username,
	).Scan(&idText)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query player by username: %w", err)
	}

	id, err := uuid.Parse(idText)
	if err != nil {
		return nil, fmt.Errorf("parse player id %q: %w", idText, err)
	}
	return &model.Player{ID: id, Username: username}, nil
}
