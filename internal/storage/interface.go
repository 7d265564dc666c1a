package storage

import (
	"context"
	"time"

	"github.com/tealeaves/wordstats/internal/model"
)

// GameStore is one shard's durable, append-only game history plus its
// derived read views. Implementations are independently consistent; no
// implementation is ever aware of other shards.
type GameStore interface {
	// InsertRecord commits a completed game. Returns
	// model.ErrRecordExists if a record already exists for the
	// (player, game) pair.
	InsertRecord(ctx context.Context, record *model.GameRecord) error

	// HasRecord reports whether a completed record exists for the pair
	HasRecord(ctx context.Context, playerID model.PlayerID, gameID model.GameID) (bool, error)

	// RecordsForPlayer returns every record for one player
	RecordsForPlayer(ctx context.Context, playerID model.PlayerID) ([]model.GameRecord, error)

	// TopWins returns players by won-game count, descending, ties broken
	// by player ID
	TopWins(ctx context.Context, limit int) ([]model.WinCount, error)

	// WinDaysByPlayer returns each player's distinct winning calendar
	// days, sorted ascending, for streak computation
	WinDaysByPlayer(ctx context.Context) (map[model.PlayerID][]time.Time, error)

	Close() error
}

// SessionStore is the shared cache of live game sessions, keyed by
// (player, game). Entries are whole-state overwrites; the session service
// is responsible for serializing read-modify-write cycles per key.
type SessionStore interface {
	// CreateSession stores a new session, failing with
	// model.ErrGameInProgress if one already exists for the key
	CreateSession(ctx context.Context, session *model.Session) error

	// GetSession returns the live session for a key, or
	// model.ErrSessionNotFound
	GetSession(ctx context.Context, playerID model.PlayerID, gameID model.GameID) (*model.Session, error)

	// SaveSession overwrites the stored state for the session's key
	SaveSession(ctx context.Context, session *model.Session) error

	// DeleteSession evicts a session once its terminal record is committed
	DeleteSession(ctx context.Context, playerID model.PlayerID, gameID model.GameID) error
}

// RankingStore holds the global leaderboard ranked sets
type RankingStore interface {
	// ReplaceRanking atomically replaces a ranked set's full membership
	ReplaceRanking(ctx context.Context, name string, entries []model.RankedEntry) error

	// TopRanked returns up to limit entries, highest score first
	TopRanked(ctx context.Context, name string, limit int) ([]model.RankedEntry, error)
}

// Directory is the account directory, mapping player IDs to display names
// and back. Account creation itself happens elsewhere; SavePlayer exists
// for provisioning and tests.
type Directory interface {
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*model.Player, error)
}
