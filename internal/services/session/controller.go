// Package session implements the per-game session state machine.
package session

import (
	"context"
	"log/slog"

	"github.com/tealeaves/wordstats/internal/dependencies/clock"
	"github.com/tealeaves/wordstats/internal/model"
	"github.com/tealeaves/wordstats/internal/shard"
	"github.com/tealeaves/wordstats/internal/storage"
)

// Controller drives sessions through NotStarted -> InProgress -> Terminal.
// Live state lives in the session cache; the terminal record goes to the
// player's shard. Updates on one key serialize through a per-key lock so
// concurrent guesses never overwrite each other.
type Controller struct {
	shards    *shard.Set
	sessions  storage.SessionStore
	directory storage.Directory
	clock     clock.Clock
	logger    *slog.Logger
	locks     *keyedLocks
}

// NewController creates a session controller
func NewController(
	shards *shard.Set,
	sessions storage.SessionStore,
	directory storage.Directory,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		shards:    shards,
		sessions:  sessions,
		directory: directory,
		clock:     clock,
		logger:    logger,
		locks:     newKeyedLocks(),
	}
}

// Start begins a new game for a player. Fails with ErrPlayerNotFound for
// unknown players, ErrGameAlreadyPlayed if the player's shard already has
// a completed record for the game, and ErrGameInProgress if a live
// session exists for the key.
func (c *Controller) Start(ctx context.Context, playerID model.PlayerID, gameID model.GameID) (*model.Session, error) {
	if _, err := c.directory.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	played, err := c.shards.ForPlayer(playerID).HasRecord(ctx, playerID, gameID)
	if err != nil {
		return nil, err
	}
	if played {
		return nil, model.ErrGameAlreadyPlayed
	}

	session := model.NewSession(playerID, gameID)
	if err := c.sessions.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session started",
		slog.String("player_id", playerID.String()),
		slog.Int64("game_id", int64(gameID)),
	)

	return session, nil
}

// Update records a guess against a live session and returns the updated
// state. Fails with ErrSessionNotFound if no session exists for the key
// and ErrGuessLimit once all guesses are spent. The caller is expected to
// have validated the guess word itself.
func (c *Controller) Update(ctx context.Context, playerID model.PlayerID, gameID model.GameID, guess string) (*model.Session, error) {
	release := c.locks.acquire(playerID, gameID)
	defer release()

	session, err := c.sessions.GetSession(ctx, playerID, gameID)
	if err != nil {
		return nil, err
	}

	if err := session.RecordGuess(guess); err != nil {
		return nil, err
	}

	// Whole-state overwrite; the per-key lock above is what makes the
	// read-modify-write atomic
	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Restore returns a live session's current state without modifying it
func (c *Controller) Restore(ctx context.Context, playerID model.PlayerID, gameID model.GameID) (*model.Session, error) {
	return c.sessions.GetSession(ctx, playerID, gameID)
}

// Complete finalizes a session once the answer checker has confirmed the
// last guess correct, or the guess limit is exhausted. The terminal
// record is written to the player's shard; a retried completion fails
// with ErrRecordExists rather than duplicating history. The session entry
// is evicted afterwards; eviction failure is only logged since the cache
// TTL will reap it.
func (c *Controller) Complete(ctx context.Context, playerID model.PlayerID, gameID model.GameID, won bool) (*model.GameRecord, error) {
	release := c.locks.acquire(playerID, gameID)
	defer release()

	session, err := c.sessions.GetSession(ctx, playerID, gameID)
	if err != nil {
		return nil, err
	}

	record := &model.GameRecord{
		PlayerID: playerID,
		GameID:   gameID,
		Finished: c.clock.Now().UTC(),
		Guesses:  session.GuessesUsed(),
		Won:      won,
	}

	if err := c.shards.ForPlayer(playerID).InsertRecord(ctx, record); err != nil {
		return nil, err
	}

	if err := c.sessions.DeleteSession(ctx, playerID, gameID); err != nil {
		c.logger.Warn("failed to evict completed session",
			slog.String("player_id", playerID.String()),
			slog.Int64("game_id", int64(gameID)),
			slog.String("error", err.Error()),
		)
	}

	c.logger.Info("session completed",
		slog.String("player_id", playerID.String()),
		slog.Int64("game_id", int64(gameID)),
		slog.Bool("won", won),
		slog.Int("guesses", record.Guesses),
	)

	return record, nil
}
