// Package stats exposes per-player statistics and record ingest on top of
// the shard stores.
package stats

import (
	"context"
	"log/slog"

	"github.com/tealeaves/wordstats/internal/model"
	"github.com/tealeaves/wordstats/internal/shard"
	statscalc "github.com/tealeaves/wordstats/internal/stats"
	"github.com/tealeaves/wordstats/internal/storage"
)

// Service answers per-player statistics queries and accepts completed
// game records for direct ingest (backfill, imports)
type Service struct {
	shards    *shard.Set
	directory storage.Directory
	logger    *slog.Logger
}

// New creates a stats service
func New(shards *shard.Set, directory storage.Directory, logger *slog.Logger) *Service {
	return &Service{
		shards:    shards,
		directory: directory,
		logger:    logger,
	}
}

// PlayerStats computes a player's full statistics by scanning their
// shard's records. Fails with ErrPlayerNotFound for unknown players.
func (s *Service) PlayerStats(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error) {
	if _, err := s.directory.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	records, err := s.shards.ForPlayer(playerID).RecordsForPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	result := statscalc.Aggregate(records)
	return &result, nil
}

// RecordGame inserts a completed game record into the owning shard.
// Fails with ErrPlayerNotFound for unknown players, ErrInvalidGuesses for
// a guess count outside 1..6, and ErrRecordExists for a duplicate
// (player, game) pair.
func (s *Service) RecordGame(ctx context.Context, record *model.GameRecord) error {
	if _, err := s.directory.GetPlayer(ctx, record.PlayerID); err != nil {
		return err
	}

	if err := record.Validate(); err != nil {
		return err
	}

	if err := s.shards.ForPlayer(record.PlayerID).InsertRecord(ctx, record); err != nil {
		return err
	}

	s.logger.Info("game record ingested",
		slog.String("player_id", record.PlayerID.String()),
		slog.Int64("game_id", int64(record.GameID)),
		slog.Bool("won", record.Won),
	)
	return nil
}
