// Package leaderboard builds and serves the global top-ten rankings.
package leaderboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tealeaves/wordstats/internal/model"
	"github.com/tealeaves/wordstats/internal/shard"
	statscalc "github.com/tealeaves/wordstats/internal/stats"
	"github.com/tealeaves/wordstats/internal/storage"
)

// Ranked set names
const (
	RankingWins    = "wins"
	RankingStreaks = "streaks"
)

// TopSize is how many entries each shard contributes per category, and
// how many the readers serve
const TopSize = 10

// Service merges per-shard top lists into the global ranked sets and
// serves reads from them. The rankings are a cache of shard state, not a
// source of truth: a refresh fully replaces each set's membership.
type Service struct {
	shards    *shard.Set
	rankings  storage.RankingStore
	directory storage.Directory
	logger    *slog.Logger
}

// New creates a leaderboard service
func New(shards *shard.Set, rankings storage.RankingStore, directory storage.Directory, logger *slog.Logger) *Service {
	return &Service{
		shards:    shards,
		rankings:  rankings,
		directory: directory,
		logger:    logger,
	}
}

// Refresh pulls the top wins and streaks from every shard, joins display
// names from the directory, and replaces both global ranked sets. An
// unreachable shard is skipped with a log line; its players simply drop
// out of the rankings until it recovers. Only a failure to write the
// merged result is returned as an error.
func (s *Service) Refresh(ctx context.Context) error {
	var wins, streaks []model.RankedEntry

	for i, store := range s.shards.Stores() {
		topWins, err := store.TopWins(ctx, TopSize)
		if err != nil {
			s.logger.Warn("skipping unreachable shard for wins",
				slog.Int("shard", i),
				slog.String("error", err.Error()),
			)
		} else {
			for _, wc := range topWins {
				if entry, ok := s.named(ctx, wc.PlayerID, float64(wc.Wins)); ok {
					wins = append(wins, entry)
				}
			}
		}

		winDays, err := store.WinDaysByPlayer(ctx)
		if err != nil {
			s.logger.Warn("skipping unreachable shard for streaks",
				slog.Int("shard", i),
				slog.String("error", err.Error()),
			)
			continue
		}
		top := statscalc.LongestStreaks(winDays)
		if len(top) > TopSize {
			top = top[:TopSize]
		}
		for _, sc := range top {
			if entry, ok := s.named(ctx, sc.PlayerID, float64(sc.Streak)); ok {
				streaks = append(streaks, entry)
			}
		}
	}

	var errs []error
	if err := s.rankings.ReplaceRanking(ctx, RankingWins, wins); err != nil {
		errs = append(errs, err)
	}
	if err := s.rankings.ReplaceRanking(ctx, RankingStreaks, streaks); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	s.logger.Info("leaderboards refreshed",
		slog.Int("win_entries", len(wins)),
		slog.Int("streak_entries", len(streaks)),
	)
	return nil
}

// named joins a player ID against the directory. A player missing from
// the directory is logged and dropped rather than failing the refresh.
func (s *Service) named(ctx context.Context, playerID model.PlayerID, score float64) (model.RankedEntry, bool) {
	player, err := s.directory.GetPlayer(ctx, playerID)
	if err != nil {
		s.logger.Warn("dropping unresolvable player from ranking",
			slog.String("player_id", playerID.String()),
			slog.String("error", err.Error()),
		)
		return model.RankedEntry{}, false
	}
	return model.RankedEntry{Username: player.Username, Score: score}, true
}

// TopWins returns the global wins leaderboard, highest first
func (s *Service) TopWins(ctx context.Context) ([]model.RankedEntry, error) {
	return s.rankings.TopRanked(ctx, RankingWins, TopSize)
}

// TopStreaks returns the global streaks leaderboard, highest first
func (s *Service) TopStreaks(ctx context.Context) ([]model.RankedEntry, error) {
	return s.rankings.TopRanked(ctx, RankingStreaks, TopSize)
}

// RunPeriodic refreshes the leaderboards on the given interval until the
// context is cancelled. Failures are logged and the loop keeps going.
func (s *Service) RunPeriodic(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.Error("leaderboard refresh failed", slog.String("error", err.Error()))
			}
		}
	}
}
