// Package redis implements the session cache and leaderboard ranking
// stores on Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tealeaves/wordstats/internal/model"
	"github.com/tealeaves/wordstats/internal/storage"
)

// Storage is a Redis-backed implementation of the session and ranking
// store interfaces
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrCacheUnreachable, err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interfaces
var (
	_ storage.SessionStore = (*Storage)(nil)
	_ storage.RankingStore = (*Storage)(nil)
)

// Session operations

func (s *Storage) CreateSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	// SetNX makes start-once atomic even across racing start calls
	ok, err := s.client.SetNX(ctx, sessionKey(session.PlayerID, session.GameID), data, s.cfg.SessionTTL).Result()
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrCacheUnreachable, err)
	}
	if !ok {
		return model.ErrGameInProgress
	}
	return nil
}

func (s *Storage) GetSession(ctx context.Context, playerID model.PlayerID, gameID model.GameID) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(playerID, gameID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %w", model.ErrCacheUnreachable, err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, sessionKey(session.PlayerID, session.GameID), data, s.cfg.SessionTTL).Err(); err != nil {
		return fmt.Errorf("%w: %w", model.ErrCacheUnreachable, err)
	}
	return nil
}

func (s *Storage) DeleteSession(ctx context.Context, playerID model.PlayerID, gameID model.GameID) error {
	if err := s.client.Del(ctx, sessionKey(playerID, gameID)).Err(); err != nil {
		return fmt.Errorf("%w: %w", model.ErrCacheUnreachable, err)
	}
	return nil
}

// Ranking operations

func (s *Storage) ReplaceRanking(ctx context.Context, name string, entries []model.RankedEntry) error {
	key := rankingKey(name)

	// Full replace: delete then repopulate in one pipeline so players who
	// fell out of every shard's top list disappear from the ranking
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(entries) > 0 {
		members := make([]redis.Z, len(entries))
		for i, e := range entries {
			members[i] = redis.Z{Score: e.Score, Member: e.Username}
		}
		pipe.ZAdd(ctx, key, members...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %w", model.ErrCacheUnreachable, err)
	}
	return nil
}

func (s *Storage) TopRanked(ctx context.Context, name string, limit int) ([]model.RankedEntry, error) {
	zs, err := s.client.ZRevRangeWithScores(ctx, rankingKey(name), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrCacheUnreachable, err)
	}

	entries := make([]model.RankedEntry, 0, len(zs))
	for _, z := range zs {
		username, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, model.RankedEntry{Username: username, Score: z.Score})
	}
	return entries, nil
}
