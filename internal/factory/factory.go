// Package factory wires storage and services into a running application.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/tealeaves/wordstats/internal/dependencies/clock"
	"github.com/tealeaves/wordstats/internal/services/leaderboard"
	"github.com/tealeaves/wordstats/internal/services/session"
	"github.com/tealeaves/wordstats/internal/services/stats"
	"github.com/tealeaves/wordstats/internal/shard"
	"github.com/tealeaves/wordstats/internal/storage"
	"github.com/tealeaves/wordstats/internal/storage/memory"
	redisstorage "github.com/tealeaves/wordstats/internal/storage/redis"
	"github.com/tealeaves/wordstats/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory     = "memory"
	StorageTypePersistent = "persistent"
)

// App contains all wired application components
type App struct {
	// Storage
	Shards    *shard.Set
	Sessions  storage.SessionStore
	Rankings  storage.RankingStore
	Directory storage.Directory

	// External dependencies
	Clock clock.Clock

	// Services
	SessionController  *session.Controller
	StatsService       *stats.Service
	LeaderboardService *leaderboard.Service

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the backend ("memory" or "persistent").
	// If empty, defaults to "memory".
	StorageType string
	// ShardPaths are the SQLite file paths for the shard databases, one
	// per shard. The shard count is fixed by this list's length.
	// Required for persistent storage.
	ShardPaths []string
	// DirectoryPath is the SQLite file path for the user directory.
	// Required for persistent storage.
	DirectoryPath string
	// RedisConfig holds session cache and ranking store settings.
	// Required for persistent storage.
	RedisConfig *redisstorage.Config
	// MemoryShardCount is the shard count for memory storage (default 3)
	MemoryShardCount int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	var (
		stores    []storage.GameStore
		sessions  storage.SessionStore
		rankings  storage.RankingStore
		directory storage.Directory
		closers   []io.Closer
	)

	switch storageType {
	case StorageTypeMemory:
		n := cfg.MemoryShardCount
		if n == 0 {
			n = 3
		}
		for i := 0; i < n; i++ {
			stores = append(stores, memory.NewGameStore())
		}
		sessions = memory.NewSessionStore()
		rankings = memory.NewRankingStore()
		directory = memory.NewDirectory()

	case StorageTypePersistent:
		if len(cfg.ShardPaths) == 0 {
			return nil, errors.New("ShardPaths required for persistent storage")
		}
		if cfg.DirectoryPath == "" {
			return nil, errors.New("DirectoryPath required for persistent storage")
		}
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required for persistent storage")
		}

		for _, path := range cfg.ShardPaths {
			store, err := sqlite.Open(path)
			if err != nil {
				closeAll(closers)
				return nil, err
			}
			stores = append(stores, store)
			closers = append(closers, store)
		}

		dir, err := sqlite.OpenDirectory(cfg.DirectoryPath)
		if err != nil {
			closeAll(closers)
			return nil, err
		}
		directory = dir
		closers = append(closers, dir)

		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			closeAll(closers)
			return nil, err
		}
		sessions = redisStore
		rankings = redisStore
		closers = append(closers, redisStore)

	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'persistent'")
	}

	app := newWithDependencies(stores, sessions, rankings, directory, clock.New(), logger)
	app.closers = closers
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	stores []storage.GameStore,
	sessions storage.SessionStore,
	rankings storage.RankingStore,
	directory storage.Directory,
	clk clock.Clock,
	logger *slog.Logger,
) *App {
	shards := shard.NewSet(stores)

	return &App{
		Shards:             shards,
		Sessions:           sessions,
		Rankings:           rankings,
		Directory:          directory,
		Clock:              clk,
		SessionController:  session.NewController(shards, sessions, directory, clk, logger),
		StatsService:       stats.New(shards, directory, logger),
		LeaderboardService: leaderboard.New(shards, rankings, directory, logger),
	}
}

// Close releases every resource the factory opened
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func nopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}
