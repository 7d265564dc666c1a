package factory

import (
	"time"

	"github.com/tealeaves/wordstats/internal/dependencies/mocks"
	"github.com/tealeaves/wordstats/internal/storage"
	"github.com/tealeaves/wordstats/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	ShardStores []*memory.GameStore
}

// NewTestApp creates an App on in-memory stores with a mocked clock
func NewTestApp(shardCount int) *TestApp {
	shardStores := make([]*memory.GameStore, shardCount)
	stores := make([]storage.GameStore, shardCount)
	for i := range stores {
		s := memory.NewGameStore()
		shardStores[i] = s
		stores[i] = s
	}

	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(
		stores,
		memory.NewSessionStore(),
		memory.NewRankingStore(),
		memory.NewDirectory(),
		mockClock,
		nopLogger(),
	)

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		ShardStores: shardStores,
	}
}
