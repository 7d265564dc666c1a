package shard

import (
	"github.com/tealeaves/wordstats/internal/model"
	"github.com/tealeaves/wordstats/internal/storage"
)

// Set holds the full collection of shard stores together with the
// resolver that routes players onto them. Write and read paths share one
// Set so they can never disagree about where a player lives.
type Set struct {
	resolver *Resolver
	stores   []storage.GameStore
}

// NewSet creates a shard set over the given stores. The shard count is
// taken from the slice length and fixed for the set's lifetime.
func NewSet(stores []storage.GameStore) *Set {
	return &Set{
		resolver: NewResolver(len(stores)),
		stores:   stores,
	}
}

// ForPlayer returns the one store holding the given player's history
func (s *Set) ForPlayer(playerID model.PlayerID) storage.GameStore {
	return s.stores[s.resolver.Resolve(playerID)]
}

// Stores returns all shard stores in index order, for cross-shard
// read-only aggregation
func (s *Set) Stores() []storage.GameStore {
	return s.stores
}

// Count returns the number of shards
func (s *Set) Count() int {
	return len(s.stores)
}

// Close closes every shard store, returning the first error encountered
func (s *Set) Close() error {
	var firstErr error
	for _, store := range s.stores {
		if err := store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
