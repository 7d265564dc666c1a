package session

import (
	"fmt"
	"sync"

	"github.com/tealeaves/wordstats/internal/model"
)

// keyedLocks serializes read-modify-write cycles per session key.
// Different keys never contend; the same key is single-writer. Entries
// are reference-counted and removed once the last holder releases, so the
// map does not grow with session churn.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]*keyLock)}
}

func sessionLockKey(playerID model.PlayerID, gameID model.GameID) string {
	return fmt.Sprintf("%s:%d", playerID, gameID)
}

// acquire locks the given key and returns a release function
func (k *keyedLocks) acquire(playerID model.PlayerID, gameID model.GameID) func() {
	key := sessionLockKey(playerID, gameID)

	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
