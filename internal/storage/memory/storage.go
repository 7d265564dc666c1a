// Package memory provides in-memory implementations of the storage
// interfaces for unit tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tealeaves/wordstats/internal/model"
	"github.com/tealeaves/wordstats/internal/stats"
	"github.com/tealeaves/wordstats/internal/storage"
)

type recordKey struct {
	playerID model.PlayerID
	gameID   model.GameID
}

// GameStore is an in-memory shard store. Setting Unavailable makes every
// call fail with model.ErrShardUnreachable, for testing skip-on-failure
// behavior.
type GameStore struct {
	mu          sync.RWMutex
	records     map[recordKey]model.GameRecord
	Unavailable bool
}

// NewGameStore creates an empty in-memory shard
func NewGameStore() *GameStore {
	return &GameStore{records: make(map[recordKey]model.GameRecord)}
}

var _ storage.GameStore = (*GameStore)(nil)

func (s *GameStore) InsertRecord(ctx context.Context, record *model.GameRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Unavailable {
		return model.ErrShardUnreachable
	}

	key := recordKey{record.PlayerID, record.GameID}
	if _, exists := s.records[key]; exists {
		return model.ErrRecordExists
	}
	s.records[key] = *record
	return nil
}

func (s *GameStore) HasRecord(ctx context.Context, playerID model.PlayerID, gameID model.GameID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Unavailable {
		return false, model.ErrShardUnreachable
	}
	_, ok := s.records[recordKey{playerID, gameID}]
	return ok, nil
}

func (s *GameStore) RecordsForPlayer(ctx context.Context, playerID model.PlayerID) ([]model.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Unavailable {
		return nil, model.ErrShardUnreachable
	}

	var records []model.GameRecord
	for key, rec := range s.records {
		if key.playerID == playerID {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].GameID < records[j].GameID })
	return records, nil
}

func (s *GameStore) TopWins(ctx context.Context, limit int) ([]model.WinCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Unavailable {
		return nil, model.ErrShardUnreachable
	}

	wins := make(map[model.PlayerID]int)
	for _, rec := range s.records {
		if rec.Won {
			wins[rec.PlayerID]++
		}
	}

	counts := make([]model.WinCount, 0, len(wins))
	for playerID, n := range wins {
		counts = append(counts, model.WinCount{PlayerID: playerID, Wins: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Wins != counts[j].Wins {
			return counts[i].Wins > counts[j].Wins
		}
		return counts[i].PlayerID.String() < counts[j].PlayerID.String()
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}

func (s *GameStore) WinDaysByPlayer(ctx context.Context) (map[model.PlayerID][]time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Unavailable {
		return nil, model.ErrShardUnreachable
	}

	daySets := make(map[model.PlayerID]map[time.Time]struct{})
	for _, rec := range s.records {
		if !rec.Won {
			continue
		}
		if daySets[rec.PlayerID] == nil {
			daySets[rec.PlayerID] = make(map[time.Time]struct{})
		}
		daySets[rec.PlayerID][stats.Day(rec.Finished)] = struct{}{}
	}

	out := make(map[model.PlayerID][]time.Time, len(daySets))
	for playerID, set := range daySets {
		days := make([]time.Time, 0, len(set))
		for d := range set {
			days = append(days, d)
		}
		sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
		out[playerID] = days
	}
	return out, nil
}

func (s *GameStore) Close() error {
	return nil
}

// SessionStore is an in-memory session cache
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[recordKey]model.Session
}

// NewSessionStore creates an empty in-memory session cache
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[recordKey]model.Session)}
}

var _ storage.SessionStore = (*SessionStore)(nil)

func (s *SessionStore) CreateSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := recordKey{session.PlayerID, session.GameID}
	if _, exists := s.sessions[key]; exists {
		return model.ErrGameInProgress
	}
	s.sessions[key] = *session
	return nil
}

func (s *SessionStore) GetSession(ctx context.Context, playerID model.PlayerID, gameID model.GameID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[recordKey{playerID, gameID}]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionStore) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[recordKey{session.PlayerID, session.GameID}] = *session
	return nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, playerID model.PlayerID, gameID model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, recordKey{playerID, gameID})
	return nil
}

// RankingStore is an in-memory ranked-set store
type RankingStore struct {
	mu       sync.RWMutex
	rankings map[string][]model.RankedEntry
}

// NewRankingStore creates an empty in-memory ranking store
func NewRankingStore() *RankingStore {
	return &RankingStore{rankings: make(map[string][]model.RankedEntry)}
}

var _ storage.RankingStore = (*RankingStore)(nil)

func (s *RankingStore) ReplaceRanking(ctx context.Context, name string, entries []model.RankedEntry) error {
	sorted := make([]model.RankedEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Username < sorted[j].Username
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rankings[name] = sorted
	return nil
}

func (s *RankingStore) TopRanked(ctx context.Context, name string, limit int) ([]model.RankedEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.rankings[name]
	if len(entries) > limit {
		entries = entries[:limit]
	}
	out := make([]model.RankedEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Directory is an in-memory account directory
type Directory struct {
	mu      sync.RWMutex
	players map[model.PlayerID]*model.Player
	byName  map[string]model.PlayerID
}

// NewDirectory creates an empty in-memory directory
func NewDirectory() *Directory {
	return &Directory{
		players: make(map[model.PlayerID]*model.Player),
		byName:  make(map[string]model.PlayerID),
	}
}

var _ storage.Directory = (*Directory)(nil)

func (d *Directory) SavePlayer(ctx context.Context, player *model.Player) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.players[player.ID] = player
	d.byName[player.Username] = player.ID
	return nil
}

func (d *Directory) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	player, ok := d.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (d *Directory) GetPlayerByUsername(ctx context.Context, username string) (*model.Player, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	id, ok := d.byName[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return d.players[id], nil
}
