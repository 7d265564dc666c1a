package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/tealeaves/wordstats/internal/model"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	store, err := Open(filepath.Join(s.T().TempDir(), "shard.db"))
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

func (s *StoreSuite) record(playerID model.PlayerID, gameID model.GameID, finished string, guesses int, won bool) *model.GameRecord {
	day, err := time.Parse("2006-01-02", finished)
	s.Require().NoError(err)
	return &model.GameRecord{
		PlayerID: playerID,
		GameID:   gameID,
		Finished: day,
		Guesses:  guesses,
		Won:      won,
	}
}

func (s *StoreSuite) TestInsertAndReadBack() {
	playerID := uuid.New()
	err := s.store.InsertRecord(s.ctx, s.record(playerID, 42, "2024-03-01", 4, true))
	s.Require().NoError(err)

	records, err := s.store.RecordsForPlayer(s.ctx, playerID)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(playerID, records[0].PlayerID)
	s.Equal(model.GameID(42), records[0].GameID)
	s.Equal(4, records[0].Guesses)
	s.True(records[0].Won)
}

func (s *StoreSuite) TestDuplicateInsertConflicts() {
	playerID := uuid.New()
	first := s.record(playerID, 7, "2024-03-01", 3, true)
	s.Require().NoError(s.store.InsertRecord(s.ctx, first))

	dup := s.record(playerID, 7, "2024-03-02", 6, false)
	err := s.store.InsertRecord(s.ctx, dup)
	s.ErrorIs(err, model.ErrRecordExists)

	// First row unchanged
	records, err := s.store.RecordsForPlayer(s.ctx, playerID)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(3, records[0].Guesses)
	s.True(records[0].Won)
}

func (s *StoreSuite) TestSameGameDifferentPlayers() {
	s.Require().NoError(s.store.InsertRecord(s.ctx, s.record(uuid.New(), 7, "2024-03-01", 3, true)))
	s.Require().NoError(s.store.InsertRecord(s.ctx, s.record(uuid.New(), 7, "2024-03-01", 5, false)))
}

func (s *StoreSuite) TestInsertRejectsOutOfRangeGuesses() {
	s.ErrorIs(s.store.InsertRecord(s.ctx, s.record(uuid.New(), 1, "2024-03-01", 0, false)), model.ErrInvalidGuesses)
	s.ErrorIs(s.store.InsertRecord(s.ctx, s.record(uuid.New(), 1, "2024-03-01", 7, false)), model.ErrInvalidGuesses)
}

func (s *StoreSuite) TestHasRecord() {
	playerID := uuid.New()

	has, err := s.store.HasRecord(s.ctx, playerID, 9)
	s.Require().NoError(err)
	s.False(has)

	s.Require().NoError(s.store.InsertRecord(s.ctx, s.record(playerID, 9, "2024-03-01", 2, true)))

	has, err = s.store.HasRecord(s.ctx, playerID, 9)
	s.Require().NoError(err)
	s.True(has)
}

func (s *StoreSuite) TestTopWinsOrdersDescending() {
	heavy := uuid.New()
	light := uuid.New()

	for i := 0; i < 3; i++ {
		s.Require().NoError(s.store.InsertRecord(s.ctx, s.record(heavy, model.GameID(i), "2024-03-01", 3, true)))
	}
	s.Require().NoError(s.store.InsertRecord(s.ctx, s.record(light, 1, "2024-03-01", 3, true)))
	s.Require().NoError(s.store.InsertRecord(s.ctx, s.record(light, 2, "2024-03-01", 6, false)))

	top, err := s.store.TopWins(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(heavy, top[0].PlayerID)
	s.Equal(3, top[0].Wins)
	s.Equal(light, top[1].PlayerID)
	s.Equal(1, top[1].Wins)
}

func (s *StoreSuite) TestTopWinsRespectsLimit() {
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.store.InsertRecord(s.ctx, s.record(uuid.New(), 1, "2024-03-01", 3, true)))
	}

	top, err := s.store.TopWins(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(top, 2)
}

func (s *StoreSuite) TestWinDaysByPlayerDeduplicatesAndSorts() {
	playerID := uuid.New()
	s.Require().NoError(s.store.InsertRecord(s.ctx, s.record(playerID, 1, "2024-03-02", 3, true)))
	s.Require().NoError(s.store.InsertRecord(s.ctx, s.record(playerID, 2, "2024-03-01", 2, true)))
	s.Require().NoError(s.store.InsertRecord(s.ctx, s.record(playerID, 3, "2024-03-02", 4, true)))
	s.Require().NoError(s.store.InsertRecord(s.ctx, s.record(playerID, 4, "2024-03-05", 6, false)))

	days, err := s.store.WinDaysByPlayer(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(days[playerID], 2)
	s.Equal("2024-03-01", days[playerID][0].Format("2006-01-02"))
	s.Equal("2024-03-02", days[playerID][1].Format("2006-01-02"))
}

func (s *StoreSuite) TestOpenIsIdempotent() {
	path := filepath.Join(s.T().TempDir(), "reopen.db")

	first, err := Open(path)
	s.Require().NoError(err)
	playerID := uuid.New()
	s.Require().NoError(first.InsertRecord(s.ctx, s.record(playerID, 1, "2024-03-01", 3, true)))
	s.Require().NoError(first.Close())

	second, err := Open(path)
	s.Require().NoError(err)
	defer second.Close()

	has, err := second.HasRecord(s.ctx, playerID, 1)
	s.Require().NoError(err)
	s.True(has)
}
