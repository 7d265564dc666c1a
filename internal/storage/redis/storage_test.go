package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tealeaves/wordstats/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Session tests

func (s *StorageSuite) TestCreateAndGetSession() {
	session := model.NewSession(uuid.New(), 17)

	s.Require().NoError(s.storage.CreateSession(s.ctx, session))

	got, err := s.storage.GetSession(s.ctx, session.PlayerID, session.GameID)
	s.Require().NoError(err)
	s.Equal(session.PlayerID, got.PlayerID)
	s.Equal(model.GameID(17), got.GameID)
	s.Equal(model.MaxGuesses, got.Remaining)
	for _, g := range got.Guesses {
		s.Empty(g)
	}
}

func (s *StorageSuite) TestCreateSessionTwiceConflicts() {
	session := model.NewSession(uuid.New(), 17)

	s.Require().NoError(s.storage.CreateSession(s.ctx, session))
	s.ErrorIs(s.storage.CreateSession(s.ctx, session), model.ErrGameInProgress)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, uuid.New(), 1)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSaveSessionOverwritesWholeState() {
	session := model.NewSession(uuid.New(), 3)
	s.Require().NoError(s.storage.CreateSession(s.ctx, session))

	s.Require().NoError(session.RecordGuess("crane"))
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	got, err := s.storage.GetSession(s.ctx, session.PlayerID, session.GameID)
	s.Require().NoError(err)
	s.Equal(5, got.Remaining)
	s.Equal("crane", got.Guesses[0])
}

func (s *StorageSuite) TestDeleteSessionAllowsRestart() {
	session := model.NewSession(uuid.New(), 3)
	s.Require().NoError(s.storage.CreateSession(s.ctx, session))

	s.Require().NoError(s.storage.DeleteSession(s.ctx, session.PlayerID, session.GameID))

	_, err := s.storage.GetSession(s.ctx, session.PlayerID, session.GameID)
	s.ErrorIs(err, model.ErrSessionNotFound)

	// A fresh session for the key may now be created
	s.Require().NoError(s.storage.CreateSession(s.ctx, model.NewSession(session.PlayerID, session.GameID)))
}

func (s *StorageSuite) TestSessionExpires() {
	session := model.NewSession(uuid.New(), 3)
	s.Require().NoError(s.storage.CreateSession(s.ctx, session))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSession(s.ctx, session.PlayerID, session.GameID)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionKeysAreIndependent() {
	playerID := uuid.New()
	s.Require().NoError(s.storage.CreateSession(s.ctx, model.NewSession(playerID, 1)))
	s.Require().NoError(s.storage.CreateSession(s.ctx, model.NewSession(playerID, 2)))

	first, err := s.storage.GetSession(s.ctx, playerID, 1)
	s.Require().NoError(err)
	s.Require().NoError(first.RecordGuess("pious"))
	s.Require().NoError(s.storage.SaveSession(s.ctx, first))

	second, err := s.storage.GetSession(s.ctx, playerID, 2)
	s.Require().NoError(err)
	s.Equal(model.MaxGuesses, second.Remaining)
}

// Ranking tests

func (s *StorageSuite) TestReplaceAndReadRanking() {
	entries := []model.RankedEntry{
		{Username: "alice", Score: 12},
		{Username: "bob", Score: 30},
		{Username: "carol", Score: 7},
	}
	s.Require().NoError(s.storage.ReplaceRanking(s.ctx, "wins", entries))

	top, err := s.storage.TopRanked(s.ctx, "wins", 10)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal("bob", top[0].Username)
	s.Equal(float64(30), top[0].Score)
	s.Equal("alice", top[1].Username)
	s.Equal("carol", top[2].Username)
}

func (s *StorageSuite) TestReplaceRankingDropsStaleEntries() {
	s.Require().NoError(s.storage.ReplaceRanking(s.ctx, "streaks", []model.RankedEntry{
		{Username: "stale", Score: 99},
	}))
	s.Require().NoError(s.storage.ReplaceRanking(s.ctx, "streaks", []model.RankedEntry{
		{Username: "fresh", Score: 5},
	}))

	top, err := s.storage.TopRanked(s.ctx, "streaks", 10)
	s.Require().NoError(err)
	s.Require().Len(top, 1)
	s.Equal("fresh", top[0].Username)
}

func (s *StorageSuite) TestReplaceRankingWithNoEntriesClears() {
	s.Require().NoError(s.storage.ReplaceRanking(s.ctx, "wins", []model.RankedEntry{
		{Username: "alice", Score: 1},
	}))
	s.Require().NoError(s.storage.ReplaceRanking(s.ctx, "wins", nil))

	top, err := s.storage.TopRanked(s.ctx, "wins", 10)
	s.Require().NoError(err)
	s.Empty(top)
}

func (s *StorageSuite) TestTopRankedRespectsLimit() {
	entries := []model.RankedEntry{
		{Username: "a", Score: 1},
		{Username: "b", Score: 2},
		{Username: "c", Score: 3},
	}
	s.Require().NoError(s.storage.ReplaceRanking(s.ctx, "wins", entries))

	top, err := s.storage.TopRanked(s.ctx, "wins", 2)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal("c", top[0].Username)
}

func (s *StorageSuite) TestRankingsAreIndependent() {
	s.Require().NoError(s.storage.ReplaceRanking(s.ctx, "wins", []model.RankedEntry{{Username: "w", Score: 1}}))
	s.Require().NoError(s.storage.ReplaceRanking(s.ctx, "streaks", []model.RankedEntry{{Username: "s", Score: 2}}))

	wins, err := s.storage.TopRanked(s.ctx, "wins", 10)
	s.Require().NoError(err)
	streaks, err := s.storage.TopRanked(s.ctx, "streaks", 10)
	s.Require().NoError(err)

	s.Equal("w", wins[0].Username)
	s.Equal("s", streaks[0].Username)
}
