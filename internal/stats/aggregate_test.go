package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tealeaves/wordstats/internal/model"
)

func record(playerID model.PlayerID, gameID model.GameID, finished string, guesses int, won bool) model.GameRecord {
	return model.GameRecord{
		PlayerID: playerID,
		GameID:   gameID,
		Finished: day(finished),
		Guesses:  guesses,
		Won:      won,
	}
}

func TestAggregateFullExample(t *testing.T) {
	playerID := uuid.New()

	// 10 games, 6 wins with guesses [3,4,3,5,2,6], 4 losses.
	records := []model.GameRecord{
		record(playerID, 1, "2024-01-01", 3, true),
		record(playerID, 2, "2024-01-02", 4, true),
		record(playerID, 3, "2024-01-03", 3, true),
		record(playerID, 4, "2024-01-05", 5, true),
		record(playerID, 5, "2024-01-08", 2, true),
		record(playerID, 6, "2024-01-09", 6, true),
		record(playerID, 7, "2024-01-04", 6, false),
		record(playerID, 8, "2024-01-06", 6, false),
		record(playerID, 9, "2024-01-07", 6, false),
		record(playerID, 10, "2024-01-10", 6, false),
	}

	s := Aggregate(records)

	assert.Equal(t, 10, s.GamesPlayed)
	assert.Equal(t, 6, s.GamesWon)
	assert.Equal(t, 60, s.WinPercentage)
	assert.Equal(t, model.GuessHistogram{
		"1": 0, "2": 1, "3": 2, "4": 1, "5": 1, "6": 1, "fail": 4,
	}, s.Guesses)

	// Win days 01,02,03 then 05 then 08,09: current streak is the latest
	// (08-09), max is the opening three-day run.
	assert.Equal(t, 2, s.CurrentStreak)
	assert.Equal(t, 3, s.MaxStreak)
}

func TestAggregateEmptyHistory(t *testing.T) {
	s := Aggregate(nil)

	assert.Equal(t, 0, s.GamesPlayed)
	assert.Equal(t, 0, s.WinPercentage)
	assert.Equal(t, 0, s.AverageGuesses)
	assert.Equal(t, 0, s.Guesses["fail"])
}

func TestAggregateAverageGuessesRounds(t *testing.T) {
	playerID := uuid.New()
	records := []model.GameRecord{
		record(playerID, 1, "2024-01-01", 3, true),
		record(playerID, 2, "2024-01-02", 4, true),
	}

	// (3+4)/2 = 3.5 rounds to 4
	assert.Equal(t, 4, Aggregate(records).AverageGuesses)
}

func TestAggregateDeduplicatesWinDays(t *testing.T) {
	playerID := uuid.New()
	records := []model.GameRecord{
		record(playerID, 1, "2024-01-01", 3, true),
		record(playerID, 2, "2024-01-01", 2, true),
		record(playerID, 3, "2024-01-02", 4, true),
	}

	s := Aggregate(records)
	assert.Equal(t, 2, s.MaxStreak)
	assert.Equal(t, 2, s.CurrentStreak)
}

func TestLongestStreaksOrdersAndFilters(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	c := uuid.MustParse("00000000-0000-0000-0000-00000000000c")

	out := LongestStreaks(map[model.PlayerID][]time.Time{
		a: days("2024-01-01", "2024-01-02"),
		b: days("2024-01-01", "2024-01-02", "2024-01-03"),
		c: days("2024-01-01", "2024-01-05"), // no consecutive run
	})

	require.Len(t, out, 2)
	assert.Equal(t, b, out[0].PlayerID)
	assert.Equal(t, 3, out[0].Streak)
	assert.Equal(t, a, out[1].PlayerID)
	assert.Equal(t, 2, out[1].Streak)
}

func TestLongestStreaksTieBreaksByPlayerID(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	out := LongestStreaks(map[model.PlayerID][]time.Time{
		b: days("2024-01-01", "2024-01-02"),
		a: days("2024-02-01", "2024-02-02"),
	})

	require.Len(t, out, 2)
	assert.Equal(t, a, out[0].PlayerID)
	assert.Equal(t, b, out[1].PlayerID)
}
