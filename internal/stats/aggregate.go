package stats

import (
	"math"
	"sort"
	"time"

	"github.com/tealeaves/wordstats/internal/model"
)

// Aggregate computes a player's full statistics from their shard's game
// records. Order of the input does not matter.
func Aggregate(records []model.GameRecord) model.PlayerStats {
	s := model.PlayerStats{
		Guesses: model.NewGuessHistogram(),
	}

	var totalGuesses int
	winDays := make(map[time.Time]struct{})

	for _, r := range records {
		s.GamesPlayed++
		totalGuesses += r.Guesses
		if r.Won {
			s.GamesWon++
			s.Guesses.AddWin(r.Guesses)
			winDays[Day(r.Finished)] = struct{}{}
		} else {
			s.Guesses.AddLoss()
		}
	}

	if s.GamesPlayed > 0 {
		s.WinPercentage = int(math.Round(float64(s.GamesWon) / float64(s.GamesPlayed) * 100))
		s.AverageGuesses = int(math.Round(float64(totalGuesses) / float64(s.GamesPlayed)))
	}

	streaks := Streaks(sortedDays(winDays))
	s.CurrentStreak = CurrentStreak(streaks)
	s.MaxStreak = MaxStreak(streaks)

	return s
}

// LongestStreaks computes the longest streak per player from each
// player's distinct winning days. Players without a qualifying streak are
// omitted.
func LongestStreaks(winDaysByPlayer map[model.PlayerID][]time.Time) []model.StreakCount {
	var out []model.StreakCount
	for playerID, days := range winDaysByPlayer {
		if max := MaxStreak(Streaks(days)); max > 0 {
			out = append(out, model.StreakCount{PlayerID: playerID, Streak: max})
		}
	}

	// Descending by streak, ties broken by player ID for reproducibility
	sort.Slice(out, func(i, j int) bool {
		if out[i].Streak != out[j].Streak {
			return out[i].Streak > out[j].Streak
		}
		return out[i].PlayerID.String() < out[j].PlayerID.String()
	})
	return out
}

func sortedDays(set map[time.Time]struct{}) []time.Time {
	days := make([]time.Time, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
