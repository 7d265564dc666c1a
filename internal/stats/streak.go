// Package stats computes derived statistics from completed-game records.
// Everything here is pure: no storage access, so the grouping logic can be
// tested without a database and produces identical results on every shard.
package stats

import "time"

// Streak is a maximal run of consecutive calendar days each containing at
// least one win. Runs of a single day do not qualify.
type Streak struct {
	Length int
	Start  time.Time
	End    time.Time
}

// Day truncates a timestamp to its UTC calendar day
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Streaks finds all streaks in a player's winning days. The input must be
// distinct calendar days sorted ascending (as produced by Day).
//
// Each day is ranked 1..len(days) in date order; subtracting rank days
// from a day yields a base date that is identical for every member of a
// consecutive run, so grouping by base date splits the input into maximal
// runs. Groups of size 1 are discarded.
func Streaks(days []time.Time) []Streak {
	var streaks []Streak

	i := 0
	for i < len(days) {
		base := days[i].AddDate(0, 0, -(i + 1))

		j := i + 1
		for j < len(days) && days[j].AddDate(0, 0, -(j+1)).Equal(base) {
			j++
		}

		if size := j - i; size > 1 {
			streaks = append(streaks, Streak{
				Length: size,
				Start:  days[i],
				End:    days[j-1],
			})
		}
		i = j
	}

	return streaks
}

// CurrentStreak returns the length of the streak with the most recent end
// date, or 0 if the player has no streaks
func CurrentStreak(streaks []Streak) int {
	if len(streaks) == 0 {
		return 0
	}
	// Streaks come out of Streaks() in chronological order
	return streaks[len(streaks)-1].Length
}

// MaxStreak returns the length of the longest streak, or 0 if none
func MaxStreak(streaks []Streak) int {
	max := 0
	for _, s := range streaks {
		if s.Length > max {
			max = s.Length
		}
	}
	return max
}
