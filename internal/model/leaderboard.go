package model

// RankedEntry is one row of a leaderboard: a display name and its score
type RankedEntry struct {
	Username string  `json:"username"`
	Score    float64 `json:"score"`
}

// WinCount is a per-shard tally of won games for one player
type WinCount struct {
	PlayerID PlayerID
	Wins     int
}

// StreakCount is a per-shard longest-streak figure for one player
type StreakCount struct {
	PlayerID PlayerID
	Streak   int
}
