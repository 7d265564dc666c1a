package model

import "strconv"

// PlayerStats is the aggregate view of one player's game history,
// computed on demand from their shard's records
type PlayerStats struct {
	CurrentStreak  int            `json:"currentStreak"`
	MaxStreak      int            `json:"maxStreak"`
	GamesPlayed    int            `json:"gamesPlayed"`
	GamesWon       int            `json:"gamesWon"`
	WinPercentage  int            `json:"winPercentage"`
	AverageGuesses int            `json:"averageGuesses"`
	Guesses        GuessHistogram `json:"guesses"`
}

// GuessHistogram counts won games by number of guesses used, keyed "1"
// through "6", with lost games under "fail"
type GuessHistogram map[string]int

// NewGuessHistogram returns a histogram with every bucket present at zero
func NewGuessHistogram() GuessHistogram {
	h := GuessHistogram{"fail": 0}
	for i := 1; i <= MaxGuesses; i++ {
		h[strconv.Itoa(i)] = 0
	}
	return h
}

// AddWin counts a won game under its guess bucket
func (h GuessHistogram) AddWin(guesses int) {
	h[strconv.Itoa(guesses)]++
}

// AddLoss counts a lost game under the fail bucket
func (h GuessHistogram) AddLoss() {
	h["fail"]++
}
