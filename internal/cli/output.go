package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Leaderboard:
		o.printLeaderboard(v)
	case PlayerStats:
		o.printPlayerStats(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RankedEntry response type (matches API)
type RankedEntry struct {
	Username string  `json:"username"`
	Score    float64 `json:"score"`
}

// Leaderboard response type
type Leaderboard struct {
	Entries []RankedEntry `json:"entries"`
}

// PlayerStats response type
type PlayerStats struct {
	CurrentStreak  int            `json:"currentStreak"`
	MaxStreak      int            `json:"maxStreak"`
	GamesPlayed    int            `json:"gamesPlayed"`
	GamesWon       int            `json:"gamesWon"`
	WinPercentage  int            `json:"winPercentage"`
	AverageGuesses int            `json:"averageGuesses"`
	Guesses        map[string]int `json:"guesses"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printLeaderboard(l Leaderboard) {
	if len(l.Entries) == 0 {
		fmt.Println("No entries")
		return
	}
	for i, e := range l.Entries {
		fmt.Printf("%2d. %s (%g)\n", i+1, e.Username, e.Score)
	}
}

func (o *Output) printPlayerStats(s PlayerStats) {
	fmt.Printf("Played: %d\n", s.GamesPlayed)
	fmt.Printf("Won: %d (%d%%)\n", s.GamesWon, s.WinPercentage)
	fmt.Printf("Current Streak: %d\n", s.CurrentStreak)
	fmt.Printf("Max Streak: %d\n", s.MaxStreak)
	fmt.Printf("Average Guesses: %d\n", s.AverageGuesses)
	fmt.Println("Guess Distribution:")
	for _, key := range []string{"1", "2", "3", "4", "5", "6", "fail"} {
		fmt.Printf("  %4s: %d\n", key, s.Guesses[key])
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
