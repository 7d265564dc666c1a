package response

import (
	"encoding/json"
	"net/http"

	"github.com/tealeaves/wordstats/internal/model"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// SessionState is the wire form of a live session
type SessionState struct {
	PlayerID  string   `json:"player_id"`
	GameID    int64    `json:"game_id"`
	Guesses   []string `json:"guesses"`
	Remaining int      `json:"remaining"`
}

// SessionFromModel converts a session to its wire form
func SessionFromModel(s *model.Session) SessionState {
	guesses := make([]string, s.GuessesUsed())
	copy(guesses, s.Guesses[:s.GuessesUsed()])
	return SessionState{
		PlayerID:  s.PlayerID.String(),
		GameID:    int64(s.GameID),
		Guesses:   guesses,
		Remaining: s.Remaining,
	}
}

// Leaderboard is a ranked list of players for one category
type Leaderboard struct {
	Entries []model.RankedEntry `json:"entries"`
}

// RecordCreated is returned after a game record is ingested
type RecordCreated struct {
	PlayerID string `json:"player_id"`
	GameID   int64  `json:"game_id"`
	Guesses  int    `json:"guesses"`
	Won      bool   `json:"won"`
}
