package model

import "time"

// GameID identifies a game (a specific day's puzzle). Unique per player,
// not globally: two players may both play game 42.
type GameID int64

// MaxGuesses is the number of guesses a player gets per game
const MaxGuesses = 6

// GameRecord is one finished game. Append-only: written exactly once when
// a session reaches a terminal state, never updated or deleted.
type GameRecord struct {
	PlayerID PlayerID  `json:"player_id"`
	GameID   GameID    `json:"game_id"`
	Finished time.Time `json:"finished"`
	Guesses  int       `json:"guesses"`
	Won      bool      `json:"won"`
}

// Validate checks the record's guess count is in range
func (r *GameRecord) Validate() error {
	if r.Guesses < 1 || r.Guesses > MaxGuesses {
		return ErrInvalidGuesses
	}
	return nil
}

// Session is the live state of one in-progress game. The whole value is
// serialized to the session cache on every change; there are no deltas.
type Session struct {
	PlayerID  PlayerID           `json:"player_id"`
	GameID    GameID             `json:"game_id"`
	Guesses   [MaxGuesses]string `json:"guesses"`
	Remaining int                `json:"remaining"`
}

// NewSession creates a fresh session with all guess slots empty
func NewSession(playerID PlayerID, gameID GameID) *Session {
	return &Session{
		PlayerID:  playerID,
		GameID:    gameID,
		Remaining: MaxGuesses,
	}
}

// GuessesUsed returns how many guesses have been submitted so far
func (s *Session) GuessesUsed() int {
	return MaxGuesses - s.Remaining
}

// RecordGuess appends a guess into the next empty slot and decrements the
// remaining counter. Fails with ErrGuessLimit once the counter hits zero.
func (s *Session) RecordGuess(guess string) error {
	if s.Remaining < 1 {
		return ErrGuessLimit
	}
	s.Guesses[s.GuessesUsed()] = guess
	s.Remaining--
	return nil
}
