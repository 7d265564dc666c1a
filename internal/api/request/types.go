package request

// StartGameRequest is the request body for starting a game
type StartGameRequest struct {
	Username string `json:"username"`
	GameID   int64  `json:"game_id"`
}

// UpdateGameRequest is the request body for submitting a guess
type UpdateGameRequest struct {
	PlayerID string `json:"player_id"`
	GameID   int64  `json:"game_id"`
	Guess    string `json:"guess"`
}

// CompleteGameRequest is the request body for finalizing a game
type CompleteGameRequest struct {
	PlayerID string `json:"player_id"`
	GameID   int64  `json:"game_id"`
	Won      bool   `json:"won"`
}

// CreateRecordRequest is the request body for direct record ingest
type CreateRecordRequest struct {
	PlayerID string `json:"player_id"`
	GameID   int64  `json:"game_id"`
	Finished string `json:"finished"` // RFC 3339; empty means now
	Guesses  int    `json:"guesses"`
	Won      bool   `json:"won"`
}
