package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Session errors
	ErrSessionNotFound   = errors.New("session not found")
	ErrGameInProgress    = errors.New("game is already in progress")
	ErrGameAlreadyPlayed = errors.New("game has already been played")
	ErrGuessLimit        = errors.New("guess limit exceeded")

	// Record errors
	ErrRecordExists   = errors.New("game record already exists")
	ErrInvalidGuesses = errors.New("guesses must be between 1 and 6")

	// Infrastructure errors
	ErrShardUnreachable = errors.New("shard unreachable")
	ErrCacheUnreachable = errors.New("session cache unreachable")
)
