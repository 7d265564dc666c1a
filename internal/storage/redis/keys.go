package redis

import (
	"fmt"

	"github.com/tealeaves/wordstats/internal/model"
)

// Key prefix for all wordstats data
const keyPrefix = "wordstats"

// sessionKey returns the Redis key for a live game session
func sessionKey(playerID model.PlayerID, gameID model.GameID) string {
	return fmt.Sprintf("%s:session:%s:%d", keyPrefix, playerID, gameID)
}

// rankingKey returns the Redis key for a leaderboard sorted set
func rankingKey(name string) string {
	return fmt.Sprintf("%s:ranking:%s", keyPrefix, name)
}
