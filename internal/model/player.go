package model

import "github.com/google/uuid"

// PlayerID uniquely identifies a player across the system.
// Player identifiers are version 4 UUIDs assigned at account provisioning
// and never change; the partition resolver depends on every call site
// handing it the same 128 bits for the same player.
type PlayerID = uuid.UUID

// Player represents an entry in the user directory
type Player struct {
	ID       PlayerID `json:"player_id"`
	Username string   `json:"username"`
}
