// Package shard maps player identifiers onto the fixed set of record
// store partitions.
package shard

import (
	"encoding/binary"

	"github.com/tealeaves/wordstats/internal/model"
)

// Resolver assigns every player to exactly one shard. The assignment is a
// pure function of the player identifier, so the write path and every read
// path agree on where a player's history lives. The shard count is fixed
// at provisioning time; changing it strands existing data.
type Resolver struct {
	n uint64
}

// NewResolver creates a resolver for a deployment with n shards.
// Panics if n < 1: a zero shard count is a wiring bug, not a runtime
// condition.
func NewResolver(n int) *Resolver {
	if n < 1 {
		panic("shard: resolver requires at least one shard")
	}
	return &Resolver{n: uint64(n)}
}

// Count returns the number of shards
func (r *Resolver) Count() int {
	return int(r.n)
}

// Resolve returns the shard index in [0, n) for the given player.
// The UUID is treated as an unsigned 128-bit big-endian integer and
// reduced mod n. Player IDs are uniformly generated, so the modulo keeps
// shard load balanced without any hashing step.
func (r *Resolver) Resolve(playerID model.PlayerID) int {
	hi := binary.BigEndian.Uint64(playerID[:8])
	lo := binary.BigEndian.Uint64(playerID[8:])

	// (hi*2^64 + lo) mod n. 2^64 mod n is computed as (2^63 mod n)*2 mod n
	// since 2^64 itself does not fit in a uint64.
	twoTo63 := (uint64(1) << 63) % r.n
	twoTo64 := (twoTo63 + twoTo63) % r.n
	return int(((hi%r.n)*twoTo64%r.n + lo%r.n) % r.n)
}
