package shard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIsDeterministic(t *testing.T) {
	r := NewResolver(3)
	id := uuid.MustParse("f07d4756-e5fd-4b2e-9c44-b14e79c90e42")

	first := r.Resolve(id)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, r.Resolve(id))
	}
}

func TestResolveIsInRange(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 16} {
		r := NewResolver(n)
		for i := 0; i < 1000; i++ {
			idx := r.Resolve(uuid.New())
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, n)
		}
	}
}

func TestResolveMatchesFullWidthModulo(t *testing.T) {
	// Known values: the UUID's 128-bit integer value mod 3.
	cases := []struct {
		id   string
		want int
	}{
		{"00000000-0000-0000-0000-000000000000", 0},
		{"00000000-0000-0000-0000-000000000001", 1},
		{"00000000-0000-0000-0000-000000000002", 2},
		{"00000000-0000-0000-0000-000000000003", 0},
		// 2^64 mod 3 == 1, so hi contributes hi mod 3
		{"00000000-0000-0001-0000-000000000000", 1},
		{"00000000-0000-0002-0000-000000000001", 0},
	}

	r := NewResolver(3)
	for _, tc := range cases {
		id, err := uuid.Parse(tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.want, r.Resolve(id), "uuid %s", tc.id)
	}
}

func TestResolveSpreadsLoad(t *testing.T) {
	const n = 3
	const players = 3000

	r := NewResolver(n)
	counts := make([]int, n)
	for i := 0; i < players; i++ {
		counts[r.Resolve(uuid.New())]++
	}

	// Random UUIDs should land roughly evenly; allow a generous margin.
	for idx, c := range counts {
		assert.Greater(t, c, players/n/2, "shard %d starved", idx)
	}
}

func TestNewResolverPanicsOnZeroShards(t *testing.T) {
	assert.Panics(t, func() { NewResolver(0) })
}
