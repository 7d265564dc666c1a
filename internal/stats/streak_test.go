package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func days(ss ...string) []time.Time {
	out := make([]time.Time, len(ss))
	for i, s := range ss {
		out[i] = day(s)
	}
	return out
}

func TestStreaksFindsConsecutiveRun(t *testing.T) {
	streaks := Streaks(days("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"))

	require.Len(t, streaks, 1)
	assert.Equal(t, 3, streaks[0].Length)
	assert.Equal(t, day("2024-01-01"), streaks[0].Start)
	assert.Equal(t, day("2024-01-03"), streaks[0].End)
}

func TestStreaksSingleDayDoesNotQualify(t *testing.T) {
	assert.Empty(t, Streaks(days("2024-01-05")))
	assert.Empty(t, Streaks(days("2024-01-01", "2024-01-03", "2024-01-05")))
}

func TestStreaksEmpty(t *testing.T) {
	assert.Empty(t, Streaks(nil))
}

func TestStreaksMultipleRuns(t *testing.T) {
	streaks := Streaks(days(
		"2024-01-01", "2024-01-02",
		"2024-01-10", "2024-01-11", "2024-01-12", "2024-01-13",
		"2024-02-01",
	))

	require.Len(t, streaks, 2)
	assert.Equal(t, 2, streaks[0].Length)
	assert.Equal(t, 4, streaks[1].Length)
	assert.Equal(t, day("2024-01-10"), streaks[1].Start)
	assert.Equal(t, day("2024-01-13"), streaks[1].End)
}

func TestStreaksSpanMonthBoundary(t *testing.T) {
	streaks := Streaks(days("2024-01-31", "2024-02-01", "2024-02-02"))

	require.Len(t, streaks, 1)
	assert.Equal(t, 3, streaks[0].Length)
}

func TestCurrentStreakIsMostRecent(t *testing.T) {
	streaks := Streaks(days(
		"2024-01-01", "2024-01-02", "2024-01-03",
		"2024-02-01", "2024-02-02",
	))

	assert.Equal(t, 2, CurrentStreak(streaks))
	assert.Equal(t, 3, MaxStreak(streaks))
}

func TestCurrentStreakWithoutStreaks(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil))
	assert.Equal(t, 0, MaxStreak(nil))
}

func TestDayNormalizesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2024, 6, 15, 5, 30, 0, 0, loc) // 2024-06-14 19:30 UTC

	assert.Equal(t, day("2024-06-14"), Day(ts))
}
