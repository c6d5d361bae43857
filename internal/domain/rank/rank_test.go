package rank_test

import (
	"testing"
	"time"

	"github.com/adventboard/adventboard/internal/contest"
	"github.com/adventboard/adventboard/internal/domain/rank"
	"github.com/adventboard/adventboard/internal/domain/standings"
	"github.com/stretchr/testify/require"
)

const year = 2023

// entrant builds a participant whose day-1 part-1 star lands the given
// offset after the unlock, making its total duration equal to offset.
// A zero offset produces a participant with no completions.
func entrant(id int64, name string, local, global, stars int, offset time.Duration) standings.Participant {
	p := standings.Participant{
		ID:          id,
		Name:        name,
		LocalScore:  local,
		GlobalScore: global,
		Stars:       stars,
	}
	if offset > 0 {
		p.CompletionDayLevel = map[string]map[string]standings.Completion{
			"1": {"1": {GetStarTS: contest.Midnight(year, 1).Add(offset).Unix()}},
		}
	}
	return p
}

func board(members ...standings.Participant) *standings.Standings {
	s := &standings.Standings{Event: "2023", Members: map[string]standings.Participant{}}
	for _, m := range members {
		s.Members[m.Name] = m
	}
	return s
}

func names(rows []rank.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Participant.Name
	}
	return out
}

func TestRankLocalScoreTieBrokenByTime(t *testing.T) {
	s := board(
		entrant(1, "A", 100, 0, 1, 500*time.Second),
		entrant(2, "B", 100, 0, 1, 200*time.Second),
		entrant(3, "C", 50, 0, 1, 1*time.Second),
	)

	rows, err := rank.Rank(s, rank.KeyLocal)
	require.NoError(t, err)
	require.Equal(t, []string{"B", "A", "C"}, names(rows))
}

func TestRankGlobal(t *testing.T) {
	s := board(
		entrant(1, "A", 10, 50, 1, time.Minute),
		entrant(2, "B", 90, 0, 1, time.Minute),
		entrant(3, "C", 80, 50, 1, 30*time.Second),
	)

	rows, err := rank.Rank(s, rank.KeyGlobal)
	require.NoError(t, err)
	// Global score first; C beats A on local score; B has none.
	require.Equal(t, []string{"C", "A", "B"}, names(rows))
}

func TestRankStars(t *testing.T) {
	s := board(
		entrant(1, "A", 40, 0, 2, time.Minute),
		entrant(2, "B", 60, 0, 1, time.Second),
		entrant(3, "C", 40, 0, 2, 30*time.Second),
	)

	rows, err := rank.Rank(s, rank.KeyStars)
	require.NoError(t, err)
	// Star count first; A and C tie on stars and local score, so the
	// faster total wins.
	require.Equal(t, []string{"C", "A", "B"}, names(rows))
}

func TestRankTimeNoCompletionsSortsLast(t *testing.T) {
	s := board(
		entrant(1, "idle", 500, 100, 0, 0),
		entrant(2, "slow", 1, 0, 1, 10*time.Hour),
		entrant(3, "fast", 1, 0, 1, time.Second),
	)

	rows, err := rank.Rank(s, rank.KeyTime)
	require.NoError(t, err)
	require.Equal(t, []string{"fast", "slow", "idle"}, names(rows))
	require.Nil(t, rows[2].Total)
}

func TestRankNoCompletionsSortsLastOnTieBreak(t *testing.T) {
	s := board(
		entrant(1, "done", 100, 0, 1, time.Hour),
		entrant(2, "idle", 100, 0, 0, 0),
	)

	rows, err := rank.Rank(s, rank.KeyLocal)
	require.NoError(t, err)
	require.Equal(t, []string{"done", "idle"}, names(rows))
}

func TestRankAverage(t *testing.T) {
	p := entrant(1, "A", 10, 0, 0, 10*time.Minute)
	p.Stars = 2
	s := board(p)

	rows, err := rank.Rank(s, rank.KeyLocal)
	require.NoError(t, err)
	require.NotNil(t, rows[0].Average)
	require.Equal(t, 5*time.Minute, *rows[0].Average)
}

func TestRankBadEventYear(t *testing.T) {
	s := &standings.Standings{Event: "not-a-year"}
	_, err := rank.Rank(s, rank.KeyLocal)
	require.Error(t, err)
}

func TestParseKey(t *testing.T) {
	require.Equal(t, rank.KeyGlobal, rank.ParseKey("global"))
	require.Equal(t, rank.KeyStars, rank.ParseKey("stars"))
	require.Equal(t, rank.KeyTime, rank.ParseKey("time"))
	require.Equal(t, rank.KeyLocal, rank.ParseKey("local"))
	require.Equal(t, rank.KeyLocal, rank.ParseKey("anything-else"))
}
