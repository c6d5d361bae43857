// Package standings holds the in-memory representation of a fetched
// leaderboard snapshot and the per-participant duration arithmetic
// derived from it. A snapshot is immutable after decoding; a refresh
// replaces it wholesale.
package standings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/adventboard/adventboard/internal/contest"
)

// Completion is one scored star as reported by the origin.
type Completion struct {
	GetStarTS int64 `json:"get_star_ts"`
	StarIndex int64 `json:"star_index"`
}

// AwardedAt returns the star's award instant on the reference clock.
func (c Completion) AwardedAt() time.Time {
	return contest.Reference(time.Unix(c.GetStarTS, 0))
}

// Participant is one leaderboard entrant. CompletionDayLevel keeps the
// origin's wire shape: day-of-month and part index are decimal strings.
type Participant struct {
	ID                 int64                            `json:"id"`
	Name               string                           `json:"name"`
	GlobalScore        int                              `json:"global_score"`
	LastStarTS         int64                            `json:"last_star_ts"`
	LocalScore         int                              `json:"local_score"`
	Stars              int                              `json:"stars"`
	CompletionDayLevel map[string]map[string]Completion `json:"completion_day_level"`
}

// DayDurations holds a single day's derived completion durations. Part1
// is measured from the day's reference midnight to the first star; Part2
// is the gap between the first and second stars. A nil field means the
// part was not completed.
type DayDurations struct {
	Part1 *time.Duration
	Part2 *time.Duration
}

// Standings is one fetched leaderboard snapshot.
type Standings struct {
	Event   string                 `json:"event"`
	OwnerID int64                  `json:"owner_id"`
	Members map[string]Participant `json:"members"`
}

// Decode parses an origin response or cache file.
func Decode(data []byte) (*Standings, error) {
	var s Standings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding standings: %w", err)
	}
	return &s, nil
}

// Encode serializes the snapshot in the origin's wire format, which is
// also the on-disk cache format.
func (s *Standings) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding standings: %w", err)
	}
	return data, nil
}

// Year parses the contest year out of the snapshot's event field.
func (s *Standings) Year() (int, error) {
	year, err := strconv.Atoi(s.Event)
	if err != nil {
		return 0, fmt.Errorf("parsing event year %q: %w", s.Event, err)
	}
	return year, nil
}

func dayDurations(year, day int, completions map[string]Completion) DayDurations {
	if day < 1 || day > 31 {
		return DayDurations{}
	}
	first, ok := completions["1"]
	if !ok {
		return DayDurations{}
	}

	part1 := first.AwardedAt().Sub(contest.Midnight(year, day))
	out := DayDurations{Part1: &part1}
	if second, ok := completions["2"]; ok {
		part2 := second.AwardedAt().Sub(first.AwardedAt())
		out.Part2 = &part2
	}
	return out
}

// CompletionDuration returns the given day's part durations. Both fields
// are nil when the day-1 star is missing or the day is out of range.
func (p *Participant) CompletionDuration(day, year int) DayDurations {
	completions, ok := p.CompletionDayLevel[strconv.Itoa(day)]
	if !ok {
		return DayDurations{}
	}
	return dayDurations(year, day, completions)
}

// CompletionMatrix returns the full per-day breakdown for every day
// present in the participant's record, keyed by day-of-month.
func (p *Participant) CompletionMatrix(year int) map[int]DayDurations {
	matrix := make(map[int]DayDurations, len(p.CompletionDayLevel))
	for key, completions := range p.CompletionDayLevel {
		day, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		matrix[day] = dayDurations(year, day, completions)
	}
	return matrix
}

// TotalCompletionDuration sums both parts' durations across every day in
// the participant's record. Unattempted days contribute nothing. An
// arithmetic overflow is reported as an error; it is never expected on
// real contest data.
func (p *Participant) TotalCompletionDuration(year int) (time.Duration, error) {
	var total time.Duration
	add := func(d time.Duration) error {
		sum := total + d
		if (d > 0 && sum < total) || (d < 0 && sum > total) {
			return fmt.Errorf("total completion duration overflows for participant %d", p.ID)
		}
		total = sum
		return nil
	}

	for key, completions := range p.CompletionDayLevel {
		day, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		durations := dayDurations(year, day, completions)
		if durations.Part1 != nil {
			if err := add(*durations.Part1); err != nil {
				return 0, err
			}
		}
		if durations.Part2 != nil {
			if err := add(*durations.Part2); err != nil {
				return 0, err
			}
		}
	}
	return total, nil
}

// HasCompletions reports whether the participant finished at least one
// puzzle part. Participants without completions have no meaningful total
// duration.
func (p *Participant) HasCompletions() bool {
	for _, completions := range p.CompletionDayLevel {
		if _, ok := completions["1"]; ok {
			return true
		}
	}
	return false
}
