package rank

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/adventboard/adventboard/internal/domain/standings"
)

// DayKey selects a single-day ordering.
type DayKey string

const (
	// DayKeyTotal orders by the sum of both parts' durations.
	DayKeyTotal DayKey = "total"
	// DayKeyPart1 orders by the part-1 duration, part 2 breaking ties.
	DayKeyPart1 DayKey = "part1"
	// DayKeyPart2 orders by the part-2 duration, part 1 breaking ties.
	DayKeyPart2 DayKey = "part2"
)

// ErrInvalidDay is returned for days outside 1-25.
var ErrInvalidDay = errors.New("day must be between 1 and 25")

// ParseDayKey maps a user-supplied sort name onto a DayKey, defaulting
// to the combined total.
func ParseDayKey(s string) DayKey {
	switch DayKey(s) {
	case DayKeyPart1, DayKeyPart2:
		return DayKey(s)
	default:
		return DayKeyTotal
	}
}

// DayRow pairs a participant with one day's derived durations. Total is
// part 1 plus part 2 (part 2 contributing zero when missing); it is nil
// when the day-1 star is missing. Missing values order after present
// ones and two missing values compare equal.
type DayRow struct {
	Participant *standings.Participant
	Part1       *time.Duration
	Part2       *time.Duration
	Total       *time.Duration
}

// RankDay produces the ordered display sequence for a single day.
func RankDay(s *standings.Standings, year, day int, key DayKey) ([]DayRow, error) {
	if day < 1 || day > 25 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDay, day)
	}

	rows := make([]DayRow, 0, len(s.Members))
	for id := range s.Members {
		p := s.Members[id]
		durations := p.CompletionDuration(day, year)

		row := DayRow{Participant: &p, Part1: durations.Part1, Part2: durations.Part2}
		if durations.Part1 != nil {
			total := *durations.Part1
			if durations.Part2 != nil {
				total += *durations.Part2
			}
			row.Total = &total
		}
		rows = append(rows, row)
	}

	switch key {
	case DayKeyPart1:
		sort.SliceStable(rows, func(i, j int) bool {
			if c := compareDurations(rows[i].Part1, rows[j].Part1); c != 0 {
				return c < 0
			}
			return compareDurations(rows[i].Part2, rows[j].Part2) < 0
		})
	case DayKeyPart2:
		sort.SliceStable(rows, func(i, j int) bool {
			if c := compareDurations(rows[i].Part2, rows[j].Part2); c != 0 {
				return c < 0
			}
			return compareDurations(rows[i].Part1, rows[j].Part1) < 0
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return compareDurations(rows[i].Total, rows[j].Total) < 0
		})
	}

	return rows, nil
}
