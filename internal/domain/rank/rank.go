// Package rank orders a standings snapshot's participants under a
// selectable sort key. The snapshot is borrowed read-only; the output is
// derived display data.
package rank

import (
	"fmt"
	"sort"
	"time"

	"github.com/adventboard/adventboard/internal/domain/standings"
)

// Key selects an overall ordering.
type Key string

const (
	// KeyLocal orders by local score, fastest total time breaking ties.
	KeyLocal Key = "local"
	// KeyGlobal orders by global score, then local score, then time.
	KeyGlobal Key = "global"
	// KeyStars orders by star count, then local score, then time.
	KeyStars Key = "stars"
	// KeyTime orders by total completion time alone.
	KeyTime Key = "time"
)

// ParseKey maps a user-supplied sort name onto a Key, defaulting to
// local score for anything unrecognized.
func ParseKey(s string) Key {
	switch Key(s) {
	case KeyGlobal, KeyStars, KeyTime:
		return Key(s)
	default:
		return KeyLocal
	}
}

// Row pairs a participant with the derived fields a display needs.
// Total and Average are nil for participants without any completions;
// such participants order after everyone with a measurable time.
type Row struct {
	Participant *standings.Participant
	Total       *time.Duration
	Average     *time.Duration
	Matrix      map[int]standings.DayDurations
}

// Rank produces the ordered, tie-broken display sequence for the whole
// contest under the given key.
func Rank(s *standings.Standings, key Key) ([]Row, error) {
	year, err := s.Year()
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(s.Members))
	for id := range s.Members {
		p := s.Members[id]
		row := Row{Participant: &p, Matrix: p.CompletionMatrix(year)}

		if p.HasCompletions() {
			total, err := p.TotalCompletionDuration(year)
			if err != nil {
				return nil, fmt.Errorf("ranking participant %d: %w", p.ID, err)
			}
			row.Total = &total

			average := total
			if p.Stars > 0 {
				average = total / time.Duration(p.Stars)
			}
			row.Average = &average
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, comparator(rows, key))
	return rows, nil
}

func comparator(rows []Row, key Key) func(i, j int) bool {
	switch key {
	case KeyGlobal:
		return func(i, j int) bool {
			a, b := rows[i], rows[j]
			if a.Participant.GlobalScore != b.Participant.GlobalScore {
				return a.Participant.GlobalScore > b.Participant.GlobalScore
			}
			if a.Participant.LocalScore != b.Participant.LocalScore {
				return a.Participant.LocalScore > b.Participant.LocalScore
			}
			return compareDurations(a.Total, b.Total) < 0
		}
	case KeyStars:
		return func(i, j int) bool {
			a, b := rows[i], rows[j]
			if a.Participant.Stars != b.Participant.Stars {
				return a.Participant.Stars > b.Participant.Stars
			}
			if a.Participant.LocalScore != b.Participant.LocalScore {
				return a.Participant.LocalScore > b.Participant.LocalScore
			}
			return compareDurations(a.Total, b.Total) < 0
		}
	case KeyTime:
		return func(i, j int) bool {
			return compareDurations(rows[i].Total, rows[j].Total) < 0
		}
	default:
		return func(i, j int) bool {
			a, b := rows[i], rows[j]
			if a.Participant.LocalScore != b.Participant.LocalScore {
				return a.Participant.LocalScore > b.Participant.LocalScore
			}
			return compareDurations(a.Total, b.Total) < 0
		}
	}
}

// compareDurations orders shorter durations first and missing durations
// after every present one; two missing durations compare equal.
func compareDurations(a, b *time.Duration) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}
