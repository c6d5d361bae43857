package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/adventboard/adventboard/internal/domain/rank"
	"github.com/adventboard/adventboard/internal/domain/standings"
	"github.com/adventboard/adventboard/internal/render"
	"github.com/stretchr/testify/require"
)

func dur(d time.Duration) *time.Duration { return &d }

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{42 * time.Second, "00:00:42"},
		{90 * time.Second, "00:01:30"},
		{3*time.Hour + 4*time.Minute + 5*time.Second, "03:04:05"},
		// Season totals exceed a day; the hour field keeps counting.
		{30 * time.Hour, "30:00:00"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, render.FormatDuration(tt.in))
	}
}

func TestFormatOptionalDuration(t *testing.T) {
	require.Equal(t, "--:--:--", render.FormatOptionalDuration(nil))
	require.Equal(t, "00:01:00", render.FormatOptionalDuration(dur(time.Minute)))
}

func TestGlyphStrip(t *testing.T) {
	row := rank.Row{
		Matrix: map[int]standings.DayDurations{
			1: {Part1: dur(time.Minute), Part2: dur(time.Minute)},
			2: {Part1: dur(time.Minute)},
		},
	}

	strip := render.GlyphStrip(row)
	require.Len(t, strip, 25)
	require.Equal(t, "*+", strip[:2])
	require.Equal(t, strings.Repeat("-", 23), strip[2:])
}

func TestOverallTable(t *testing.T) {
	alice := standings.Participant{Name: "alice", LocalScore: 100, GlobalScore: 5, Stars: 2}
	bob := standings.Participant{Name: "bob", LocalScore: 7, Stars: 0}

	out := render.OverallTable([]rank.Row{
		{Participant: &alice, Total: dur(2 * time.Minute), Average: dur(time.Minute),
			Matrix: map[int]standings.DayDurations{1: {Part1: dur(time.Minute), Part2: dur(time.Minute)}}},
		{Participant: &bob},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4) // tens row, header, two entries

	require.Contains(t, lines[1], "Score")
	require.Contains(t, lines[1], "Stars")
	require.Contains(t, lines[1], "Total Time")
	require.Contains(t, lines[1], "Average")
	require.Contains(t, lines[1], "Name")

	require.Contains(t, lines[2], "1.")
	require.Contains(t, lines[2], "100:5")
	require.Contains(t, lines[2], "*"+strings.Repeat("-", 24))
	require.Contains(t, lines[2], "00:02:00")
	require.Contains(t, lines[2], "alice")

	require.Contains(t, lines[3], "2.")
	require.Contains(t, lines[3], "--:--:--")
	require.Contains(t, lines[3], "bob")
}

func TestDayTable(t *testing.T) {
	alice := standings.Participant{Name: "alice"}
	bob := standings.Participant{Name: "bob"}

	out := render.DayTable([]rank.DayRow{
		{Participant: &alice, Part1: dur(90 * time.Second), Part2: dur(30 * time.Second), Total: dur(2 * time.Minute)},
		{Participant: &bob},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	require.Contains(t, lines[0], "Total")
	require.Contains(t, lines[0], "Part 1")
	require.Contains(t, lines[0], "Part 2")

	require.Contains(t, lines[1], "00:02:00")
	require.Contains(t, lines[1], "00:01:30")
	require.Contains(t, lines[1], "00:00:30")
	require.Contains(t, lines[1], "alice")

	require.Contains(t, lines[2], "--:--:-- --:--:-- --:--:--")
	require.Contains(t, lines[2], "bob")
}
