package render

import (
	"fmt"
	"strings"

	"github.com/adventboard/adventboard/internal/domain/rank"
)

// GlyphStrip renders the 25-day attempt strip: '-' unattempted, '+'
// part 1 only, '*' both parts.
func GlyphStrip(row rank.Row) string {
	var b strings.Builder
	for day := 1; day <= 25; day++ {
		durations, ok := row.Matrix[day]
		switch {
		case !ok || durations.Part1 == nil:
			b.WriteByte('-')
		case durations.Part2 == nil:
			b.WriteByte('+')
		default:
			b.WriteByte('*')
		}
	}
	return b.String()
}

// OverallTable renders the season table: rank, local:global score, star
// count, the 25-day glyph strip, total and average durations, name.
func OverallTable(rows []rank.Row) string {
	type line struct {
		local, global, stars, days, total, average, name string
	}

	lines := make([]line, len(rows))
	for i, row := range rows {
		p := row.Participant
		lines[i] = line{
			local:   fmt.Sprintf("%d", p.LocalScore),
			global:  fmt.Sprintf("%d", p.GlobalScore),
			stars:   fmt.Sprintf("%d", p.Stars),
			days:    GlyphStrip(row),
			total:   FormatOptionalDuration(row.Total),
			average: FormatOptionalDuration(row.Average),
			name:    p.Name,
		}
	}

	const (
		scoreTitle   = "Score"
		starsTitle   = "Stars"
		daysTitle    = "1234567890123456789012345"
		totalTitle   = "Total Time"
		averageTitle = "Average"
		nameTitle    = "Name"
	)

	localW := len(scoreTitle) / 2
	globalW := len(scoreTitle) / 2
	starsW := len(starsTitle)
	totalW := len(totalTitle)
	averageW := len(averageTitle)
	nameW := len(nameTitle)
	for _, l := range lines {
		localW = max(localW, len(l.local))
		globalW = max(globalW, len(l.global))
		starsW = max(starsW, len(l.stars))
		totalW = max(totalW, len(l.total))
		averageW = max(averageW, len(l.average))
		nameW = max(nameW, len(l.name))
	}

	rankW := len(fmt.Sprintf("%d", len(lines))) + 1
	scoreW := localW + globalW + 1

	var b strings.Builder
	// Tens row above the day strip, mirroring its column positions.
	b.WriteString(strings.Repeat(" ", rankW+scoreW+starsW+2))
	b.WriteString("          1111111111222222\n")
	fmt.Fprintf(&b, "%-*s %*s %-*s %s %-*s %-*s %-*s\n",
		rankW, "", scoreW, centered(scoreTitle, scoreW), starsW, starsTitle,
		daysTitle, totalW, totalTitle, averageW, averageTitle, nameW, nameTitle)

	for i, l := range lines {
		fmt.Fprintf(&b, "%*s %*s:%-*s %-*s %s %*s %*s %-*s\n",
			rankW, fmt.Sprintf("%d.", i+1),
			localW, l.local, globalW, l.global,
			starsW, l.stars, l.days,
			totalW, l.total, averageW, l.average,
			nameW, l.name)
	}

	return strings.TrimRight(b.String(), "\n")
}

// DayTable renders a single day's table: rank, total, part 1, part 2,
// name, with placeholders for unsolved parts.
func DayTable(rows []rank.DayRow) string {
	type line struct {
		total, part1, part2, name string
	}

	lines := make([]line, len(rows))
	for i, row := range rows {
		lines[i] = line{
			total: FormatOptionalDuration(row.Total),
			part1: FormatOptionalDuration(row.Part1),
			part2: FormatOptionalDuration(row.Part2),
			name:  row.Participant.Name,
		}
	}

	const (
		totalTitle = "Total"
		part1Title = "Part 1"
		part2Title = "Part 2"
		nameTitle  = "Name"
	)

	totalW := len(totalTitle)
	part1W := len(part1Title)
	part2W := len(part2Title)
	nameW := len(nameTitle)
	for _, l := range lines {
		totalW = max(totalW, len(l.total))
		part1W = max(part1W, len(l.part1))
		part2W = max(part2W, len(l.part2))
		nameW = max(nameW, len(l.name))
	}

	rankW := len(fmt.Sprintf("%d", len(lines))) + 1

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s %-*s %-*s %-*s %-*s\n",
		rankW, "", totalW, totalTitle, part1W, part1Title, part2W, part2Title, nameW, nameTitle)

	for i, l := range lines {
		fmt.Fprintf(&b, "%*s %*s %*s %*s %-*s\n",
			rankW, fmt.Sprintf("%d.", i+1),
			totalW, l.total, part1W, l.part1, part2W, l.part2,
			nameW, l.name)
	}

	return strings.TrimRight(b.String(), "\n")
}

func centered(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
