// Package render formats ranked leaderboard data as fixed-width text
// tables.
package render

import (
	"fmt"
	"time"
)

// missingDuration is the placeholder for a part that was never solved.
const missingDuration = "--:--:--"

// FormatDuration renders a duration as HH:MM:SS. The hour field grows
// as needed; season totals routinely exceed a day.
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}

// FormatOptionalDuration renders a duration or the missing placeholder.
func FormatOptionalDuration(d *time.Duration) string {
	if d == nil {
		return missingDuration
	}
	return FormatDuration(*d)
}
