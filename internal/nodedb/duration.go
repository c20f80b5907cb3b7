package nodedb

import (
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// FormatDuration renders seconds as "1d 2h 3m 4s", largest unit first.
// Zero-valued units are left out; a zero duration renders as "0s".
// Negative values get a leading "-".
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		return "-" + FormatDuration(-seconds)
	}

	days := seconds / secondsPerDay
	seconds %= secondsPerDay
	hours := seconds / secondsPerHour
	seconds %= secondsPerHour
	minutes := seconds / secondsPerMinute
	seconds %= secondsPerMinute

	parts := make([]string, 0, 4)
	if days > 0 {
		parts = append(parts, strconv.FormatInt(days, 10)+"d")
	}
	if hours > 0 {
		parts = append(parts, strconv.FormatInt(hours, 10)+"h")
	}
	if minutes > 0 {
		parts = append(parts, strconv.FormatInt(minutes, 10)+"m")
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, strconv.FormatInt(seconds, 10)+"s")
	}
	return strings.Join(parts, " ")
}
