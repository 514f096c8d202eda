// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// TimestampLayout is the layout used when persisting timestamps. Times are
// stored in the local zone without an offset.
const TimestampLayout = "2006-01-02T15:04:05"

// Round rounds a time value in seconds, minutes, or hours to the nearest
// integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToHoursMinsSecs splits a seconds value into hours, minutes, and
// seconds.
func SecsToHoursMinsSecs(total int) (hrs, mins, secs int) {
	hrs = total / secondsInAnHour
	mins = (total % secondsInAnHour) / secondsInAMinute
	secs = total % secondsInAMinute

	return
}

// FormatSeconds expresses a seconds value as an H:MM:SS string. The hour
// field is omitted when zero.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}

	hrs, mins, secs := SecsToHoursMinsSecs(total)

	if hrs > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
	}

	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FormatTimestamp renders a time in the persisted timestamp layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp reads a persisted timestamp back as a local time.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.Local)
}
