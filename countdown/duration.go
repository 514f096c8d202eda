// Package countdown implements chime's countdown timers: duration parsing,
// the per-timer state machine, and the registry that owns active timers and
// completed history.
package countdown

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// maxFieldDigits bounds each numeric field so that the seconds arithmetic
// below cannot overflow int64 before the final range check.
const maxFieldDigits = 15

var fieldMultipliers = [3]int64{1, 60, 3600}

// Parse converts a countdown specification into a duration. The input is one
// of "S", "M:S", or "H:M:S" where every field is a non-negative integer with
// no upper bound per field. A zero total is syntactically valid and returned
// as such; rejecting it is the caller's concern.
func Parse(text string) (time.Duration, error) {
	fields := strings.Split(strings.TrimSpace(text), ":")
	if len(fields) > 3 {
		return 0, ErrMalformedDuration
	}

	var total int64

	for i, field := range fields {
		// fields are ordered H:M:S, so the multiplier index counts
		// from the right
		pos := len(fields) - 1 - i

		if len(field) > maxFieldDigits {
			if allDigits(field) {
				return 0, ErrDurationTooLarge
			}

			return 0, ErrMalformedDuration
		}

		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil || v < 0 || !allDigits(field) {
			return 0, ErrMalformedDuration.Wrap(err)
		}

		total += v * fieldMultipliers[pos]
	}

	if total > math.MaxInt64/int64(time.Second) {
		return 0, ErrDurationTooLarge
	}

	return time.Duration(total) * time.Second, nil
}

// allDigits reports whether s consists solely of ASCII digits, ruling out
// signs and whitespace that strconv would otherwise tolerate.
func allDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
