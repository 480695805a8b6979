// Package schedule parses wall-clock times and derives the cron expressions
// handed to the external scheduling host.
package schedule

import (
	"regexp"
	"strconv"
)

// TimeSpec is a validated hour:minute wall-clock time.
type TimeSpec struct {
	Hour   int
	Minute int
}

var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseTimeSpec parses a 1-2 digit hour and exactly 2-digit minute separated
// by a colon. It has no side effects.
func ParseTimeSpec(s string) (TimeSpec, error) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return TimeSpec{}, &TimeError{Value: s, Kind: ErrInvalidFormat}
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	if hour > 23 {
		return TimeSpec{}, &TimeError{Value: s, Kind: ErrInvalidHour}
	}
	if minute > 59 {
		return TimeSpec{}, &TimeError{Value: s, Kind: ErrInvalidMinute}
	}

	return TimeSpec{Hour: hour, Minute: minute}, nil
}
