package schedule

import (
	"errors"
	"fmt"
)

// Domain errors for time parsing.
var (
	// ErrInvalidFormat indicates the string does not look like H:MM or HH:MM.
	ErrInvalidFormat = errors.New("time must be in H:MM or HH:MM form")

	// ErrInvalidHour indicates the hour is outside 0-23.
	ErrInvalidHour = errors.New("hour must be between 0 and 23")

	// ErrInvalidMinute indicates the minute is outside 0-59.
	ErrInvalidMinute = errors.New("minute must be between 00 and 59")
)

// TimeError reports which part of a time string failed validation.
type TimeError struct {
	Value string
	Kind  error
}

func (e *TimeError) Error() string {
	return fmt.Sprintf("invalid time %q: %v", e.Value, e.Kind)
}

// Is allows errors.Is to match the specific validation sentinel.
func (e *TimeError) Is(target error) bool {
	return target == e.Kind
}
