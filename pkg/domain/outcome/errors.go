package outcome

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for outcome entry construction.
var (
	// ErrMissingTask indicates the task description is empty after trimming.
	ErrMissingTask = errors.New("task description is required")

	// ErrInvalidQuality indicates the quality is not in the accepted set.
	ErrInvalidQuality = errors.New("invalid output quality")
)

// QualityError names the rejected value alongside the accepted set so the
// caller can see exactly what was wrong.
type QualityError struct {
	Value string
}

func (e *QualityError) Error() string {
	valid := make([]string, len(Qualities))
	for i, q := range Qualities {
		valid[i] = string(q)
	}
	return fmt.Sprintf("invalid output quality %q (valid values: %s)", e.Value, strings.Join(valid, ", "))
}

// Is allows errors.Is to work with QualityError.
func (e *QualityError) Is(target error) bool {
	return target == ErrInvalidQuality
}
