package cli

import (
	"errors"
	"fmt"

	"github.com/reflector-agent/reflector/pkg/domain/outcome"
	"github.com/reflector-agent/reflector/pkg/domain/principle"
	"github.com/reflector-agent/reflector/pkg/domain/schedule"
	"github.com/reflector-agent/reflector/pkg/prompts"
	"github.com/reflector-agent/reflector/pkg/storage"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, schedule.ErrInvalidFormat),
		errors.Is(err, schedule.ErrInvalidHour),
		errors.Is(err, schedule.ErrInvalidMinute):
		return NewCLIError(err.Error(), "Times must be H:MM or HH:MM with hour 0-23 and minute 00-59", err)
	case errors.Is(err, outcome.ErrMissingTask):
		return NewCLIError(err.Error(), "Pass a task description with --task", err)
	case errors.Is(err, outcome.ErrInvalidQuality):
		return NewCLIError(err.Error(), "Pick one of: correction, edit, praise, silence, unknown", err)
	case errors.Is(err, principle.ErrMissingPrinciple):
		return NewCLIError(err.Error(), "Pass the principle text with --text", err)
	case errors.Is(err, principle.ErrInvalidAction):
		return NewCLIError(err.Error(), "Pick one of: added, revised, removed", err)
	case errors.Is(err, prompts.ErrPromptUnavailable):
		return NewCLIError(err.Error(), "Check the prompts/ directory under the workspace root", err)
	case errors.Is(err, storage.ErrStorage):
		return NewCLIError(err.Error(), "Check permissions and free space under the workspace root", err)
	}

	return err
}
