// Package principle defines the append-only record of changes made to the
// decision-principles document. The system captures these changes; judging
// when they should happen belongs to the external reviewer.
package principle

import (
	"errors"
	"fmt"
	"time"
)

// Action classifies a principle change.
type Action string

const (
	ActionAdded   Action = "added"
	ActionRevised Action = "revised"
	ActionRemoved Action = "removed"
)

// Actions is the closed set of accepted change actions.
var Actions = []Action{ActionAdded, ActionRevised, ActionRemoved}

// Change records one revision to the principles document.
type Change struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Principle string    `json:"principle"`
	Rationale *string   `json:"rationale"`
}

// ErrMissingPrinciple indicates the principle text is empty after trimming.
var ErrMissingPrinciple = errors.New("principle text is required")

// ErrInvalidAction indicates the action is not in the accepted set.
var ErrInvalidAction = errors.New("invalid principle action")

// ActionError names the rejected action value.
type ActionError struct {
	Value string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("invalid principle action %q (valid values: added, revised, removed)", e.Value)
}

// Is allows errors.Is to work with ActionError.
func (e *ActionError) Is(target error) bool {
	return target == ErrInvalidAction
}

// ParseAction checks a raw string against the closed set.
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if Action(s) == a {
			return a, nil
		}
	}
	return "", &ActionError{Value: s}
}
