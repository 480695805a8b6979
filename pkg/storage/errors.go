package storage

import (
	"errors"
	"fmt"
)

// ErrStorage classifies any underlying filesystem failure. Callers match it
// with errors.Is when they only care that persistence failed.
var ErrStorage = errors.New("storage failure")

// StorageError wraps a filesystem failure with the operation and path it
// occurred on. Failures propagate immediately; nothing in this package
// retries or rolls back.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is to work with StorageError.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
