package storage

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// appendLine appends one complete line to path in a single write. The file
// is opened O_APPEND so the kernel serializes the write against other
// appenders; callers additionally hold a per-store mutex so one process
// never interleaves its own lines.
func appendLine(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return &StorageError{Op: "open", Path: path, Err: err}
	}

	if _, werr := f.Write(append(data, '\n')); werr != nil {
		f.Close() //nolint:errcheck // write error takes precedence
		return &StorageError{Op: "append", Path: path, Err: werr}
	}

	if err := f.Close(); err != nil {
		return &StorageError{Op: "close", Path: path, Err: err}
	}
	return nil
}

// validateRecord checks a serialized record against its line schema before
// anything touches the log, so a malformed record can never be persisted.
func validateRecord(schema gojsonschema.JSONLoader, data []byte) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validate record: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("record failed schema validation: %s", strings.Join(msgs, "; "))
	}
	return nil
}
