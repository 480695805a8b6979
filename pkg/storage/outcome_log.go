package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/reflector-agent/reflector/pkg/domain/outcome"
)

const outcomeSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["timestamp", "task", "channel", "outputQuality", "delta", "lesson", "principleCandidate"],
  "properties": {
    "timestamp": { "type": "string" },
    "task": { "type": "string", "minLength": 1 },
    "channel": { "type": ["string", "null"] },
    "outputQuality": { "enum": ["correction", "edit", "praise", "silence", "unknown"] },
    "delta": { "type": ["string", "null"] },
    "lesson": { "type": ["string", "null"] },
    "principleCandidate": { "type": "boolean" }
  },
  "additionalProperties": false
}`

var outcomeSchema = gojsonschema.NewStringLoader(outcomeSchemaJSON)

// OutcomeLogStore appends outcome entries to memory/reflector/outcomes.jsonl
// as one self-contained JSON line per entry. Existing lines are never read,
// reordered, or rewritten on the append path.
type OutcomeLogStore struct {
	mu sync.Mutex
	ws *FilesystemWorkspace
}

func NewOutcomeLogStore(ws *FilesystemWorkspace) *OutcomeLogStore {
	return &OutcomeLogStore{ws: ws}
}

// Path returns the resolved log location under the workspace root.
func (s *OutcomeLogStore) Path() (string, error) {
	return s.ws.ResolvePath(OutcomeLogFile)
}

// Append serializes the entry, validates it against the line schema, and
// appends exactly one line, creating the containing directory and the file
// on demand. It returns the resolved log path.
func (s *OutcomeLogStore) Append(entry *outcome.Entry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.Path()
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("marshal outcome entry: %w", err)
	}

	if err := validateRecord(outcomeSchema, data); err != nil {
		return "", err
	}

	if err := s.ws.EnsureDir(ReflectorDir); err != nil {
		return "", err
	}

	if err := appendLine(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// Entries reads the log back in append order. A missing log reads as empty.
// Only inspection commands use this; the append path never does.
func (s *OutcomeLogStore) Entries() ([]*outcome.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.Path()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}
	defer f.Close() //nolint:errcheck // read-only file

	var result []*outcome.Entry
	scanner := bufio.NewScanner(f)

	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry outcome.Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("unmarshal outcome entry: %w", err)
		}
		result = append(result, &entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan outcome log: %w", err)
	}

	return result, nil
}

// Count returns the number of recorded outcomes.
func (s *OutcomeLogStore) Count() (int, error) {
	entries, err := s.Entries()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
