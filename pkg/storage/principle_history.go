package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/reflector-agent/reflector/pkg/domain/principle"
)

const principleSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "timestamp", "action", "principle", "rationale"],
  "properties": {
    "id": { "type": "string", "minLength": 1 },
    "timestamp": { "type": "string" },
    "action": { "enum": ["added", "revised", "removed"] },
    "principle": { "type": "string", "minLength": 1 },
    "rationale": { "type": ["string", "null"] }
  },
  "additionalProperties": false
}`

var principleSchema = gojsonschema.NewStringLoader(principleSchemaJSON)

// PrincipleHistoryStore appends principle changes to
// memory/reflector/principles-history.jsonl, one JSON line per change.
type PrincipleHistoryStore struct {
	mu sync.Mutex
	ws *FilesystemWorkspace
}

func NewPrincipleHistoryStore(ws *FilesystemWorkspace) *PrincipleHistoryStore {
	return &PrincipleHistoryStore{ws: ws}
}

// Path returns the resolved history location under the workspace root.
func (s *PrincipleHistoryStore) Path() (string, error) {
	return s.ws.ResolvePath(PrincipleHistoryFile)
}

// Append validates and appends exactly one change line, creating the
// containing directory and the file on demand. It returns the resolved
// history path.
func (s *PrincipleHistoryStore) Append(change *principle.Change) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.Path()
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(change)
	if err != nil {
		return "", fmt.Errorf("marshal principle change: %w", err)
	}

	if err := validateRecord(principleSchema, data); err != nil {
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

// Changes reads the history back in append order. A missing file reads as
// empty.
func (s *PrincipleHistoryStore) Changes() ([]*principle.Change, error) {
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

	var result []*principle.Change
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var change principle.Change
		if err := json.Unmarshal(line, &change); err != nil {
			return nil, fmt.Errorf("unmarshal principle change: %w", err)
		}
		result = append(result, &change)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan principle history: %w", err)
	}

	return result, nil
}

// Count returns the number of recorded changes.
func (s *PrincipleHistoryStore) Count() (int, error) {
	changes, err := s.Changes()
	if err != nil {
		return 0, err
	}
	return len(changes), nil
}
