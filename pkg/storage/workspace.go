// Package storage owns the on-disk reflector workspace: layout paths under
// a single root and the append-only JSONL logs.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Workspace-relative locations of the persisted state.
const (
	MemoryDir            = "memory"
	ReflectorDir         = "memory/reflector"
	WeeklySummariesDir   = "memory/reflector/weekly-summaries"
	PrinciplesFile       = "PRINCIPLES.md"
	OutcomeLogFile       = "memory/reflector/outcomes.jsonl"
	PrincipleHistoryFile = "memory/reflector/principles-history.jsonl"
)

// FilesystemWorkspace manages the directory/file layout under one root.
type FilesystemWorkspace struct {
	root string
}

func NewFilesystemWorkspace(root string) *FilesystemWorkspace {
	return &FilesystemWorkspace{root: root}
}

// Root returns the workspace root directory.
func (w *FilesystemWorkspace) Root() string {
	return w.root
}

// ResolvePath joins a workspace-relative path onto the root and rejects
// anything that would escape it.
func (w *FilesystemWorkspace) ResolvePath(rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("workspace path cannot be empty")
	}

	root := filepath.Clean(w.root)
	cleanPath := filepath.Clean(filepath.Join(root, rel))

	if cleanPath != root && !strings.HasPrefix(cleanPath, root+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid workspace path: %s", rel)
	}

	return cleanPath, nil
}

// Exists reports whether a workspace-relative path is present.
func (w *FilesystemWorkspace) Exists(rel string) (bool, error) {
	path, err := w.ResolvePath(rel)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, &StorageError{Op: "stat", Path: path, Err: err}
}

// EnsureDir creates a directory together with any missing ancestors.
// An already existing directory is success, so concurrent first runs both
// initializing the same root stay idempotent.
func (w *FilesystemWorkspace) EnsureDir(rel string) error {
	path, err := w.ResolvePath(rel)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(path, 0750); err != nil {
		return &StorageError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

// WriteFileIfAbsent writes default content only when the file does not
// exist yet. Existing files are never overwritten; losing the create race
// to a concurrent initializer is also success.
func (w *FilesystemWorkspace) WriteFileIfAbsent(rel, content string) error {
	path, err := w.ResolvePath(rel)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return &StorageError{Op: "create", Path: path, Err: err}
	}

	if _, werr := f.WriteString(content); werr != nil {
		f.Close() //nolint:errcheck // write error takes precedence
		return &StorageError{Op: "write", Path: path, Err: werr}
	}

	if err := f.Close(); err != nil {
		return &StorageError{Op: "close", Path: path, Err: err}
	}
	return nil
}
