// Package prompts ships the reflection prompt payloads delivered to the
// external scheduling host. Their contents are opaque to the rest of the
// system: nothing here or elsewhere parses them.
package prompts

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Logical prompt names the initializer loads by.
const (
	DailyPrompt  = "daily"
	WeeklyPrompt = "weekly"
)

//go:embed daily.md weekly.md
var builtin embed.FS

// ErrPromptUnavailable indicates a named prompt text could not be loaded.
var ErrPromptUnavailable = errors.New("prompt unavailable")

// LoadError names the prompt that failed to load.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("prompt %q unavailable: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is to work with LoadError.
func (e *LoadError) Is(target error) bool {
	return target == ErrPromptUnavailable
}

// Loader resolves prompt text by logical name.
type Loader interface {
	Load(name string) (string, error)
}

// EmbeddedLoader serves the prompt texts compiled into the binary.
type EmbeddedLoader struct{}

func (EmbeddedLoader) Load(name string) (string, error) {
	data, err := builtin.ReadFile(name + ".md")
	if err != nil {
		return "", &LoadError{Name: name, Err: err}
	}
	return string(data), nil
}

// DirLoader reads prompt texts from a directory, deferring to a fallback
// loader for names it does not find. This lets a workspace override the
// shipped prompts by dropping files into <root>/prompts/.
type DirLoader struct {
	Dir      string
	Fallback Loader
}

func (l DirLoader) Load(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(l.Dir, name+".md"))
	if err == nil {
		return string(data), nil
	}
	if os.IsNotExist(err) && l.Fallback != nil {
		return l.Fallback.Load(name)
	}
	return "", &LoadError{Name: name, Err: err}
}
