package application_test

import (
	"github.com/reflector-agent/reflector/pkg/prompts"
)

// stubLoader serves fixed prompt texts, or fails for names in missing.
type stubLoader struct {
	texts   map[string]string
	missing map[string]bool
}

func newStubLoader() *stubLoader {
	return &stubLoader{
		texts: map[string]string{
			prompts.DailyPrompt:  "daily prompt text",
			prompts.WeeklyPrompt: "weekly prompt text",
		},
		missing: map[string]bool{},
	}
}

func (l *stubLoader) Load(name string) (string, error) {
	if l.missing[name] {
		return "", &prompts.LoadError{Name: name}
	}
	return l.texts[name], nil
}
