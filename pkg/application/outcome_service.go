package application

import (
	"github.com/reflector-agent/reflector/pkg/domain/outcome"
	"github.com/reflector-agent/reflector/pkg/storage"
)

// OutcomeService validates raw input, builds the canonical entry, and only
// then appends it, so a rejected call leaves the log completely unchanged.
type OutcomeService struct {
	store *storage.OutcomeLogStore
}

func NewOutcomeService(store *storage.OutcomeLogStore) *OutcomeService {
	return &OutcomeService{store: store}
}

// Record builds an entry from raw input and appends it to the outcome log.
// It returns the canonical entry and the resolved log path.
func (s *OutcomeService) Record(in outcome.Input) (*outcome.Entry, string, error) {
	entry, err := outcome.NewEntry(in)
	if err != nil {
		return nil, "", err
	}

	path, err := s.store.Append(entry)
	if err != nil {
		return nil, "", err
	}

	return entry, path, nil
}
