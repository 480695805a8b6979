package application

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reflector-agent/reflector/pkg/domain/principle"
	"github.com/reflector-agent/reflector/pkg/storage"
)

// PrincipleService captures changes to the principles document in the
// append-only history. It records decisions made elsewhere; it makes none
// itself.
type PrincipleService struct {
	store *storage.PrincipleHistoryStore
}

func NewPrincipleService(store *storage.PrincipleHistoryStore) *PrincipleService {
	return &PrincipleService{store: store}
}

// Record validates the raw fields, assigns an ID and timestamp, and appends
// one change line. It returns the change and the resolved history path.
func (s *PrincipleService) Record(action, text, rationale string) (*principle.Change, string, error) {
	parsed, err := principle.ParseAction(action)
	if err != nil {
		return nil, "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, "", principle.ErrMissingPrinciple
	}

	change := &principle.Change{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Action:    parsed,
		Principle: text,
	}
	if r := strings.TrimSpace(rationale); r != "" {
		change.Rationale = &r
	}

	path, err := s.store.Append(change)
	if err != nil {
		return nil, "", err
	}

	return change, path, nil
}
