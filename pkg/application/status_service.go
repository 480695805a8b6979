package application

import (
	"time"

	"github.com/reflector-agent/reflector/pkg/domain/workspace"
	"github.com/reflector-agent/reflector/pkg/storage"
)

// WorkspaceStatus summarizes the on-disk workspace state. It reports what
// exists and how much has been recorded; it draws no conclusions from the
// recorded data.
type WorkspaceStatus struct {
	Root             string     `json:"root"`
	Present          []string   `json:"present"`
	Missing          []string   `json:"missing"`
	OutcomeCount     int        `json:"outcomeCount"`
	PrincipleChanges int        `json:"principleChanges"`
	LastOutcome      *time.Time `json:"lastOutcome,omitempty"`
}

// StatusService inspects the workspace without mutating it.
type StatusService struct {
	ws       *storage.FilesystemWorkspace
	outcomes *storage.OutcomeLogStore
	history  *storage.PrincipleHistoryStore
	layout   workspace.Layout
}

func NewStatusService(ws *storage.FilesystemWorkspace, outcomes *storage.OutcomeLogStore, history *storage.PrincipleHistoryStore) *StatusService {
	return &StatusService{
		ws:       ws,
		outcomes: outcomes,
		history:  history,
		layout:   workspace.DefaultLayout(),
	}
}

func (s *StatusService) Status() (*WorkspaceStatus, error) {
	status := &WorkspaceStatus{
		Root:    s.ws.Root(),
		Present: []string{},
		Missing: []string{},
	}

	paths := make([]string, 0, len(s.layout.Dirs)+len(s.layout.Files))
	paths = append(paths, s.layout.Dirs...)
	for _, f := range s.layout.Files {
		paths = append(paths, f.Path)
	}

	for _, p := range paths {
		exists, err := s.ws.Exists(p)
		if err != nil {
			return nil, err
		}
		if exists {
			status.Present = append(status.Present, p)
		} else {
			status.Missing = append(status.Missing, p)
		}
	}

	entries, err := s.outcomes.Entries()
	if err != nil {
		return nil, err
	}
	status.OutcomeCount = len(entries)
	if len(entries) > 0 {
		last := entries[len(entries)-1].Timestamp
		status.LastOutcome = &last
	}

	changes, err := s.history.Count()
	if err != nil {
		return nil, err
	}
	status.PrincipleChanges = changes

	return status, nil
}
