package storage_test

import (
	"testing"
	"time"

	"github.com/reflector-agent/reflector/pkg/domain/principle"
	"github.com/reflector-agent/reflector/pkg/storage"
)

func TestPrincipleHistoryStore_AppendAndReadBack(t *testing.T) {
	ws := storage.NewFilesystemWorkspace(t.TempDir())
	store := storage.NewPrincipleHistoryStore(ws)

	rationale := "repeated corrections about tone"
	change := &principle.Change{
		ID:        "c-1",
		Timestamp: time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC),
		Action:    principle.ActionAdded,
		Principle: "Match the requester's tone",
		Rationale: &rationale,
	}

	if _, err := store.Append(change); err != nil {
		t.Fatal(err)
	}

	changes, err := store.Changes()
	if err != nil {
		t.Fatal(err)
	}
	if len(changes) != 1 {
		t.Fatalf("got %d changes, want 1", len(changes))
	}
	got := changes[0]
	if got.ID != "c-1" || got.Action != principle.ActionAdded {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Rationale == nil || *got.Rationale != rationale {
		t.Errorf("Rationale = %v", got.Rationale)
	}
}

func TestPrincipleHistoryStore_RejectsUnknownAction(t *testing.T) {
	ws := storage.NewFilesystemWorkspace(t.TempDir())
	store := storage.NewPrincipleHistoryStore(ws)

	change := &principle.Change{
		ID:        "c-1",
		Timestamp: time.Now(),
		Action:    principle.Action("tweaked"),
		Principle: "p",
	}

	if _, err := store.Append(change); err == nil {
		t.Fatal("unknown action should fail schema validation")
	}

	count, err := store.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("Count = %d, want 0 after rejected append", count)
	}
}
