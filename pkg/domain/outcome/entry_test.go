package outcome_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/reflector-agent/reflector/pkg/domain/outcome"
)

func TestNewEntry_PrincipleCandidateDefaults(t *testing.T) {
	tests := []struct {
		quality string
		want    bool
	}{
		{"correction", true},
		{"edit", false},
		{"praise", false},
		{"silence", false},
		{"unknown", false},
	}

	for _, tt := range tests {
		entry, err := outcome.NewEntry(outcome.Input{Task: "review PR", Quality: tt.quality})
		if err != nil {
			t.Fatalf("NewEntry(quality=%q): %v", tt.quality, err)
		}
		if entry.PrincipleCandidate != tt.want {
			t.Errorf("quality %q: PrincipleCandidate = %v, want %v", tt.quality, entry.PrincipleCandidate, tt.want)
		}
	}
}

func TestNewEntry_PrincipleCandidateOverride(t *testing.T) {
	no := false
	entry, err := outcome.NewEntry(outcome.Input{Task: "t", Quality: "correction", PrincipleCandidate: &no})
	if err != nil {
		t.Fatal(err)
	}
	if entry.PrincipleCandidate {
		t.Error("explicit false should override the correction default")
	}

	yes := true
	entry, err = outcome.NewEntry(outcome.Input{Task: "t", Quality: "praise", PrincipleCandidate: &yes})
	if err != nil {
		t.Fatal(err)
	}
	if !entry.PrincipleCandidate {
		t.Error("explicit true should override the praise default")
	}
}

func TestNewEntry_MissingTask(t *testing.T) {
	for _, task := range []string{"", "   ", "\t\n"} {
		_, err := outcome.NewEntry(outcome.Input{Task: task, Quality: "praise"})
		if !errors.Is(err, outcome.ErrMissingTask) {
			t.Errorf("task %q: got %v, want ErrMissingTask", task, err)
		}
	}
}

func TestNewEntry_InvalidQuality(t *testing.T) {
	_, err := outcome.NewEntry(outcome.Input{Task: "t", Quality: "great"})
	if !errors.Is(err, outcome.ErrInvalidQuality) {
		t.Fatalf("got %v, want ErrInvalidQuality", err)
	}
	if !strings.Contains(err.Error(), `"great"`) {
		t.Errorf("error should name the offending value, got: %v", err)
	}
	for _, q := range outcome.Qualities {
		if !strings.Contains(err.Error(), string(q)) {
			t.Errorf("error should enumerate %q, got: %v", q, err)
		}
	}
}

func TestNewEntry_Normalization(t *testing.T) {
	entry, err := outcome.NewEntry(outcome.Input{Task: "  fix bug  ", Quality: "edit"})
	if err != nil {
		t.Fatal(err)
	}
	if entry.Task != "fix bug" {
		t.Errorf("Task = %q, want trimmed", entry.Task)
	}
	if entry.Channel != nil || entry.Delta != nil || entry.Lesson != nil {
		t.Error("missing optional fields should normalize to nil")
	}
	if entry.Timestamp.IsZero() {
		t.Error("timestamp should default to now")
	}
}

func TestNewEntry_KeepsSuppliedFields(t *testing.T) {
	ts := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	entry, err := outcome.NewEntry(outcome.Input{
		Task:      "t",
		Channel:   "#dev",
		Quality:   "correction",
		Delta:     "tone",
		Lesson:    "ask first",
		Timestamp: ts,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !entry.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", entry.Timestamp, ts)
	}
	if entry.Channel == nil || *entry.Channel != "#dev" {
		t.Errorf("Channel = %v, want #dev", entry.Channel)
	}
	if entry.Delta == nil || *entry.Delta != "tone" {
		t.Errorf("Delta = %v, want tone", entry.Delta)
	}
	if entry.Lesson == nil || *entry.Lesson != "ask first" {
		t.Errorf("Lesson = %v, want ask first", entry.Lesson)
	}
}

func TestEntry_SerializesAbsentFieldsAsNull(t *testing.T) {
	entry, err := outcome.NewEntry(outcome.Input{Task: "t", Quality: "silence"})
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"channel", "delta", "lesson"} {
		raw, ok := decoded[key]
		if !ok {
			t.Errorf("key %q missing from serialized entry", key)
			continue
		}
		if string(raw) != "null" {
			t.Errorf("key %q = %s, want null", key, raw)
		}
	}
}
