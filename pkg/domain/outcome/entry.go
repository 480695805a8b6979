package outcome

import (
	"strings"
	"time"
)

// Entry is one persisted outcome record. The JSON field names match the
// line format of memory/reflector/outcomes.jsonl; optional fields serialize
// as null rather than empty strings.
type Entry struct {
	Timestamp          time.Time `json:"timestamp"`
	Task               string    `json:"task"`
	Channel            *string   `json:"channel"`
	OutputQuality      Quality   `json:"outputQuality"`
	Delta              *string   `json:"delta"`
	Lesson             *string   `json:"lesson"`
	PrincipleCandidate bool      `json:"principleCandidate"`
}

// Input carries the raw, untrusted fields for a new entry.
type Input struct {
	Task    string
	Channel string
	Quality string
	Delta   string
	Lesson  string

	// PrincipleCandidate overrides the derived flag when non-nil.
	PrincipleCandidate *bool

	// Timestamp defaults to the current instant when zero.
	Timestamp time.Time
}

// NewEntry validates and normalizes raw input into an Entry. It is pure:
// on failure nothing is constructed and no I/O happens. The principle
// candidate flag defaults to true only for corrections.
func NewEntry(in Input) (*Entry, error) {
	task := strings.TrimSpace(in.Task)
	if task == "" {
		return nil, ErrMissingTask
	}

	quality, err := ParseQuality(in.Quality)
	if err != nil {
		return nil, err
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	candidate := quality == QualityCorrection
	if in.PrincipleCandidate != nil {
		candidate = *in.PrincipleCandidate
	}

	return &Entry{
		Timestamp:          ts,
		Task:               task,
		Channel:            optional(in.Channel),
		OutputQuality:      quality,
		Delta:              optional(in.Delta),
		Lesson:             optional(in.Lesson),
		PrincipleCandidate: candidate,
	}, nil
}

// optional maps an empty string to an explicit absent marker.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
