package workspace_test

import (
	"encoding/json"
	"testing"

	"github.com/reflector-agent/reflector/pkg/domain/workspace"
)

func TestDefaultLayout(t *testing.T) {
	layout := workspace.DefaultLayout()

	if len(layout.Dirs) != 3 {
		t.Errorf("expected 3 directories, got %d", len(layout.Dirs))
	}
	if len(layout.Files) != 3 {
		t.Errorf("expected 3 files, got %d", len(layout.Files))
	}
	if layout.Files[0].Path != "PRINCIPLES.md" || layout.Files[0].Content == "" {
		t.Error("PRINCIPLES.md should carry template content")
	}
	for _, f := range layout.Files[1:] {
		if f.Content != "" {
			t.Errorf("%s should default to empty content", f.Path)
		}
	}
}

func TestReportBuilder(t *testing.T) {
	b := workspace.NewReportBuilder("/ws", "UTC", "03:30", "03:00", true)
	b.Created("memory")
	b.Existed("PRINCIPLES.md")

	report := b.Build()
	if report.Root != "/ws" || report.Timezone != "UTC" || !report.DryRun {
		t.Errorf("report config fields not echoed: %+v", report)
	}
	if len(report.Created) != 1 || report.Created[0] != "memory" {
		t.Errorf("Created = %v", report.Created)
	}
	if len(report.Existed) != 1 || report.Existed[0] != "PRINCIPLES.md" {
		t.Errorf("Existed = %v", report.Existed)
	}
	if report.Schedule != nil {
		t.Error("Schedule should be nil until attached")
	}
}

func TestReportBuilder_EmptySequencesSerializeAsArrays(t *testing.T) {
	report := workspace.NewReportBuilder("/ws", "UTC", "03:30", "03:00", false).Build()

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"created", "existed"} {
		if string(decoded[key]) != "[]" {
			t.Errorf("%s = %s, want []", key, decoded[key])
		}
	}
	if _, ok := decoded["schedule"]; ok {
		t.Error("schedule should be omitted when absent")
	}
}
