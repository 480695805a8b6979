// Package workspace defines the fixed on-disk layout of a reflector
// workspace and the report produced by initializing one.
package workspace

// FileSpec pairs a workspace-relative path with its default content.
type FileSpec struct {
	Path    string
	Content string
}

// Layout is the fixed set of directories and files a workspace must
// contain. Paths are relative to the workspace root, in creation order.
type Layout struct {
	Dirs  []string
	Files []FileSpec
}

const principlesTemplate = `# Decision Principles

This document holds the agent's current decision-making principles. It is
reviewed against the outcomes recorded in memory/reflector/outcomes.jsonl,
and every addition, revision, or removal is recorded in
memory/reflector/principles-history.jsonl.

Keep each principle short, testable, and tied to evidence from the outcome
log. Remove principles that stop earning their keep.

## Principles

1. Prefer asking one clarifying question over guessing when the task is
   ambiguous and the cost of a wrong guess is high.
`

// DefaultLayout returns the layout provisioned by initialization. The list
// is fixed; existing files are never overwritten regardless of how far
// their content has drifted from these defaults.
func DefaultLayout() Layout {
	return Layout{
		Dirs: []string{
			"memory",
			"memory/reflector",
			"memory/reflector/weekly-summaries",
		},
		Files: []FileSpec{
			{Path: "PRINCIPLES.md", Content: principlesTemplate},
			{Path: "memory/reflector/outcomes.jsonl", Content: ""},
			{Path: "memory/reflector/principles-history.jsonl", Content: ""},
		},
	}
}
