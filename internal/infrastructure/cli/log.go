package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reflector-agent/reflector/pkg/application"
	"github.com/reflector-agent/reflector/pkg/domain/outcome"
	"github.com/reflector-agent/reflector/pkg/storage"
)

var (
	logRoot       string
	logTask       string
	logChannel    string
	logQuality    string
	logDelta      string
	logLesson     string
	logCandidate  bool
	logJSONOutput bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record the outcome of a completed task",
	Long: `Log appends one outcome entry to memory/reflector/outcomes.jsonl.
Validation happens before the append, so a rejected call never touches the
log. Corrections are flagged as principle candidates unless overridden.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := logRoot
		if root == "" {
			root, _ = os.Getwd()
		}

		in := outcome.Input{
			Task:    logTask,
			Channel: logChannel,
			Quality: logQuality,
			Delta:   logDelta,
			Lesson:  logLesson,
		}
		if cmd.Flags().Changed("principle-candidate") {
			in.PrincipleCandidate = &logCandidate
		}

		ws := storage.NewFilesystemWorkspace(root)
		service := application.NewOutcomeService(storage.NewOutcomeLogStore(ws))

		entry, path, err := service.Record(in)
		if err != nil {
			return MapError(err)
		}

		if logJSONOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entry)
		}

		fmt.Printf("Recorded %s outcome in %s\n", entry.OutputQuality, path)
		if entry.PrincipleCandidate {
			fmt.Println("Marked as principle candidate for the weekly review")
		}
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logRoot, "root", "", "Workspace root (default: current directory)")
	logCmd.Flags().StringVar(&logTask, "task", "", "What the task was (required)")
	logCmd.Flags().StringVar(&logChannel, "channel", "", "Where the task happened")
	logCmd.Flags().StringVar(&logQuality, "quality", "", "Feedback quality: correction, edit, praise, silence, unknown")
	logCmd.Flags().StringVar(&logDelta, "delta", "", "What changed as a result")
	logCmd.Flags().StringVar(&logLesson, "lesson", "", "Insight worth keeping")
	logCmd.Flags().BoolVar(&logCandidate, "principle-candidate", false, "Override the derived principle-candidate flag")
	logCmd.Flags().BoolVar(&logJSONOutput, "json", false, "Output the recorded entry in JSON format")
	RootCmd.AddCommand(logCmd)
}
