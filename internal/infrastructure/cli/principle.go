package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reflector-agent/reflector/pkg/application"
	"github.com/reflector-agent/reflector/pkg/storage"
)

var (
	principleRoot       string
	principleAction     string
	principleText       string
	principleRationale  string
	principleJSONOutput bool
)

var principleCmd = &cobra.Command{
	Use:   "principle",
	Short: "Record a change to the principles document",
	Long: `Principle appends one change record to
memory/reflector/principles-history.jsonl. It captures a decision already
made while editing PRINCIPLES.md; it does not edit that document itself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := principleRoot
		if root == "" {
			root, _ = os.Getwd()
		}

		ws := storage.NewFilesystemWorkspace(root)
		service := application.NewPrincipleService(storage.NewPrincipleHistoryStore(ws))

		change, path, err := service.Record(principleAction, principleText, principleRationale)
		if err != nil {
			return MapError(err)
		}

		if principleJSONOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(change)
		}

		fmt.Printf("Recorded %s principle change %s in %s\n", change.Action, change.ID, path)
		return nil
	},
}

func init() {
	principleCmd.Flags().StringVar(&principleRoot, "root", "", "Workspace root (default: current directory)")
	principleCmd.Flags().StringVar(&principleAction, "action", "", "Change action: added, revised, removed")
	principleCmd.Flags().StringVar(&principleText, "text", "", "The principle text (required)")
	principleCmd.Flags().StringVar(&principleRationale, "rationale", "", "Why the change was made")
	principleCmd.Flags().BoolVar(&principleJSONOutput, "json", false, "Output the recorded change in JSON format")
	RootCmd.AddCommand(principleCmd)
}
