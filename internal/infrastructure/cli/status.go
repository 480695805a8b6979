package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/reflector-agent/reflector/pkg/application"
	"github.com/reflector-agent/reflector/pkg/storage"
)

var (
	statusRoot       string
	statusJSONOutput bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the workspace state",
	RunE: func(cmd *cobra.Command, args []string) error {
		root := statusRoot
		if root == "" {
			root, _ = os.Getwd()
		}

		ws := storage.NewFilesystemWorkspace(root)
		service := application.NewStatusService(
			ws,
			storage.NewOutcomeLogStore(ws),
			storage.NewPrincipleHistoryStore(ws),
		)

		status, err := service.Status()
		if err != nil {
			return MapError(err)
		}

		if statusJSONOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(status)
		}

		fmt.Println(headerStyle.Render("Reflector workspace"))
		fmt.Printf("Root: %s\n", status.Root)
		for _, p := range status.Present {
			fmt.Println(existedStyle.Render("  ok      " + p))
		}
		for _, p := range status.Missing {
			fmt.Println(createdStyle.Render("  missing " + p))
		}
		fmt.Printf("Outcomes recorded: %d\n", status.OutcomeCount)
		if status.LastOutcome != nil {
			fmt.Printf("Last outcome: %s\n", status.LastOutcome.Format(time.RFC3339))
		}
		fmt.Printf("Principle changes: %d\n", status.PrincipleChanges)

		if len(status.Missing) > 0 {
			fmt.Println("Run 'reflector init' to provision the missing paths")
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusRoot, "root", "", "Workspace root (default: current directory)")
	statusCmd.Flags().BoolVar(&statusJSONOutput, "json", false, "Output in JSON format")
	RootCmd.AddCommand(statusCmd)
}
