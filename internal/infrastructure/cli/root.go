package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "reflector",
	Version: Version,
	Short:   "Maintain an agent's self-improvement workspace",
	Long: `Reflector provisions and maintains the persistent workspace an
autonomous agent uses to learn from its own outcomes: a decision-principles
document, an append-only outcome log, and an append-only history of
principle changes. Scheduled reflection jobs are derived here but executed
by an external scheduling host.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}
