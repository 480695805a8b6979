package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/reflector-agent/reflector/internal/infrastructure/config"
	"github.com/reflector-agent/reflector/pkg/application"
	"github.com/reflector-agent/reflector/pkg/domain/workspace"
	"github.com/reflector-agent/reflector/pkg/prompts"
	"github.com/reflector-agent/reflector/pkg/storage"
)

var (
	initRoot         string
	initDryRun       bool
	initSkipSchedule bool
	initTimezone     string
	initDailyTime    string
	initWeeklyTime   string
	initJSONOutput   bool
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	createdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	existedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Provision the reflector workspace",
	Long: `Init ensures the workspace layout exists under the root and derives the
daily and weekly reflection schedules. It is safe to run any number of
times: existing files are never overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := initRoot
		if root == "" {
			root, _ = os.Getwd()
		}

		cfg, err := config.Load(root)
		if err != nil {
			return MapError(err)
		}
		if cmd.Flags().Changed("timezone") {
			cfg.Timezone = initTimezone
		}
		if cmd.Flags().Changed("daily-time") {
			cfg.DailyTime = initDailyTime
		}
		if cmd.Flags().Changed("weekly-time") {
			cfg.WeeklyTime = initWeeklyTime
		}
		cfg.DryRun = initDryRun
		cfg.SkipSchedule = initSkipSchedule

		ws := storage.NewFilesystemWorkspace(root)
		loader := prompts.DirLoader{
			Dir:      filepath.Join(root, "prompts"),
			Fallback: prompts.EmbeddedLoader{},
		}
		service := application.NewInitService(ws, loader)

		report, err := service.Initialize(cfg.InitConfig())
		if err != nil {
			return MapError(fmt.Errorf("failed to initialize workspace: %w", err))
		}

		if initJSONOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		printInitReport(report)
		return nil
	},
}

func printInitReport(report *workspace.InitReport) {
	title := "Initialized reflector workspace"
	if report.DryRun {
		title = "Dry run: reflector workspace"
	}
	fmt.Println(headerStyle.Render(title))
	fmt.Printf("Root: %s\n", report.Root)
	fmt.Printf("Timezone: %s\n", report.Timezone)

	for _, p := range report.Created {
		fmt.Println(createdStyle.Render("  created " + p))
	}
	for _, p := range report.Existed {
		fmt.Println(existedStyle.Render("  existed " + p))
	}

	if report.Schedule != nil {
		fmt.Printf("Daily reflection:  %s (%s)\n", report.Schedule.Daily.Cron, report.DailyTime)
		fmt.Printf("Weekly reflection: %s (%s)\n", report.Schedule.Weekly.Cron, report.WeeklyTime)
	}
}

func init() {
	initCmd.Flags().StringVar(&initRoot, "root", "", "Workspace root (default: current directory)")
	initCmd.Flags().BoolVar(&initDryRun, "dry-run", false, "Report what would be created without touching the filesystem")
	initCmd.Flags().BoolVar(&initSkipSchedule, "skip-schedule", false, "Skip deriving the reflection schedules")
	initCmd.Flags().StringVar(&initTimezone, "timezone", "", "IANA timezone for the schedules (default: system, else UTC)")
	initCmd.Flags().StringVar(&initDailyTime, "daily-time", config.DefaultDailyTime, "Daily reflection time (HH:MM)")
	initCmd.Flags().StringVar(&initWeeklyTime, "weekly-time", config.DefaultWeeklyTime, "Weekly reflection time (HH:MM)")
	initCmd.Flags().BoolVar(&initJSONOutput, "json", false, "Output in JSON format")
	RootCmd.AddCommand(initCmd)
}
