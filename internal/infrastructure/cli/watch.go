package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/reflector-agent/reflector/internal/infrastructure/watch"
	"github.com/reflector-agent/reflector/pkg/storage"
)

var watchRoot string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the outcome log as entries are appended",
	RunE: func(cmd *cobra.Command, args []string) error {
		root := watchRoot
		if root == "" {
			root, _ = os.Getwd()
		}

		ws := storage.NewFilesystemWorkspace(root)
		path, err := storage.NewOutcomeLogStore(ws).Path()
		if err != nil {
			return MapError(err)
		}

		exists, err := ws.Exists(storage.ReflectorDir)
		if err != nil {
			return MapError(err)
		}
		if !exists {
			return NewCLIError("workspace is not initialized", "Run 'reflector init' first", nil)
		}

		tailer, err := watch.NewLogTailer(path, func(line string) {
			fmt.Println(line)
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(os.Stderr, "Watching %s\n", path)
		if err := tailer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchRoot, "root", "", "Workspace root (default: current directory)")
	RootCmd.AddCommand(watchCmd)
}
