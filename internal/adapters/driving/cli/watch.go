package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/packlane-labs/packtrak-cli/internal/adapters/driven/spool"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a spool directory for scan files",
	Long: `Tails scan files in a spool directory. Scanner hardware that writes
codes to files (one per line) feeds the queue without manual 'scan' calls.
Lines already present at startup are captured first, then the watcher follows
appends until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	scanner, err := currentScanner()
	if err != nil {
		return err
	}
	syncer, err := currentSyncer()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (ctrl-c to stop)...\n", args[0])

	watcher := spool.NewWatcher(args[0], scanner, syncer)
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	cmd.Println("Stopped.")
	return nil
}
