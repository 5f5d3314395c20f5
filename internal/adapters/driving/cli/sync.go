package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncAll bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync queued scans to the backend",
	Long: `Runs one sync pass over the pending queue. Queued scans are submitted
in capture order; whatever cannot be delivered stays queued for the next pass.
Offline or logged-out states are not errors, the pass simply delivers nothing.`,
	RunE: runSyncCmd,
}

func init() {
	syncCmd.Flags().BoolVar(&syncAll, "all", false, "sync every variant, not just the selected one")
	rootCmd.AddCommand(syncCmd)
}

func runSyncCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if syncAll {
		total := 0
		for name, syncer := range syncers {
			delivered := syncer.SyncPending(ctx)
			if delivered > 0 {
				cmd.Printf("%s: synced %d scan(s).\n", name, delivered)
			}
			total += delivered
		}
		if total == 0 {
			cmd.Println("Nothing synced.")
		}
		return nil
	}

	syncer, err := currentSyncer()
	if err != nil {
		return err
	}

	delivered := syncer.SyncPending(ctx)
	remaining, err := syncer.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("counting pending scans: %w", err)
	}

	cmd.Printf("Synced %d scan(s), %d still pending.\n", delivered, remaining)
	return nil
}
