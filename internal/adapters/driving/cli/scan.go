package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
)

var scanNoSync bool

var scanCmd = &cobra.Command{
	Use:   "scan [code]",
	Short: "Capture a parcel scan",
	Long: `Captures one scanned code into the local queue, then attempts a sync
pass. The code is reduced to its digits before queueing ("AB12-34" becomes
"1234"). The scan is kept locally even when the backend is unreachable.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanNoSync, "no-sync", false, "queue only, skip the sync pass")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	scanner, err := currentScanner()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	record, err := scanner.Capture(ctx, args[0])
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("nothing to scan: %q contains no digits", args[0])
		}
		return fmt.Errorf("capture failed: %w", err)
	}

	cmd.Printf("Queued %s\n", record.ParcelNumber)

	if scanNoSync {
		return nil
	}

	syncer, err := currentSyncer()
	if err != nil {
		return err
	}

	if delivered := syncer.SyncPending(ctx); delivered > 0 {
		cmd.Printf("Synced %d scan(s).\n", delivered)
	}

	return nil
}
