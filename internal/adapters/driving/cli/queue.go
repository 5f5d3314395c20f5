package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "List scans waiting for delivery",
	RunE:  runQueue,
}

func init() {
	rootCmd.AddCommand(queueCmd)
}

func runQueue(cmd *cobra.Command, _ []string) error {
	variant, err := currentVariant()
	if err != nil {
		return err
	}

	queue, ok := queueStores[variant.Name]
	if !ok {
		return fmt.Errorf("queue store not configured for variant %s", variant.Name)
	}

	pending, err := queue.ListPending(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing pending scans: %w", err)
	}

	if len(pending) == 0 {
		cmd.Println("Queue is empty.")
		return nil
	}

	cmd.Printf("%d pending scan(s):\n", len(pending))
	for i, record := range pending {
		cmd.Printf("  [%d] %s (stored %s)\n",
			i+1, record.ParcelNumber, record.StoredAt.Format(time.RFC3339))
	}

	return nil
}
