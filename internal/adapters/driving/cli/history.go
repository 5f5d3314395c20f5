package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show delivered scans, newest first",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if scanAPI == nil || sessionStore == nil {
		return errors.New("api client not configured")
	}

	variant, err := currentVariant()
	if err != nil {
		return err
	}

	token := sessionStore.Token()
	if token == "" {
		return errors.New("not logged in: run 'packtrak login' first")
	}

	entries, err := scanAPI.History(cmd.Context(), variant, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return errors.New("session expired: run 'packtrak login' again")
		}
		return fmt.Errorf("fetching history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No delivered scans yet.")
		return nil
	}

	if historyLimit > 0 && len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}

	cmd.Printf("Recent %s scans:\n", variant.Name)
	for _, entry := range entries {
		when := "unknown time"
		if !entry.ScannedAt.IsZero() {
			when = entry.ScannedAt.Format("2006-01-02 15:04")
		}
		cmd.Printf("  %s  %s  %s\n", when, entry.ParcelNumber, entry.Operator)
	}

	return nil
}
