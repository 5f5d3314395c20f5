package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and queue status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if sessionStore == nil {
		return errors.New("session store not configured")
	}

	if connProbe != nil {
		if connProbe.Online(cmd.Context()) {
			cmd.Println("Backend reachable.")
		} else {
			cmd.Println("Backend unreachable, scans will queue locally.")
		}
	}

	if sessionStore.Token() != "" {
		operator := sessionStore.OperatorName()
		if operator == "" {
			operator = "unknown operator"
		}
		cmd.Printf("Logged in as %s.\n", operator)
	} else {
		cmd.Println("Not logged in.")
	}

	for _, variant := range domain.Variants() {
		syncer, ok := syncers[variant.Name]
		if !ok {
			continue
		}

		count, err := syncer.PendingCount(cmd.Context())
		if err != nil {
			return fmt.Errorf("counting %s queue: %w", variant.Name, err)
		}
		cmd.Printf("%s: %d pending scan(s)\n", variant.Name, count)
	}

	return nil
}
