package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
)

// Flags for login.
var (
	loginSurname  string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the tracking backend",
	Long: `Exchanges operator credentials for a session token. The token is
persisted, so subsequent scans and syncs run without logging in again.
A successful login also triggers a sync pass to drain scans queued while
logged out.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVar(&loginSurname, "surname", "", "operator surname")
	loginCmd.Flags().StringVar(
		&loginPassword, "password", "", "password (prompted securely when omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if scanAPI == nil || sessionStore == nil {
		return errors.New("api client not configured")
	}

	ctx := cmd.Context()
	reader := bufio.NewReader(cmd.InOrStdin())

	surname := loginSurname
	if surname == "" {
		cmd.Print("Surname: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading surname: %w", err)
		}
		surname = strings.TrimSpace(input)
	}
	if surname == "" {
		return errors.New("surname is required")
	}

	password := loginPassword
	if password == "" {
		pw, err := readPassword(cmd, reader)
		if err != nil {
			return err
		}
		password = pw
	}

	token, err := scanAPI.Login(ctx, surname, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return errors.New("login rejected: check surname and password")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	if err := sessionStore.SetToken(token); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	if err := sessionStore.SetOperatorName(surname); err != nil {
		return fmt.Errorf("storing operator name: %w", err)
	}

	cmd.Printf("Logged in as %s.\n", surname)

	// Drain scans queued while logged out.
	total := 0
	for _, syncer := range syncers {
		total += syncer.SyncPending(ctx)
	}
	if total > 0 {
		cmd.Printf("Synced %d queued scan(s).\n", total)
	}

	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if sessionStore == nil {
		return errors.New("session store not configured")
	}

	if err := sessionStore.ClearToken(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	cmd.Println("Logged out. Queued scans are kept and sync after the next login.")
	return nil
}

// readPassword reads the password without echo when attached to a terminal,
// falling back to a plain read otherwise (tests, piped input).
func readPassword(cmd *cobra.Command, reader *bufio.Reader) (string, error) {
	cmd.Print("Password: ")

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pw, err := term.ReadPassword(int(f.Fd()))
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(pw), nil
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimSpace(input), nil
}
