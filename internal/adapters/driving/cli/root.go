// Package cli provides the packtrak command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packlane-labs/packtrak-cli/internal/adapters/driven/api"
	"github.com/packlane-labs/packtrak-cli/internal/adapters/driven/probe"
	"github.com/packlane-labs/packtrak-cli/internal/adapters/driven/session/file"
	"github.com/packlane-labs/packtrak-cli/internal/adapters/driven/storage/sqlite"
	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driven"
	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driving"
	"github.com/packlane-labs/packtrak-cli/internal/core/services"
	"github.com/packlane-labs/packtrak-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	verbose     bool
	variantName string
	dataDir     string
	apiBase     string
)

// Wired services, keyed by variant name. Tests inject their own doubles here
// before calling Execute; initServices leaves injected services alone.
var (
	scanners     map[string]driving.Scanner
	syncers      map[string]driving.Syncer
	queueStores  map[string]driven.QueueStore
	sessionStore driven.SessionStore
	scanAPI      driven.ScanAPI
	connProbe    driven.ConnectivityProbe
)

var rootCmd = &cobra.Command{
	Use:   "packtrak",
	Short: "Offline-first parcel scan capture and sync",
	Long: `packtrak captures parcel scans into a durable local queue and syncs
them to the tracking backend whenever connectivity allows. Scans are never
lost to a dead network: they wait in the queue and drain on the next pass.

Two app variants share one queue database: "tracking" for the courier
tracking flow and "scanpak" for warehouse intake. Select one with --variant.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		// version and help need no wiring
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(
		&variantName, "variant", domain.VariantTracking.Name, "app variant (tracking, scanpak)")
	rootCmd.PersistentFlags().StringVar(
		&dataDir, "data-dir", "", "queue database directory (default ~/.packtrak/data)")
	rootCmd.PersistentFlags().StringVar(
		&apiBase, "api-base", "", "tracking API base URL")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the real adapters. It is a no-op when services have
// already been injected.
func initServices() error {
	if scanners != nil {
		return nil
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening queue store: %w", err)
	}

	session, err := file.NewSessionStore("")
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}

	client := api.NewClient(api.Config{BaseURL: apiBase})

	sessionStore = session
	scanAPI = client
	connProbe = probe.NewHTTPProbe(client.BaseURL(), 0)
	scanners = make(map[string]driving.Scanner)
	syncers = make(map[string]driving.Syncer)
	queueStores = make(map[string]driven.QueueStore)

	for _, variant := range domain.Variants() {
		queue := store.QueueStore(variant)
		queueStores[variant.Name] = queue
		scanners[variant.Name] = services.NewScanService(variant, queue)
		syncers[variant.Name] = services.NewSyncDriver(variant, queue, session, connProbe, client)
	}

	return nil
}

// currentVariant resolves the --variant flag.
func currentVariant() (domain.Variant, error) {
	return domain.VariantByName(variantName)
}

// currentScanner returns the scanner for the selected variant.
func currentScanner() (driving.Scanner, error) {
	variant, err := currentVariant()
	if err != nil {
		return nil, err
	}
	scanner, ok := scanners[variant.Name]
	if !ok {
		return nil, fmt.Errorf("scanner not configured for variant %s", variant.Name)
	}
	return scanner, nil
}

// currentSyncer returns the syncer for the selected variant.
func currentSyncer() (driving.Syncer, error) {
	variant, err := currentVariant()
	if err != nil {
		return nil, err
	}
	syncer, ok := syncers[variant.Name]
	if !ok {
		return nil, fmt.Errorf("syncer not configured for variant %s", variant.Name)
	}
	return syncer, nil
}
