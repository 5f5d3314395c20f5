package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/packlane-labs/packtrak-cli/internal/adapters/driven/storage/memory"
	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driven"
	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driving"
	"github.com/packlane-labs/packtrak-cli/internal/core/services"
)

// stubAPI is a ScanAPI double for CLI tests.
type stubAPI struct {
	mu         sync.Mutex
	submitted  []string
	submitErr  error
	loginToken string
	loginErr   error
	history    []domain.HistoryEntry
	historyErr error
}

func (a *stubAPI) SubmitScan(_ context.Context, _ domain.Variant, _, parcelNumber string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.submitErr != nil {
		return a.submitErr
	}
	a.submitted = append(a.submitted, parcelNumber)
	return nil
}

func (a *stubAPI) Login(_ context.Context, _, _ string) (string, error) {
	if a.loginErr != nil {
		return "", a.loginErr
	}
	return a.loginToken, nil
}

func (a *stubAPI) History(_ context.Context, _ domain.Variant, _ string) ([]domain.HistoryEntry, error) {
	if a.historyErr != nil {
		return nil, a.historyErr
	}
	return a.history, nil
}

// stubProbe is a ConnectivityProbe double.
type stubProbe struct {
	online bool
}

func (p *stubProbe) Online(_ context.Context) bool {
	return p.online
}

// cliFixture holds the injected doubles for one CLI test.
type cliFixture struct {
	api     *stubAPI
	session *memory.SessionStore
	queues  map[string]*memory.QueueStore
}

// setupCLI injects in-memory services into the package-level wiring and
// restores the previous state on cleanup.
func setupCLI(t *testing.T, online bool) *cliFixture {
	t.Helper()

	prevScanners, prevSyncers := scanners, syncers
	prevQueues, prevSession, prevAPI := queueStores, sessionStore, scanAPI
	prevProbe := connProbe
	prevVariant := variantName

	fixture := &cliFixture{
		api:     &stubAPI{loginToken: "tok-test"},
		session: memory.NewSessionStore(),
		queues:  make(map[string]*memory.QueueStore),
	}
	probe := &stubProbe{online: online}
	connProbe = probe

	scanners = make(map[string]driving.Scanner)
	syncers = make(map[string]driving.Syncer)
	queueStores = make(map[string]driven.QueueStore)
	sessionStore = fixture.session
	scanAPI = fixture.api

	for _, variant := range domain.Variants() {
		queue := memory.NewQueueStore()
		fixture.queues[variant.Name] = queue
		queueStores[variant.Name] = queue
		scanners[variant.Name] = services.NewScanService(variant, queue)
		syncers[variant.Name] = services.NewSyncDriver(
			variant, queue, fixture.session, probe, fixture.api)
	}

	t.Cleanup(func() {
		scanners, syncers = prevScanners, prevSyncers
		queueStores, sessionStore, scanAPI = prevQueues, prevSession, prevAPI
		connProbe = prevProbe
		variantName = prevVariant
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	return fixture
}

// runCLI executes the root command with args and returns its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
