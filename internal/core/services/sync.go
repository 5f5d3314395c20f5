package services

import (
	"context"
	"errors"

	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driven"
	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driving"
	"github.com/packlane-labs/packtrak-cli/internal/logger"
)

// Ensure SyncDriver implements the interface.
var _ driving.Syncer = (*SyncDriver)(nil)

// SyncDriver replays the local queue against the remote API, best effort.
// One driver serves one app variant; both variants get their own instance
// over their own queue namespace.
type SyncDriver struct {
	variant domain.Variant
	queue   driven.QueueStore
	session driven.SessionStore
	probe   driven.ConnectivityProbe
	api     driven.ScanAPI
}

// NewSyncDriver creates a sync driver for one app variant.
func NewSyncDriver(
	variant domain.Variant,
	queue driven.QueueStore,
	session driven.SessionStore,
	probe driven.ConnectivityProbe,
	api driven.ScanAPI,
) *SyncDriver {
	return &SyncDriver{
		variant: variant,
		queue:   queue,
		session: session,
		probe:   probe,
		api:     api,
	}
}

// SyncPending runs one sync pass and returns the number of delivered records.
//
// The pass is deliberately quiet: no connectivity, no token, and an empty
// queue are all silent skips, and a failure on one record never aborts the
// rest of the pass. Records are attempted sequentially in insertion order so
// submissions reach the server in capture order.
func (d *SyncDriver) SyncPending(ctx context.Context) int {
	if !d.probe.Online(ctx) {
		logger.Debug("sync %s: offline, skipping", d.variant.Name)
		return 0
	}

	token := d.session.Token()
	if token == "" {
		logger.Debug("sync %s: no session token, skipping", d.variant.Name)
		return 0
	}

	pending, err := d.queue.ListPending(ctx)
	if err != nil {
		logger.Warn("sync %s: list pending: %v", d.variant.Name, err)
		return 0
	}
	if len(pending) == 0 {
		return 0
	}

	logger.Info("sync %s: %d pending record(s)", d.variant.Name, len(pending))

	delivered := 0
	for _, record := range pending {
		// Corrupted entries are purged rather than retried forever.
		if record.ParcelNumber == "" {
			if err := d.queue.Remove(ctx, record.LocalKey); err != nil {
				logger.Warn("sync %s: purge %s: %v", d.variant.Name, record.LocalKey, err)
			}
			continue
		}

		err := d.api.SubmitScan(ctx, d.variant, token, record.ParcelNumber)
		switch {
		case err == nil:
			if err := d.queue.Remove(ctx, record.LocalKey); err != nil {
				// The record was delivered but not removed; the next pass
				// resubmits it and relies on server-side deduplication.
				logger.Warn("sync %s: remove %s: %v", d.variant.Name, record.LocalKey, err)
			}
			delivered++

		case errors.Is(err, domain.ErrScanInvalid):
			logger.Warn("sync %s: server rejected %q, purging: %v",
				d.variant.Name, record.ParcelNumber, err)
			if err := d.queue.Remove(ctx, record.LocalKey); err != nil {
				logger.Warn("sync %s: purge %s: %v", d.variant.Name, record.LocalKey, err)
			}

		default:
			// Retryable: non-200 status or transport failure. Keep the
			// record and move on so one bad record does not block the rest.
			logger.Debug("sync %s: %q not delivered, keeping: %v",
				d.variant.Name, record.ParcelNumber, err)
		}
	}

	logger.Info("sync %s: delivered %d of %d", d.variant.Name, delivered, len(pending))
	return delivered
}

// PendingCount reports the current queue depth.
func (d *SyncDriver) PendingCount(ctx context.Context) (int, error) {
	pending, err := d.queue.ListPending(ctx)
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}
