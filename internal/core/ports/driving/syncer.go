package driving

import "context"

// Syncer drains the pending queue against the remote API.
type Syncer interface {
	// SyncPending runs one best-effort sync pass over a snapshot of the
	// queue and returns the number of records delivered. It never returns
	// an error: every failure inside a pass is logged and retried on the
	// next invocation.
	SyncPending(ctx context.Context) int

	// PendingCount reports how many records are currently queued.
	PendingCount(ctx context.Context) (int, error)
}
