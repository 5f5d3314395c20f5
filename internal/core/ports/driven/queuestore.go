package driven

import (
	"context"

	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
)

// QueueStore is the durable staging area for scans awaiting delivery.
// Implementations provide at-least-once semantics: a record is removed only
// after the sync driver has observed a delivery confirmation, so a crash
// between confirmation and removal yields a duplicate submission.
type QueueStore interface {
	// Append sanitizes and persists a new pending scan. Empty input after
	// sanitization is a silent no-op. Append never blocks on network.
	Append(ctx context.Context, parcelNumber string) error

	// ListPending returns a snapshot of all stored records in insertion order.
	ListPending(ctx context.Context) ([]domain.PendingScan, error)

	// Remove deletes the record with the given local key.
	// Removing an absent key is a no-op.
	Remove(ctx context.Context, localKey string) error
}
