package driving

import (
	"context"

	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
)

// Scanner captures scans into the local queue.
type Scanner interface {
	// Capture sanitizes input and appends it to the durable queue.
	// It returns domain.ErrInvalidInput when no digits remain after
	// sanitization. Storage failures are logged and swallowed: capture
	// optimizes for never crashing the scan flow, not for never losing
	// a scan.
	Capture(ctx context.Context, input string) (*domain.PendingScan, error)
}
