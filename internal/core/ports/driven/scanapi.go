package driven

import (
	"context"

	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
)

// ScanAPI is the remote tracking API.
type ScanAPI interface {
	// SubmitScan delivers one parcel number to the variant's scan endpoint.
	// It returns nil on HTTP 200, domain.ErrScanInvalid when the server
	// rejected the scan for format reasons (not worth retrying), and
	// domain.ErrDeliveryRejected or a transport error otherwise.
	SubmitScan(ctx context.Context, variant domain.Variant, token, parcelNumber string) error

	// Login exchanges operator credentials for a bearer token.
	Login(ctx context.Context, surname, password string) (string, error)

	// History returns delivered scans for the variant, newest first.
	History(ctx context.Context, variant domain.Variant, token string) ([]domain.HistoryEntry, error)
}
