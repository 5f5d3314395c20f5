package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorageUnavailable indicates the durable queue store could not be
	// opened. Surfaced by store construction; append failures are logged and
	// swallowed so a scan never crashes the capture flow.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnauthenticated indicates no session token is stored.
	// A missing token is a normal state (user not logged in), never shown
	// as an error by the background sync path.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrDeliveryRejected indicates the remote API answered with a
	// retryable non-200 status. The record stays queued.
	ErrDeliveryRejected = errors.New("delivery rejected")

	// ErrScanInvalid indicates the remote API rejected the scan for format
	// reasons (400/422). Retrying such a record forever is useless, so the
	// sync driver purges it.
	ErrScanInvalid = errors.New("scan rejected by server")

	// ErrUnknownVariant indicates an app variant name that is not registered.
	ErrUnknownVariant = errors.New("unknown app variant")
)
