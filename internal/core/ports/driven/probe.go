package driven

import "context"

// ConnectivityProbe answers whether network I/O is worth attempting.
// A positive result is a heuristic, not a guarantee: the sync driver treats
// it only as a pre-filter to avoid needless delivery attempts.
type ConnectivityProbe interface {
	Online(ctx context.Context) bool
}
