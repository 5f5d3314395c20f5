// Package probe implements the connectivity check used to gate sync attempts.
package probe

import (
	"context"
	"net/http"
	"time"

	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driven"
)

// Ensure HTTPProbe implements the interface.
var _ driven.ConnectivityProbe = (*HTTPProbe)(nil)

// DefaultTimeout keeps the probe cheap. Sync runs on every submit, so a slow
// probe would make scanning feel sluggish.
const DefaultTimeout = 3 * time.Second

// HTTPProbe decides reachability with a HEAD request against the API base
// URL. Any response below 500 counts as online: a 401 or 404 still proves the
// backend answered.
type HTTPProbe struct {
	client  *http.Client
	baseURL string
}

// NewHTTPProbe creates a probe against the given base URL.
func NewHTTPProbe(baseURL string, timeout time.Duration) *HTTPProbe {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &HTTPProbe{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// Online reports whether the backend is reachable. It never returns an
// error: transport failures simply mean offline.
func (p *HTTPProbe) Online(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.baseURL, http.NoBody)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < http.StatusInternalServerError
}
