package discord

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// CDNProber checks whether an asset URL exists on the CDN
type CDNProber struct {
	client *http.Client
}

// NewProber returns a CDNProber using client
func NewProber(client *http.Client) *CDNProber {
	return &CDNProber{client: client}
}

// Exists sends a HEAD request to url and reports whether it answered 2xx.
// Transport errors count as a miss and are never returned.
func (p *CDNProber) Exists(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		zap.S().Debugw("asset probe not sent", "url", url, "error", err)
		return false
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		zap.S().Debugw("asset probe failed", "url", url, "error", err)
		return false
	}
	resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
