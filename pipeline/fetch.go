// Package pipeline provides the orchestration layer around the xbrl
// core extractor: discovering archives, walking them, writing CSV, and
// fanning work out across a worker pool. None of it re-implements
// extraction; it only moves bytes to and from xbrl.Extract.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// RateLimit is the minimum spacing between outbound requests to the
// Companies House site, the same defensive throttle go-edgar's fetcher.go
// applies to the SEC.
const RateLimit = 100 * time.Millisecond

// UserAgent identifies this client to the remote server. Unlike the SEC,
// Companies House does not require a contact email in the User-Agent, so
// this is a fixed string rather than something built from caller input.
const UserAgent = "stream-read-xbrl/1.0"

// Fetcher performs rate-limited HTTP GETs. The zero value is ready to
// use; a Fetcher must not be copied after first use because it serializes
// requests through lastRequest.
type Fetcher struct {
	Client *http.Client

	mu          sync.Mutex
	lastRequest time.Time
}

// Get fetches url, waiting out RateLimit since the previous request made
// through this Fetcher if necessary.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	f.throttle()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("pipeline: build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pipeline: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pipeline: fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read body from %s: %w", url, err)
	}
	return body, nil
}

func (f *Fetcher) throttle() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.lastRequest.IsZero() {
		if elapsed := time.Since(f.lastRequest); elapsed < RateLimit {
			time.Sleep(RateLimit - elapsed)
		}
	}
	f.lastRequest = time.Now()
}
