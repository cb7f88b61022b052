package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Fetcher retrieves and parses a channel's Atom feed. Requests go through the
// shared rate limiter so feed fetching and page resolution together stay
// polite against the remote host.
type Fetcher struct {
	client    *http.Client
	parser    *Parser
	limiter   *rate.Limiter
	userAgent string
}

func NewFetcher(limiter *rate.Limiter, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: 30 * time.Second},
		parser:    NewParser(),
		limiter:   limiter,
		userAgent: userAgent,
	}
}

func (f *Fetcher) Run(ctx context.Context, feedURL string) (*Feed, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, feedURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body: %w", err)
	}

	return f.parser.Run(data)
}
