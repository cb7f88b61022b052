package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// ErrNoFeedLink is returned when a channel page exposes no feed link
var ErrNoFeedLink = errors.New("feed link not found")

// Resolver discovers the Atom feed URL behind a channel page by reading the
// rss+xml link element from the channel's about page. Results go into the
// injected cache, since resolution is deterministic per channel URL.
type Resolver struct {
	client    *http.Client
	cache     *Cache
	limiter   *rate.Limiter
	userAgent string
}

func NewResolver(cache *Cache, limiter *rate.Limiter, userAgent string) *Resolver {
	return &Resolver{
		client:    &http.Client{Timeout: 30 * time.Second},
		cache:     cache,
		limiter:   limiter,
		userAgent: userAgent,
	}
}

func (r *Resolver) Run(ctx context.Context, channelURL string) (string, error) {
	if feedURL, ok := r.cache.GetFeedURL(channelURL); ok {
		return feedURL, nil
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, channelURL+"/about", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, channelURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse channel page: %w", err)
	}

	feedURL, ok := doc.Find(`head link[type="application/rss+xml"]`).First().Attr("href")
	if !ok || feedURL == "" {
		return "", fmt.Errorf("%w for channel %s", ErrNoFeedLink, channelURL)
	}

	r.cache.SetFeedURL(channelURL, feedURL)

	return feedURL, nil
}
