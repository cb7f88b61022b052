package jellyfin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lysyi3m/yt-mirror/app/config"
)

// Client triggers library refreshes against a Jellyfin server so new and
// removed videos show up without waiting for a scheduled scan
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	library    string
}

func NewClient(cfg *config.Jellyfin) *Client {
	scheme := "http"
	if cfg.TLS {
		scheme = "https"
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    fmt.Sprintf("%s://%s:%d%s", scheme, cfg.Host, cfg.Port, strings.TrimRight(cfg.Path, "/")),
		apiKey:     cfg.APIKey,
		library:    cfg.LibraryName,
	}
}

// Run looks up the configured library and triggers a refresh on it. The
// returned error is for logging only, a failed notification never affects
// the cycle that produced it.
func (c *Client) Run(ctx context.Context) error {
	itemID, err := c.findLibraryID(ctx)
	if err != nil {
		return err
	}

	return c.refresh(ctx, itemID)
}

type virtualFolder struct {
	Name   string `json:"Name"`
	ItemID string `json:"ItemId"`
}

func (c *Client) findLibraryID(ctx context.Context) (string, error) {
	u := fmt.Sprintf("%s/Library/VirtualFolders?api_key=%s", c.baseURL, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to look up libraries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d looking up libraries", resp.StatusCode)
	}

	var folders []virtualFolder
	if err := json.NewDecoder(resp.Body).Decode(&folders); err != nil {
		return "", fmt.Errorf("failed to decode libraries: %w", err)
	}

	for _, folder := range folders {
		if folder.Name == c.library {
			return folder.ItemID, nil
		}
	}

	return "", fmt.Errorf("library '%s' not found", c.library)
}

func (c *Client) refresh(ctx context.Context, itemID string) error {
	params := url.Values{
		"api_key":             {c.apiKey},
		"Recursive":           {"true"},
		"ImageRefreshMode":    {"Default"},
		"MetadataRefreshMode": {"Default"},
		"ReplaceAllImages":    {"false"},
		"ReplaceAllMetadata":  {"false"},
	}

	u := fmt.Sprintf("%s/Items/%s/Refresh?%s", c.baseURL, url.PathEscape(itemID), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to trigger refresh: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d triggering refresh", resp.StatusCode)
	}

	return nil
}
