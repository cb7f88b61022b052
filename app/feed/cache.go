package feed

import (
	"sync"
)

// Cache keeps per-process resolution results: the feed URL discovered for a
// channel and the local directory name the channel last synced under. Both
// are deterministic per channel URL, so entries never expire. The cache is
// owned by the run loop and injected into its users, never global.
type Cache struct {
	mu         sync.RWMutex
	feedURLs   map[string]string
	localNames map[string]string
}

func NewCache() *Cache {
	return &Cache{
		feedURLs:   make(map[string]string),
		localNames: make(map[string]string),
	}
}

func (c *Cache) GetFeedURL(channelURL string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	feedURL, ok := c.feedURLs[channelURL]
	return feedURL, ok
}

func (c *Cache) SetFeedURL(channelURL, feedURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.feedURLs[channelURL] = feedURL
}

func (c *Cache) GetLocalName(channelURL string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	localName, ok := c.localNames[channelURL]
	return localName, ok
}

func (c *Cache) SetLocalName(channelURL, localName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.localNames[channelURL] = localName
}
