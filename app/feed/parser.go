package feed

import (
	"bytes"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses a channel feed document. Entries that fail boundary validation
// (missing or malformed video ID, missing publish time) are dropped with a
// warning. A feed without a title or without a single usable entry is an
// error, since the title is the join key to the local store.
func (p *Parser) Run(data []byte) (*Feed, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	title := strings.TrimSpace(parsed.Title)
	if title == "" {
		return nil, fmt.Errorf("feed has no title")
	}

	videos := make([]Video, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		video := p.normalizeVideo(item)

		if !videoIDPattern.MatchString(video.ID) {
			slog.Warn("Dropping entry with unusable video ID", "feed", title, "id", video.ID, "title", video.Title)
			continue
		}
		if video.Published.IsZero() {
			slog.Warn("Dropping entry without publish time", "feed", title, "id", video.ID)
			continue
		}

		videos = append(videos, video)
	}

	if len(videos) == 0 {
		return nil, fmt.Errorf("feed '%s' has no usable entries", title)
	}

	return &Feed{Title: title, Videos: videos}, nil
}

func (p *Parser) normalizeVideo(item *gofeed.Item) Video {
	video := Video{
		ID:      p.extractVideoID(item),
		Title:   item.Title,
		Summary: p.extractSummary(item),
		Link:    item.Link,
	}

	if item.PublishedParsed != nil {
		video.Published = item.PublishedParsed.UTC()
	}

	return video
}

// extractVideoID reads the yt:videoId extension, falling back to the Atom
// entry ID of the form "yt:video:<id>".
func (p *Parser) extractVideoID(item *gofeed.Item) string {
	if ids, ok := item.Extensions["yt"]["videoId"]; ok && len(ids) > 0 {
		return ids[0].Value
	}

	return strings.TrimPrefix(item.GUID, "yt:video:")
}

// extractSummary prefers the media:group description over the plain entry
// description, matching where YouTube actually puts the video text.
func (p *Parser) extractSummary(item *gofeed.Item) string {
	if groups, ok := item.Extensions["media"]["group"]; ok && len(groups) > 0 {
		if descriptions, ok := groups[0].Children["description"]; ok && len(descriptions) > 0 {
			return descriptions[0].Value
		}
	}

	return item.Description
}
