package feed

import (
	"testing"
	"time"
)

func TestParseYouTubeFeed(t *testing.T) {
	atomData := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns:media="http://search.yahoo.com/mrss/" xmlns="http://www.w3.org/2005/Atom">
  <link rel="self" href="http://www.youtube.com/feeds/videos.xml?channel_id=UCtest123"/>
  <id>yt:channel:UCtest123</id>
  <yt:channelId>UCtest123</yt:channelId>
  <title>Some Channel</title>
  <link rel="alternate" href="https://www.youtube.com/channel/UCtest123"/>
  <published>2015-03-25T00:00:00+00:00</published>
  <entry>
    <id>yt:video:dQw4w9WgXcQ</id>
    <yt:videoId>dQw4w9WgXcQ</yt:videoId>
    <yt:channelId>UCtest123</yt:channelId>
    <title>First Video</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=dQw4w9WgXcQ"/>
    <author>
      <name>Some Channel</name>
      <uri>https://www.youtube.com/channel/UCtest123</uri>
    </author>
    <published>2024-01-15T10:00:00+00:00</published>
    <updated>2024-01-15T11:30:00+00:00</updated>
    <media:group>
      <media:title>First Video</media:title>
      <media:thumbnail url="https://i2.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg" width="480" height="360"/>
      <media:description>A description of the first video.</media:description>
    </media:group>
  </entry>
  <entry>
    <id>yt:video:abc_XYZ-123</id>
    <yt:videoId>abc_XYZ-123</yt:videoId>
    <yt:channelId>UCtest123</yt:channelId>
    <title>Second Video</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=abc_XYZ-123"/>
    <published>2024-01-16T08:00:00+00:00</published>
    <updated>2024-01-16T08:00:00+00:00</updated>
    <media:group>
      <media:title>Second Video</media:title>
      <media:description>Another description.</media:description>
    </media:group>
  </entry>
</feed>`

	parser := NewParser()
	feed, err := parser.Run([]byte(atomData))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if feed.Title != "Some Channel" {
		t.Errorf("Expected title 'Some Channel', got: %s", feed.Title)
	}
	if len(feed.Videos) != 2 {
		t.Fatalf("Expected 2 videos, got: %d", len(feed.Videos))
	}

	video := feed.Videos[0]
	if video.ID != "dQw4w9WgXcQ" {
		t.Errorf("Expected video ID 'dQw4w9WgXcQ', got: %s", video.ID)
	}
	if video.Title != "First Video" {
		t.Errorf("Expected title 'First Video', got: %s", video.Title)
	}
	if video.Link != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("Expected watch link, got: %s", video.Link)
	}
	if video.Summary != "A description of the first video." {
		t.Errorf("Expected media description, got: %s", video.Summary)
	}

	published := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	if !video.Published.Equal(published) {
		t.Errorf("Expected published %v, got: %v", published, video.Published)
	}

	if feed.Videos[1].ID != "abc_XYZ-123" {
		t.Errorf("Expected video ID 'abc_XYZ-123', got: %s", feed.Videos[1].ID)
	}
}

func TestParseFallbackWithoutExtensions(t *testing.T) {
	// Entries without yt/media extensions fall back to the Atom entry ID and
	// the plain summary
	atomData := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Some Channel</title>
  <entry>
    <id>yt:video:fallback_01</id>
    <title>Fallback Video</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=fallback_01"/>
    <summary>Plain summary text.</summary>
    <published>2024-01-15T10:00:00+00:00</published>
  </entry>
</feed>`

	parser := NewParser()
	feed, err := parser.Run([]byte(atomData))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(feed.Videos) != 1 {
		t.Fatalf("Expected 1 video, got: %d", len(feed.Videos))
	}
	if feed.Videos[0].ID != "fallback_01" {
		t.Errorf("Expected ID 'fallback_01', got: %s", feed.Videos[0].ID)
	}
	if feed.Videos[0].Summary != "Plain summary text." {
		t.Errorf("Expected plain summary, got: %s", feed.Videos[0].Summary)
	}
}

func TestParseDropsInvalidEntries(t *testing.T) {
	atomData := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns="http://www.w3.org/2005/Atom">
  <title>Some Channel</title>
  <entry>
    <id>yt:video:good_01</id>
    <yt:videoId>good_01</yt:videoId>
    <title>Valid Video</title>
    <published>2024-01-15T10:00:00+00:00</published>
  </entry>
  <entry>
    <id>yt:video:no_published</id>
    <yt:videoId>no_published</yt:videoId>
    <title>No Publish Time</title>
  </entry>
  <entry>
    <id>broken</id>
    <yt:videoId>bad id!</yt:videoId>
    <title>Malformed ID</title>
    <published>2024-01-15T10:00:00+00:00</published>
  </entry>
</feed>`

	parser := NewParser()
	feed, err := parser.Run([]byte(atomData))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(feed.Videos) != 1 {
		t.Fatalf("Expected 1 video after validation, got: %d", len(feed.Videos))
	}
	if feed.Videos[0].ID != "good_01" {
		t.Errorf("Expected the valid video to survive, got: %s", feed.Videos[0].ID)
	}
}

func TestParseFeedWithoutTitle(t *testing.T) {
	atomData := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>  </title>
  <entry>
    <id>yt:video:some_01</id>
    <title>Video</title>
    <published>2024-01-15T10:00:00+00:00</published>
  </entry>
</feed>`

	parser := NewParser()
	if _, err := parser.Run([]byte(atomData)); err == nil {
		t.Error("Expected error for feed without title")
	}
}

func TestParseFeedWithoutUsableEntries(t *testing.T) {
	atomData := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Some Channel</title>
  <entry>
    <id>yt:video:no_published</id>
    <title>No Publish Time</title>
  </entry>
</feed>`

	parser := NewParser()
	if _, err := parser.Run([]byte(atomData)); err == nil {
		t.Error("Expected error for feed without usable entries")
	}
}

func TestParseInvalidFeed(t *testing.T) {
	parser := NewParser()
	if _, err := parser.Run([]byte("invalid xml")); err == nil {
		t.Error("Expected error for invalid XML")
	}
}
