package domain

import "time"

// ContentItem is a content record supplied by the ingestion layer.
// The engine treats it as read-only input.
type ContentItem struct {
	ID          int64
	WorkspaceID string
	Source      string // ingestion channel (e.g., "rss", "reddit", "newsletter")
	Title       string
	Summary     *string
	Body        *string
	Keywords    []string // precomputed at ingestion time, may be empty
	PublishedAt time.Time
}

// Validate checks the fields the detection pipeline requires.
func (c *ContentItem) Validate() error {
	if c.ID == 0 {
		return &ValidationError{Field: "id", Reason: "must be set"}
	}
	if c.Source == "" {
		return &ValidationError{Field: "source", Reason: "must not be empty"}
	}
	if c.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if c.PublishedAt.IsZero() {
		return &ValidationError{Field: "published_at", Reason: "must be set"}
	}
	return nil
}

// Text returns the searchable text of the item: title, summary and body
// concatenated, plus any precomputed keywords.
func (c *ContentItem) Text() string {
	text := c.Title
	if c.Summary != nil {
		text += " " + *c.Summary
	}
	if c.Body != nil {
		text += " " + *c.Body
	}
	for _, kw := range c.Keywords {
		text += " " + kw
	}
	return text
}

// HistoricalSnapshot is a compact copy of a content item kept only for
// velocity comparison. At most one snapshot exists per content item per
// workspace; snapshots are immutable once written and are removed after
// ExpiresAt.
type HistoricalSnapshot struct {
	ID            int64     `db:"id"`
	WorkspaceID   string    `db:"workspace_id"`
	ContentItemID int64     `db:"content_item_id"`
	Source        string    `db:"source"`
	Keywords      []string  `db:"keywords"`
	CapturedAt    time.Time `db:"captured_at"`
	ExpiresAt     time.Time `db:"expires_at"`
}
