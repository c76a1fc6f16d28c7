package domain

import "time"

// Item represents a single entry from a fetched feed.
// Items live for the duration of one cycle and are never persisted.
type Item struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Content     string
	Author      string
	Categories  []string
	Published   time.Time // zero when the source gave no parseable date
	Image       string    // best image known at parse time, may be empty
	Enclosures  []Enclosure
}

// Enclosure represents an attached media resource
type Enclosure struct {
	URL  string
	Type string
}

// Snippet returns the best available text for the item body,
// preferring full content over the summary
func (i *Item) Snippet() string {
	if i.Content != "" {
		return i.Content
	}
	return i.Description
}
