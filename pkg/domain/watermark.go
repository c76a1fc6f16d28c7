package domain

import "time"

// Watermark is the per-feed high-water mark of delivery. It records the
// chronologically last item of the most recently delivered batch, not
// necessarily the latest item the source has ever published.
type Watermark struct {
	FeedKey       string
	LastGUID      string
	LastPublished time.Time
	LastTitle     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
