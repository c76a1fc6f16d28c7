package domain

import "time"

// CycleStatus reports the outcome of the most recent processing cycle
// for a single feed, exposed via the operational status endpoint
type CycleStatus struct {
	FeedURL   string    `json:"feed_url"`
	FeedName  string    `json:"feed_name"`
	LastRun   time.Time `json:"last_run"`
	LastError string    `json:"last_error,omitempty"`
	Delivered int       `json:"delivered"`
	LastGUID  string    `json:"last_guid,omitempty"`
	LastTitle string    `json:"last_title,omitempty"`
}
