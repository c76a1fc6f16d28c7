package repository

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// parseTimestamp normalizes a stored timestamp into time.Time. Records
// written by earlier deployments carry either an RFC3339 string, bare
// epoch seconds, or a JSON seconds-wrapper object; anything unparseable
// degrades to the zero time, which disables the date comparison tier
// rather than failing the read.
func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts
	}

	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil && secs > 0 {
		return time.Unix(secs, 0).UTC()
	}

	// legacy wrapper, e.g. {"seconds":1709510400,"nanoseconds":0}
	var wrapper struct {
		Seconds     int64 `json:"seconds"`
		Nanoseconds int64 `json:"nanoseconds"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapper); err == nil && wrapper.Seconds > 0 {
		return time.Unix(wrapper.Seconds, wrapper.Nanoseconds).UTC()
	}

	return time.Time{}
}

// formatTimestamp is the single write-side representation
func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339Nano)
}
