package repository

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// FeedKey derives the stable feed identity from its URL. Only the URL
// participates, so renaming a feed or changing its destinations keeps
// the same watermark record.
func FeedKey(feedURL string) string {
	sum := sha256.Sum256([]byte(feedURL))
	return hex.EncodeToString(sum[:16])
}

// errCritical is the terminal sentinel passed to repeater.Do: failures
// wrapped in criticalError match it and stop the retry loop immediately
var errCritical = errors.New("critical error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

func (e *criticalError) Is(target error) bool {
	return target == errCritical
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
