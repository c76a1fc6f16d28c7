package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriticalError_MatchesSentinel(t *testing.T) {
	inner := errors.New("boom")
	err := &criticalError{err: inner}

	assert.True(t, errors.Is(err, errCritical), "wrapped failures match the terminal sentinel")
	assert.True(t, errors.Is(err, inner), "original error stays reachable through the chain")
	assert.False(t, errors.Is(inner, errCritical), "plain errors never match the sentinel")
	assert.Equal(t, "boom", err.Error())
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.False(t, isLockError(errors.New("no such table: watermarks")))
	assert.True(t, isLockError(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.True(t, isLockError(errors.New("database table is locked")))
}

func TestWatermarkRepository_SetFailsFastOnCriticalError(t *testing.T) {
	repos := setupTestRepos(t)
	require.NoError(t, repos.Close())

	start := time.Now()
	err := repos.Watermark.Set(context.Background(), FeedKey("https://example.com/feed"), "g", time.Time{}, "t")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 300*time.Millisecond, "non-lock failures stop the retry loop immediately")
}
