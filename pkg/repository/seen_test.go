package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeenRepository_RecordAndKnown(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	key := FeedKey("https://example.com/feed")

	known, err := repos.Seen.Known(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, known)

	require.NoError(t, repos.Seen.Record(ctx, key, []string{"a", "b", "c"}, 100))

	known, err = repos.Seen.Known(ctx, key)
	require.NoError(t, err)
	assert.Len(t, known, 3)
	_, ok := known["b"]
	assert.True(t, ok)

	// re-recording the same guid is not an error
	require.NoError(t, repos.Seen.Record(ctx, key, []string{"b", "d"}, 100))
	known, err = repos.Seen.Known(ctx, key)
	require.NoError(t, err)
	assert.Len(t, known, 4)
}

func TestSeenRepository_Prune(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	key := FeedKey("https://example.com/feed")

	guids := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		guids = append(guids, fmt.Sprintf("guid-%02d", i))
	}
	require.NoError(t, repos.Seen.Record(ctx, key, guids, 5))

	known, err := repos.Seen.Known(ctx, key)
	require.NoError(t, err)
	assert.Len(t, known, 5, "set bounded to keep size")
}

func TestSeenRepository_PerFeedIsolation(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Seen.Record(ctx, FeedKey("feed-x"), []string{"a"}, 10))

	known, err := repos.Seen.Known(ctx, FeedKey("feed-y"))
	require.NoError(t, err)
	assert.Empty(t, known, "seen sets do not leak across feeds")
}

func TestSeenRepository_RecordEmpty(t *testing.T) {
	repos := setupTestRepos(t)
	require.NoError(t, repos.Seen.Record(context.Background(), FeedKey("feed"), nil, 10))
}
