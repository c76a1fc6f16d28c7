package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermarkRepository_GetAbsent(t *testing.T) {
	repos := setupTestRepos(t)

	wm, err := repos.Watermark.Get(context.Background(), FeedKey("https://example.com/feed"))
	require.NoError(t, err)
	assert.Nil(t, wm, "no watermark before first delivery")
}

func TestWatermarkRepository_SetAndGet(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	key := FeedKey("https://example.com/feed")
	published := time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Watermark.Set(ctx, key, "guid-3", published, "Third Post"))

	wm, err := repos.Watermark.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, wm)
	assert.Equal(t, key, wm.FeedKey)
	assert.Equal(t, "guid-3", wm.LastGUID)
	assert.True(t, published.Equal(wm.LastPublished))
	assert.Equal(t, "Third Post", wm.LastTitle)
	assert.False(t, wm.CreatedAt.IsZero())
	assert.False(t, wm.UpdatedAt.IsZero())
}

func TestWatermarkRepository_UpsertPreservesCreatedAt(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	key := FeedKey("https://example.com/feed")

	require.NoError(t, repos.Watermark.Set(ctx, key, "guid-1", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "First"))
	first, err := repos.Watermark.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, first)

	require.NoError(t, repos.Watermark.Set(ctx, key, "guid-2", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "Second"))
	second, err := repos.Watermark.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, "guid-2", second.LastGUID)
	assert.Equal(t, "Second", second.LastTitle)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt), "created_at survives upserts")

	// exactly one row per feed key
	var count int
	require.NoError(t, repos.DB.Get(&count, "SELECT count(*) FROM watermarks WHERE feed_key = ?", key))
	assert.Equal(t, 1, count)
}

func TestWatermarkRepository_ZeroPublished(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	key := FeedKey("https://example.com/feed")

	require.NoError(t, repos.Watermark.Set(ctx, key, "guid-1", time.Time{}, "Untimed"))

	wm, err := repos.Watermark.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, wm)
	assert.True(t, wm.LastPublished.IsZero(), "zero time survives the round trip")
}

func TestWatermarkRepository_LegacyTimestampFormats(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		stored string
		want   time.Time
	}{
		{"rfc3339", "2024-03-03T12:00:00Z", time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC)},
		{"epoch seconds", "1709510400", time.Unix(1709510400, 0).UTC()},
		{"seconds wrapper", `{"seconds":1709510400,"nanoseconds":0}`, time.Unix(1709510400, 0).UTC()},
		{"garbage degrades to zero", "next tuesday", time.Time{}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := FeedKey(tt.name)
			_, err := repos.DB.ExecContext(ctx,
				"INSERT INTO watermarks (feed_key, last_guid, last_published, last_title) VALUES (?, ?, ?, ?)",
				key, "g", tt.stored, "t")
			require.NoError(t, err)

			wm, err := repos.Watermark.Get(ctx, key)
			require.NoError(t, err)
			require.NotNil(t, wm)
			assert.True(t, tt.want.Equal(wm.LastPublished), "case %d: got %v", i, wm.LastPublished)
		})
	}
}
