package transport_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedfan/feedfan/pkg/transport"
	"github.com/feedfan/feedfan/pkg/transport/mocks"
)

func TestHandleCache_ResolveExistingWebhook(t *testing.T) {
	api := &mocks.APIMock{
		ChannelFunc: func(ctx context.Context, id string) (*transport.Channel, error) {
			return &transport.Channel{ID: id, Type: 0}, nil
		},
		WebhooksFunc: func(ctx context.Context, channelID string) ([]transport.Handle, error) {
			return []transport.Handle{
				{ID: "w1", Token: "", Name: "someone else's"}, // no token, not usable
				{ID: "w2", Token: "tok", Name: "FeedFan"},
			}, nil
		},
	}

	cache := transport.NewHandleCache(api, "FeedFan")
	h := cache.Resolve(context.Background(), "chan-1")

	require.NotNil(t, h)
	assert.Equal(t, "w2", h.ID, "first webhook with a usable token wins")
	assert.Empty(t, h.ThreadID)
	assert.Empty(t, api.CreateWebhookCalls(), "nothing created when one exists")
}

func TestHandleCache_CreatesWhenMissing(t *testing.T) {
	api := &mocks.APIMock{
		ChannelFunc: func(ctx context.Context, id string) (*transport.Channel, error) {
			return &transport.Channel{ID: id, Type: 0}, nil
		},
		WebhooksFunc: func(ctx context.Context, channelID string) ([]transport.Handle, error) {
			return nil, nil
		},
		CreateWebhookFunc: func(ctx context.Context, channelID string, name string) (*transport.Handle, error) {
			return &transport.Handle{ID: "new", Token: "tok", Name: name}, nil
		},
	}

	cache := transport.NewHandleCache(api, "FeedFan")
	h := cache.Resolve(context.Background(), "chan-1")

	require.NotNil(t, h)
	assert.Equal(t, "new", h.ID)
	require.Len(t, api.CreateWebhookCalls(), 1)
	assert.Equal(t, "FeedFan", api.CreateWebhookCalls()[0].Name, "fixed display name on creation")
}

func TestHandleCache_ThreadResolvesToParent(t *testing.T) {
	api := &mocks.APIMock{
		ChannelFunc: func(ctx context.Context, id string) (*transport.Channel, error) {
			return &transport.Channel{ID: id, Type: 11, ParentID: "parent-1"}, nil
		},
		WebhooksFunc: func(ctx context.Context, channelID string) ([]transport.Handle, error) {
			assert.Equal(t, "parent-1", channelID, "webhooks listed on the parent container")
			return []transport.Handle{{ID: "w", Token: "tok"}}, nil
		},
	}

	cache := transport.NewHandleCache(api, "FeedFan")
	h := cache.Resolve(context.Background(), "thread-1")

	require.NotNil(t, h)
	assert.Equal(t, "thread-1", h.ThreadID, "sends still target the thread")
}

func TestHandleCache_Caching(t *testing.T) {
	api := &mocks.APIMock{
		ChannelFunc: func(ctx context.Context, id string) (*transport.Channel, error) {
			return &transport.Channel{ID: id}, nil
		},
		WebhooksFunc: func(ctx context.Context, channelID string) ([]transport.Handle, error) {
			return []transport.Handle{{ID: "w-" + channelID, Token: "tok"}}, nil
		},
	}

	cache := transport.NewHandleCache(api, "FeedFan")
	h1 := cache.Resolve(context.Background(), "chan-1")
	h2 := cache.Resolve(context.Background(), "chan-1")
	h3 := cache.Resolve(context.Background(), "chan-2")

	require.NotNil(t, h1)
	assert.Same(t, h1, h2, "second resolve hits the cache")
	require.NotNil(t, h3)
	assert.NotEqual(t, h1.ID, h3.ID)
	assert.Len(t, api.ChannelCalls(), 2, "one API walk per destination")
	assert.Equal(t, 2, cache.Len(), "one entry per destination id")
}

func TestHandleCache_FailuresAreSentinel(t *testing.T) {
	t.Run("channel fetch fails", func(t *testing.T) {
		api := &mocks.APIMock{
			ChannelFunc: func(ctx context.Context, id string) (*transport.Channel, error) {
				return nil, fmt.Errorf("not found")
			},
		}
		cache := transport.NewHandleCache(api, "FeedFan")
		assert.Nil(t, cache.Resolve(context.Background(), "gone"))
		assert.Equal(t, 0, cache.Len(), "failure is not cached")
	})

	t.Run("thread without parent", func(t *testing.T) {
		api := &mocks.APIMock{
			ChannelFunc: func(ctx context.Context, id string) (*transport.Channel, error) {
				return &transport.Channel{ID: id, Type: 11}, nil
			},
		}
		cache := transport.NewHandleCache(api, "FeedFan")
		assert.Nil(t, cache.Resolve(context.Background(), "orphan-thread"))
	})

	t.Run("creation fails", func(t *testing.T) {
		api := &mocks.APIMock{
			ChannelFunc: func(ctx context.Context, id string) (*transport.Channel, error) {
				return &transport.Channel{ID: id}, nil
			},
			WebhooksFunc: func(ctx context.Context, channelID string) ([]transport.Handle, error) {
				return nil, nil
			},
			CreateWebhookFunc: func(ctx context.Context, channelID string, name string) (*transport.Handle, error) {
				return nil, fmt.Errorf("missing permission")
			},
		}
		cache := transport.NewHandleCache(api, "FeedFan")
		assert.Nil(t, cache.Resolve(context.Background(), "chan-1"))
	})
}
