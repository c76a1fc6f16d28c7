package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Channel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/channels/123", r.URL.Path)
		assert.Equal(t, "Bot test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(Channel{ID: "123", Type: 11, ParentID: "99"})
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-token", "FeedFan/1.0", 5*time.Second)
	ch, err := c.Channel(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "123", ch.ID)
	assert.True(t, ch.IsThread())
	assert.Equal(t, "99", ch.ParentID)
}

func TestClient_ChannelNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Unknown Channel"}`, http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-token", "FeedFan/1.0", 5*time.Second)
	_, err := c.Channel(context.Background(), "123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_WebhooksAndCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/channels/1/webhooks":
			json.NewEncoder(w).Encode([]Handle{{ID: "w1", Token: "t1", Name: "FeedFan"}})
		case r.Method == http.MethodPost && r.URL.Path == "/channels/1/webhooks":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			json.NewEncoder(w).Encode(Handle{ID: "w2", Token: "t2", Name: body["name"]})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-token", "FeedFan/1.0", 5*time.Second)

	hooks, err := c.Webhooks(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, hooks, 1)
	assert.True(t, hooks[0].Usable())

	created, err := c.CreateWebhook(context.Background(), "1", "FeedFan")
	require.NoError(t, err)
	assert.Equal(t, "w2", created.ID)
	assert.Equal(t, "FeedFan", created.Name)
}

func TestClient_Execute(t *testing.T) {
	var got Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/webhooks/w1/tok", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-token", "FeedFan/1.0", 5*time.Second)
	msg := Message{
		Username:  "My Feed",
		AvatarURL: "https://example.com/icon.png",
		Embeds:    []Embed{{Title: "Post", URL: "https://example.com/post"}},
	}
	require.NoError(t, c.Execute(context.Background(), &Handle{ID: "w1", Token: "tok"}, msg))

	assert.Equal(t, "My Feed", got.Username)
	assert.Equal(t, "https://example.com/icon.png", got.AvatarURL)
	require.Len(t, got.Embeds, 1)
	assert.Equal(t, "Post", got.Embeds[0].Title)
}

func TestClient_ExecuteThreadTarget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", r.URL.Query().Get("thread_id"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-token", "FeedFan/1.0", 5*time.Second)
	err := c.Execute(context.Background(), &Handle{ID: "w1", Token: "tok", ThreadID: "42"}, Message{Content: "x"})
	require.NoError(t, err)
}

func TestClient_ExecuteRetriesTransient(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-token", "FeedFan/1.0", 5*time.Second)
	err := c.Execute(context.Background(), &Handle{ID: "w1", Token: "tok"}, Message{Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_ExecuteNoRetryOnClientError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, `{"message":"Invalid Form Body"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-token", "FeedFan/1.0", 5*time.Second)
	err := c.Execute(context.Background(), &Handle{ID: "w1", Token: "tok"}, Message{Content: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "client errors must not be retried")
}

func TestClient_ExecuteUnusableHandle(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "t", "ua", time.Second)
	require.Error(t, c.Execute(context.Background(), &Handle{ID: "w1"}, Message{}))
	require.Error(t, c.Execute(context.Background(), nil, Message{}))
}
