package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/feedfan/feedfan/pkg/domain"
)

func pageServer(t *testing.T, html string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestResolveItemImage_FeedImageWins(t *testing.T) {
	r := NewResolver(time.Second, "FeedFan/1.0")
	got := r.ResolveItemImage(context.Background(), domain.Item{
		Image: "https://example.com/thumb.jpg",
		Link:  "http://127.0.0.1:1/article", // would fail if fetched
	})
	assert.Equal(t, "https://example.com/thumb.jpg", got)
}

func TestResolveItemImage_OpenGraph(t *testing.T) {
	server := pageServer(t, `<html><head>
		<meta property="og:image" content="https://cdn.example.com/og.jpg">
		<meta name="twitter:image" content="https://cdn.example.com/tw.jpg">
	</head></html>`)

	r := NewResolver(time.Second, "FeedFan/1.0")
	got := r.ResolveItemImage(context.Background(), domain.Item{Link: server.URL})
	assert.Equal(t, "https://cdn.example.com/og.jpg", got, "og:image beats twitter card")
}

func TestResolveItemImage_TwitterCard(t *testing.T) {
	server := pageServer(t, `<html><head>
		<meta name="twitter:image" content="/images/card.png">
	</head></html>`)

	r := NewResolver(time.Second, "FeedFan/1.0")
	got := r.ResolveItemImage(context.Background(), domain.Item{Link: server.URL + "/post/42"})
	assert.Equal(t, server.URL+"/images/card.png", got, "relative URL resolved against article")
}

func TestResolveItemImage_InlineHeuristics(t *testing.T) {
	t.Run("large image", func(t *testing.T) {
		server := pageServer(t, `<html><body>
			<img src="/pixel.gif" width="1" height="1">
			<img src="/photo.jpg" width="640" height="480">
		</body></html>`)

		r := NewResolver(time.Second, "FeedFan/1.0")
		got := r.ResolveItemImage(context.Background(), domain.Item{Link: server.URL})
		assert.Equal(t, server.URL+"/photo.jpg", got)
	})

	t.Run("named header image", func(t *testing.T) {
		server := pageServer(t, `<html><body>
			<img src="/ad.gif">
			<img src="/assets/eyecatch-main.png">
		</body></html>`)

		r := NewResolver(time.Second, "FeedFan/1.0")
		got := r.ResolveItemImage(context.Background(), domain.Item{Link: server.URL})
		assert.Equal(t, server.URL+"/assets/eyecatch-main.png", got)
	})

	t.Run("nothing promising", func(t *testing.T) {
		server := pageServer(t, `<html><body><img src="/tiny.gif" width="16"></body></html>`)

		r := NewResolver(time.Second, "FeedFan/1.0")
		got := r.ResolveItemImage(context.Background(), domain.Item{Link: server.URL})
		assert.Empty(t, got)
	})
}

func TestResolveItemImage_FetchFailure(t *testing.T) {
	r := NewResolver(time.Second, "FeedFan/1.0")
	got := r.ResolveItemImage(context.Background(), domain.Item{Link: "http://127.0.0.1:1/article"})
	assert.Empty(t, got, "fetch failure degrades to no image")
}

func TestResolveItemImage_NoLink(t *testing.T) {
	r := NewResolver(time.Second, "FeedFan/1.0")
	assert.Empty(t, r.ResolveItemImage(context.Background(), domain.Item{}))
}
