package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPExtractor_Extract(t *testing.T) {
	article := `<!DOCTYPE html><html><head><title>Test Article</title></head><body>
<article>
<h1>Test Article Heading</h1>
<p>` + strings.Repeat("This is the main article body with enough text to pass extraction. ", 10) + `</p>
<p>A second paragraph keeps the extractor happy and the content realistic.</p>
</article>
</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(article))
	}))
	defer server.Close()

	e := NewHTTPExtractor(10*time.Second, "FeedFan/1.0", 100)
	text, err := e.Extract(context.Background(), server.URL+"/article")
	require.NoError(t, err)
	assert.Contains(t, text, "main article body")
	assert.GreaterOrEqual(t, len(text), 100)
}

func TestHTTPExtractor_TooShort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><p>tiny</p></body></html>"))
	}))
	defer server.Close()

	e := NewHTTPExtractor(10*time.Second, "FeedFan/1.0", 100)
	_, err := e.Extract(context.Background(), server.URL)
	require.Error(t, err)
}

func TestHTTPExtractor_BadURL(t *testing.T) {
	e := NewHTTPExtractor(time.Second, "FeedFan/1.0", 10)

	_, err := e.Extract(context.Background(), "not-a-url")
	require.Error(t, err)

	_, err = e.Extract(context.Background(), "http://127.0.0.1:1/x")
	require.Error(t, err)
}

func TestHTTPExtractor_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	e := NewHTTPExtractor(time.Second, "FeedFan/1.0", 10)
	_, err := e.Extract(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code")
}
