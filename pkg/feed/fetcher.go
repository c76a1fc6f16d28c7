package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/feedfan/feedfan/pkg/domain"
)

// HTTPFetcher retrieves and parses RSS/Atom feeds via HTTP
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates a new feed fetcher
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Fetch retrieves and parses a feed from the given URL. Items are returned
// in source order, no reordering happens at this level.
func (f *HTTPFetcher) Fetch(ctx context.Context, feedURL string) ([]domain.Item, error) {
	body, err := f.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	items := make([]domain.Item, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		converted := domain.Item{
			GUID:        item.GUID,
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			Content:     item.Content,
			Categories:  item.Categories,
		}

		// guid falls back to link, items without either rely on title dedup
		if converted.GUID == "" {
			converted.GUID = item.Link
		}

		if item.Author != nil {
			converted.Author = item.Author.Name
		}

		// parse publish time, updated time is a second choice
		if item.PublishedParsed != nil {
			converted.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			converted.Published = *item.UpdatedParsed
		}

		for _, enc := range item.Enclosures {
			if enc == nil {
				continue
			}
			converted.Enclosures = append(converted.Enclosures, domain.Enclosure{URL: enc.URL, Type: enc.Type})
		}

		converted.Image = itemImage(item)

		items = append(items, converted)
	}

	return items, nil
}

// itemImage picks the best image available in the feed entry itself, checked
// in priority order: media thumbnail, media content image, image enclosure,
// generic image field. Page-level extraction is a separate later step.
func itemImage(item *gofeed.Item) string {
	if media, ok := item.Extensions["media"]; ok {
		for _, thumb := range media["thumbnail"] {
			if url := thumb.Attrs["url"]; url != "" {
				return url
			}
		}
		for _, content := range media["content"] {
			if medium := content.Attrs["medium"]; medium != "" && medium != "image" {
				continue
			}
			if url := content.Attrs["url"]; url != "" {
				return url
			}
		}
	}

	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}

	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	return ""
}

// fetch retrieves content from a URL
func (f *HTTPFetcher) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	// add browser-like headers
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
