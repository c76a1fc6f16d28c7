// Package media finds a representative image for a feed item. Like icon
// resolution this is best-effort: any failure yields "no image", never an
// error the caller has to handle.
package media

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"

	"github.com/feedfan/feedfan/pkg/domain"
)

// minInlineSize is the smallest width or height for an inline image to be
// considered a header image rather than an icon or tracking pixel
const minInlineSize = 200

// headerNameHints mark inline images that are probably the article header
var headerNameHints = []string{"header", "hero", "thumbnail", "thumb", "eyecatch", "featured", "cover"}

// Resolver extracts images from linked article pages
type Resolver struct {
	client    *http.Client
	userAgent string
}

// NewResolver creates a media resolver
func NewResolver(timeout time.Duration, userAgent string) *Resolver {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Resolver{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// ResolveItemImage returns the best image URL for an item, or "" when none
// can be found. The feed-embedded image (thumbnail, media content, image
// enclosure) wins; otherwise the linked article's page metadata is scanned.
func (r *Resolver) ResolveItemImage(ctx context.Context, item domain.Item) string {
	if item.Image != "" {
		return item.Image
	}
	if item.Link == "" {
		return ""
	}

	img, err := r.fromArticlePage(ctx, item.Link)
	if err != nil {
		lgr.Printf("[DEBUG] media: no image for %s: %v", item.Link, err)
		return ""
	}
	return img
}

// fromArticlePage fetches the article and scans its markup: Open Graph
// image first, then Twitter Card, then a heuristically promising inline
// image. Relative URLs are resolved against the article URL.
func (r *Resolver) fromArticlePage(ctx context.Context, articleURL string) (string, error) {
	base, err := url.Parse(articleURL)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, http.NoBody)
	if err != nil {
		return "", err
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	if img := metaContent(doc, `meta[property="og:image"]`); img != "" {
		return absolute(base, img), nil
	}
	if img := metaContent(doc, `meta[name="twitter:image"]`); img != "" {
		return absolute(base, img), nil
	}
	if img := metaContent(doc, `meta[property="twitter:image"]`); img != "" {
		return absolute(base, img), nil
	}

	if img := inlineImage(doc); img != "" {
		return absolute(base, img), nil
	}

	return "", nil
}

// metaContent returns the content attribute of the first matching meta tag
func metaContent(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
}

// inlineImage scans body images for the first one that is either
// sufficiently large or named like a header image
func inlineImage(doc *goquery.Document) string {
	var found string
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src := s.AttrOr("src", "")
		if src == "" || strings.HasPrefix(src, "data:") {
			return true
		}

		if attrSize(s, "width") >= minInlineSize || attrSize(s, "height") >= minInlineSize {
			found = src
			return false
		}

		lower := strings.ToLower(src)
		for _, hint := range headerNameHints {
			if strings.Contains(lower, hint) {
				found = src
				return false
			}
		}
		return true
	})
	return found
}

// attrSize parses a numeric dimension attribute, 0 when absent or odd
func attrSize(s *goquery.Selection, name string) int {
	raw := strings.TrimSuffix(s.AttrOr(name, ""), "px")
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// absolute resolves a possibly relative image URL against the article URL
func absolute(base *url.URL, img string) string {
	resolved, err := base.Parse(img)
	if err != nil {
		return img
	}
	return resolved.String()
}
