// Package icon resolves a visual identity for a feed's origin. Resolution
// is best-effort and never fails: every chain terminates in a
// favicon-by-domain service URL that is trusted without probing.
package icon

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
)

// iconPaths are well-known icon locations probed in order by the direct
// strategy
var iconPaths = []string{
	"/favicon.ico",
	"/favicon.png",
	"/apple-touch-icon.png",
	"/apple-touch-icon-precomposed.png",
}

// Opts configures the resolver
type Opts struct {
	Strategy        string // "probe" tries well-known paths and page markup, "service" goes straight to a logo service
	LogoService     string
	FallbackService string
	Timeout         time.Duration
	UserAgent       string
}

// strategy attempts one way of finding an icon for the origin,
// returning false to hand over to the next link in the chain
type strategy func(ctx context.Context, origin *url.URL) (string, bool)

// Resolver finds an icon URL for a feed origin via an ordered strategy chain
type Resolver struct {
	client          *http.Client
	chain           []strategy
	fallbackService string
	userAgent       string
}

// NewResolver creates a resolver with the chain selected by opts.Strategy
func NewResolver(opts Opts) *Resolver {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.FallbackService == "" {
		opts.FallbackService = "https://www.google.com/s2/favicons"
	}
	if opts.LogoService == "" {
		opts.LogoService = "https://logo.clearbit.com/"
	}

	r := &Resolver{
		client:          &http.Client{Timeout: opts.Timeout},
		fallbackService: opts.FallbackService,
		userAgent:       opts.UserAgent,
	}

	if opts.Strategy == "service" {
		r.chain = []strategy{r.logoService(opts.LogoService)}
	} else {
		r.chain = []strategy{r.wellKnownPaths, r.pageLinks}
	}

	return r
}

// Resolve returns an icon URL for the page's origin. The chain runs in
// order and the first hit wins; if nothing pans out the fallback service
// URL is returned as-is.
func (r *Resolver) Resolve(ctx context.Context, pageURL string) string {
	origin, err := originOf(pageURL)
	if err != nil {
		lgr.Printf("[DEBUG] icon: bad origin %q: %v", pageURL, err)
		return r.fallbackURL("")
	}

	for _, s := range r.chain {
		if iconURL, ok := s(ctx, origin); ok {
			return iconURL
		}
	}

	return r.fallbackURL(origin.Hostname())
}

// Validate re-checks a previously resolved icon URL right before it is
// used as a sender avatar. A resolution from earlier in the cycle may have
// gone stale, so the URL is probed again; on failure the fallback service
// URL for the page's domain is returned instead.
func (r *Resolver) Validate(ctx context.Context, iconURL, pageURL string) string {
	if iconURL != "" && r.probe(ctx, iconURL) {
		return iconURL
	}

	domain := ""
	if origin, err := originOf(pageURL); err == nil {
		domain = origin.Hostname()
	}
	fallback := r.fallbackURL(domain)
	if iconURL != fallback {
		lgr.Printf("[DEBUG] icon: %q failed live check, using %q", iconURL, fallback)
	}
	return fallback
}

// originOf normalizes a page URL to its stripped origin, keeping scheme
// and port so probes hit the right server
func originOf(pageURL string) (*url.URL, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("no host in %q", pageURL)
	}

	host := StripDomain(u.Hostname())
	if port := u.Port(); port != "" {
		host = host + ":" + port
	}

	scheme := u.Scheme
	if scheme == "" {
		scheme = "https"
	}

	return &url.URL{Scheme: scheme, Host: host}, nil
}

// wellKnownPaths probes the usual icon locations on the origin
func (r *Resolver) wellKnownPaths(ctx context.Context, origin *url.URL) (string, bool) {
	for _, path := range iconPaths {
		candidate := origin.String() + path
		if r.probe(ctx, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// pageLinks fetches the origin's root page and tries every icon link tag
func (r *Resolver) pageLinks(ctx context.Context, origin *url.URL) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin.String()+"/", http.NoBody)
	if err != nil {
		return "", false
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", false
	}

	var found string
	doc.Find("link[rel]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rel, _ := s.Attr("rel")
		if !strings.Contains(strings.ToLower(rel), "icon") {
			return true
		}
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return true
		}

		// resolve relative candidates against the origin
		candidate, err := origin.Parse(href)
		if err != nil {
			return true
		}
		if r.probe(ctx, candidate.String()) {
			found = candidate.String()
			return false
		}
		return true
	})

	return found, found != ""
}

// logoService probes a third-party logo service for the domain
func (r *Resolver) logoService(base string) strategy {
	return func(ctx context.Context, origin *url.URL) (string, bool) {
		candidate := strings.TrimSuffix(base, "/") + "/" + origin.Hostname()
		if r.probe(ctx, candidate) {
			return candidate, true
		}
		return "", false
	}
}

// probe checks that a candidate URL exists and actually serves an image
func (r *Resolver) probe(ctx context.Context, candidate string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidate, http.NoBody)
	if err != nil {
		return false
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false
	}
	return strings.HasPrefix(resp.Header.Get("Content-Type"), "image/")
}

// fallbackURL builds the guaranteed-success service URL, never probed
func (r *Resolver) fallbackURL(domain string) string {
	return fmt.Sprintf("%s?domain=%s&sz=128", strings.TrimSuffix(r.fallbackService, "/"), domain)
}
