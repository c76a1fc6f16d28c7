package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/feedfan/feedfan/pkg/dedup"
	"github.com/feedfan/feedfan/pkg/domain"
	"github.com/feedfan/feedfan/pkg/repository"
	"github.com/feedfan/feedfan/pkg/transport"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/watermark_store.go -pkg mocks -skip-ensure -fmt goimports . WatermarkStore
//go:generate moq -out mocks/seen_store.go -pkg mocks -skip-ensure -fmt goimports . SeenStore
//go:generate moq -out mocks/handle_resolver.go -pkg mocks -skip-ensure -fmt goimports . HandleResolver
//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender
//go:generate moq -out mocks/icon_resolver.go -pkg mocks -skip-ensure -fmt goimports . IconResolver
//go:generate moq -out mocks/image_resolver.go -pkg mocks -skip-ensure -fmt goimports . ImageResolver
//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Fetcher retrieves and parses a feed into items
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]domain.Item, error)
}

// WatermarkStore persists per-feed delivery watermarks
type WatermarkStore interface {
	Get(ctx context.Context, feedKey string) (*domain.Watermark, error)
	Set(ctx context.Context, feedKey, lastGUID string, lastPublished time.Time, lastTitle string) error
}

// SeenStore persists the bounded recently-delivered id set for the seen
// dedup strategy
type SeenStore interface {
	Known(ctx context.Context, feedKey string) (map[string]struct{}, error)
	Record(ctx context.Context, feedKey string, guids []string, keep int) error
}

// HandleResolver resolves destination ids to delivery handles, nil means
// the destination is unavailable right now
type HandleResolver interface {
	Resolve(ctx context.Context, destinationID string) *transport.Handle
}

// Sender executes sends through delivery handles
type Sender interface {
	Execute(ctx context.Context, h *transport.Handle, msg transport.Message) error
}

// IconResolver finds and re-validates feed icons
type IconResolver interface {
	Resolve(ctx context.Context, pageURL string) string
	Validate(ctx context.Context, iconURL, pageURL string) string
}

// ImageResolver finds a representative image for an item
type ImageResolver interface {
	ResolveItemImage(ctx context.Context, item domain.Item) string
}

// Renderer builds message payloads from items
type Renderer interface {
	Render(item domain.Item, feedName, imageURL string) transport.Message
	RenderFallback(item domain.Item, feedName string) transport.Message
}

// Extractor pulls article text for items that come without a snippet
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// PipelineConfig holds the pipeline's collaborators and tunables
type PipelineConfig struct {
	Feeds      []domain.Feed
	Fetcher    Fetcher
	Watermarks WatermarkStore
	Seen       SeenStore
	Handles    HandleResolver
	Sender     Sender
	Icons      IconResolver
	Images     ImageResolver
	Renderer   Renderer
	Extractor  Extractor // optional, nil disables snippet extraction

	DedupStrategy string // "watermark" or "seen"
	SeenSize      int
	Concurrency   int // feeds processed in parallel, 1 keeps the sequential baseline
}

// Pipeline runs one full pass over all configured feeds: fetch, detect
// new items, order them, and fan each one out to its destinations.
// Failures are isolated at the granularity where they occur: a feed, an
// item, or a single destination.
type Pipeline struct {
	PipelineConfig

	mu       sync.Mutex
	statuses map[string]domain.CycleStatus
}

// NewPipeline creates a pipeline from the given configuration
func NewPipeline(cfg PipelineConfig) *Pipeline {
	if cfg.DedupStrategy == "" {
		cfg.DedupStrategy = "watermark"
	}
	if cfg.SeenSize == 0 {
		cfg.SeenSize = 200
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = 1
	}
	return &Pipeline{
		PipelineConfig: cfg,
		statuses:       make(map[string]domain.CycleStatus),
	}
}

// ProcessAll runs one cycle over every configured feed. Feed failures
// never propagate across feeds.
func (p *Pipeline) ProcessAll(ctx context.Context) {
	if len(p.Feeds) == 0 {
		lgr.Printf("[WARN] no feeds configured, nothing to process")
		return
	}

	lgr.Printf("[INFO] processing %d feeds", len(p.Feeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Concurrency)

	for _, f := range p.Feeds {
		g.Go(func() error {
			p.processFeed(gctx, f)
			return nil // per-feed failures stay inside processFeed
		})
	}

	_ = g.Wait()
	lgr.Printf("[INFO] cycle completed")
}

// processFeed handles one feed end to end. The watermark advances at most
// once, after dispatch of the whole new-item batch has been attempted.
func (p *Pipeline) processFeed(ctx context.Context, f domain.Feed) {
	lgr.Printf("[DEBUG] processing feed: %s", f.URL)
	key := repository.FeedKey(f.URL)

	items, err := p.Fetcher.Fetch(ctx, f.URL)
	if err != nil {
		lgr.Printf("[ERROR] failed to fetch feed %s: %v", f.URL, err)
		p.setStatus(f, 0, err, nil)
		return
	}

	fresh := p.detectNew(ctx, key, items)
	if len(fresh) == 0 {
		lgr.Printf("[DEBUG] no new items for feed: %s", f.Name)
		p.setStatus(f, 0, nil, nil)
		return
	}

	// oldest first, so destinations receive items in publish order
	dedup.SortByPublished(fresh)
	lgr.Printf("[INFO] %d new items for feed: %s", len(fresh), f.Name)

	// icon resolved once per feed per cycle
	iconURL := p.Icons.Resolve(ctx, f.URL)

	delivered := 0
	for i := range fresh {
		p.fillSnippet(ctx, &fresh[i])
		delivered += p.dispatchItem(ctx, f, fresh[i], iconURL)
	}

	// the watermark reflects the last item of the attempted batch even if
	// some destinations failed, at-least-once wins over blocking the feed
	last := fresh[len(fresh)-1]
	if err := p.Watermarks.Set(ctx, key, last.GUID, last.Published, last.Title); err != nil {
		lgr.Printf("[ERROR] failed to store watermark for %s: %v", f.URL, err)
		p.setStatus(f, delivered, err, &last)
		return
	}

	if p.DedupStrategy == "seen" {
		guids := make([]string, 0, len(fresh))
		for _, item := range fresh {
			if item.GUID != "" {
				guids = append(guids, item.GUID)
			}
		}
		if err := p.Seen.Record(ctx, key, guids, p.SeenSize); err != nil {
			lgr.Printf("[ERROR] failed to record seen items for %s: %v", f.URL, err)
		}
	}

	p.setStatus(f, delivered, nil, &last)
}

// detectNew classifies fetched items with the configured strategy. A
// failed state read degrades to "no prior state": everything counts as
// new and gets redelivered, which at-least-once semantics allow.
func (p *Pipeline) detectNew(ctx context.Context, feedKey string, items []domain.Item) []domain.Item {
	if p.DedupStrategy == "seen" {
		known, err := p.Seen.Known(ctx, feedKey)
		if err != nil {
			lgr.Printf("[WARN] failed to read seen set for %s, treating all items as new: %v", feedKey, err)
			known = nil
		}
		return dedup.NewItemsSeen(items, known)
	}

	wm, err := p.Watermarks.Get(ctx, feedKey)
	if err != nil {
		lgr.Printf("[WARN] failed to read watermark for %s, treating all items as new: %v", feedKey, err)
		wm = nil
	}
	return dedup.NewItems(items, wm)
}

// fillSnippet fetches article text for items that came without one
func (p *Pipeline) fillSnippet(ctx context.Context, item *domain.Item) {
	if p.Extractor == nil || item.Snippet() != "" || item.Link == "" {
		return
	}
	text, err := p.Extractor.Extract(ctx, item.Link)
	if err != nil {
		lgr.Printf("[DEBUG] no snippet extracted for %s: %v", item.Link, err)
		return
	}
	item.Description = text
}

// dispatchItem fans one item out to every destination of its feed and
// returns the number of successful sends. Each destination fails or
// succeeds on its own.
func (p *Pipeline) dispatchItem(ctx context.Context, f domain.Feed, item domain.Item, iconURL string) int {
	imageURL := p.Images.ResolveItemImage(ctx, item)

	sent := 0
	for _, dest := range f.Destinations {
		h := p.Handles.Resolve(ctx, dest)
		if !h.Usable() {
			lgr.Printf("[WARN] destination %s unavailable, skipping item %q", dest, item.Title)
			continue
		}

		msg := p.Renderer.Render(item, f.Name, imageURL)
		msg.Username = f.Name
		// the icon may have gone stale since resolution, re-check per send
		msg.AvatarURL = p.Icons.Validate(ctx, iconURL, f.URL)

		if err := p.Sender.Execute(ctx, h, msg); err != nil {
			lgr.Printf("[WARN] send to %s failed for %q: %v", dest, item.Title, err)

			fallback := p.Renderer.RenderFallback(item, f.Name)
			fallback.Username = f.Name
			if err := p.Sender.Execute(ctx, h, fallback); err != nil {
				lgr.Printf("[ERROR] fallback send to %s failed for %q: %v", dest, item.Title, err)
				continue
			}
		}
		sent++
	}
	return sent
}

// setStatus records the cycle outcome for one feed
func (p *Pipeline) setStatus(f domain.Feed, delivered int, err error, last *domain.Item) {
	st := domain.CycleStatus{
		FeedURL:   f.URL,
		FeedName:  f.Name,
		LastRun:   time.Now(),
		Delivered: delivered,
	}
	if err != nil {
		st.LastError = err.Error()
	}
	if last != nil {
		st.LastGUID = last.GUID
		st.LastTitle = last.Title
	}

	p.mu.Lock()
	p.statuses[f.URL] = st
	p.mu.Unlock()
}

// Statuses returns the latest per-feed cycle outcomes in feed config order
func (p *Pipeline) Statuses() []domain.CycleStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]domain.CycleStatus, 0, len(p.Feeds))
	for _, f := range p.Feeds {
		if st, ok := p.statuses[f.URL]; ok {
			out = append(out, st)
		}
	}
	return out
}
