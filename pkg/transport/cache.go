package transport

import (
	"context"
	"sync"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/api.go -pkg mocks -skip-ensure -fmt goimports . API

// API is the subset of the messaging client the cache needs
type API interface {
	Channel(ctx context.Context, id string) (*Channel, error)
	Webhooks(ctx context.Context, channelID string) ([]Handle, error)
	CreateWebhook(ctx context.Context, channelID, name string) (*Handle, error)
}

// HandleCache resolves destination ids to delivery handles, lazily created
// and cached for the process lifetime. Resolution failures are reported as
// a nil handle, not an error: the caller skips that destination and moves
// on with the rest of the fan-out.
type HandleCache struct {
	api        API
	senderName string

	mu      sync.Mutex
	handles map[string]*Handle
}

// NewHandleCache creates an empty cache. senderName is the display name
// used when a webhook has to be created.
func NewHandleCache(api API, senderName string) *HandleCache {
	return &HandleCache{
		api:        api,
		senderName: senderName,
		handles:    make(map[string]*Handle),
	}
}

// Resolve returns the delivery handle for a destination, or nil when the
// destination cannot be resolved right now. At most one handle is cached
// per destination id; entries are never evicted.
func (c *HandleCache) Resolve(ctx context.Context, destinationID string) *Handle {
	c.mu.Lock()
	if h, ok := c.handles[destinationID]; ok {
		c.mu.Unlock()
		return h
	}
	c.mu.Unlock()

	h := c.resolve(ctx, destinationID)
	if h == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// lost races keep the first stored handle
	if existing, ok := c.handles[destinationID]; ok {
		return existing
	}
	c.handles[destinationID] = h
	return h
}

// Len returns the number of cached handles
func (c *HandleCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles)
}

// resolve walks the destination to a webhook-capable channel and finds or
// creates a handle there
func (c *HandleCache) resolve(ctx context.Context, destinationID string) *Handle {
	ch, err := c.api.Channel(ctx, destinationID)
	if err != nil {
		lgr.Printf("[WARN] can't fetch destination %s: %v", destinationID, err)
		return nil
	}

	// webhooks live on the parent container, sends target the thread
	targetID, threadID := ch.ID, ""
	if ch.IsThread() {
		if ch.ParentID == "" {
			lgr.Printf("[WARN] thread %s has no parent channel", destinationID)
			return nil
		}
		targetID, threadID = ch.ParentID, ch.ID
	}

	hooks, err := c.api.Webhooks(ctx, targetID)
	if err != nil {
		lgr.Printf("[WARN] can't list webhooks on %s: %v", targetID, err)
		return nil
	}

	for i := range hooks {
		if hooks[i].Token != "" {
			h := hooks[i]
			h.ThreadID = threadID
			return &h
		}
	}

	created, err := c.api.CreateWebhook(ctx, targetID, c.senderName)
	if err != nil {
		lgr.Printf("[WARN] can't create webhook on %s: %v", targetID, err)
		return nil
	}
	created.ThreadID = threadID
	return created
}
