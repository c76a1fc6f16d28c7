// Package transport talks to a Discord-compatible messaging API: channel
// lookup, webhook management, and webhook execution.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// channel types that are threads and must be resolved to their parent
// container before webhook placement
const (
	channelTypeNewsThread    = 10
	channelTypePublicThread  = 11
	channelTypePrivateThread = 12
)

// Channel is a delivery destination as the messaging API sees it
type Channel struct {
	ID       string `json:"id"`
	Type     int    `json:"type"`
	ParentID string `json:"parent_id"`
}

// IsThread reports whether the channel is a sub-context of another channel
func (c *Channel) IsThread() bool {
	return c.Type == channelTypeNewsThread || c.Type == channelTypePublicThread || c.Type == channelTypePrivateThread
}

// Handle is a reusable delivery endpoint for a destination. ThreadID is
// set when the original destination was a thread, so sends land in the
// thread rather than its parent.
type Handle struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Name     string `json:"name"`
	ThreadID string `json:"-"`
}

// Usable reports whether the handle can execute sends
func (h *Handle) Usable() bool {
	return h != nil && h.ID != "" && h.Token != ""
}

// Client is an HTTP client for the messaging API
type Client struct {
	apiBase   string
	token     string
	userAgent string
	client    *http.Client
}

// NewClient creates a messaging API client
func NewClient(apiBase, token, userAgent string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiBase:   apiBase,
		token:     token,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Channel fetches a destination channel by id
func (c *Client) Channel(ctx context.Context, id string) (*Channel, error) {
	var ch Channel
	if err := c.doJSON(ctx, http.MethodGet, "/channels/"+id, nil, &ch); err != nil {
		return nil, fmt.Errorf("fetch channel %s: %w", id, err)
	}
	return &ch, nil
}

// Webhooks lists existing webhooks on a channel
func (c *Client) Webhooks(ctx context.Context, channelID string) ([]Handle, error) {
	var hooks []Handle
	if err := c.doJSON(ctx, http.MethodGet, "/channels/"+channelID+"/webhooks", nil, &hooks); err != nil {
		return nil, fmt.Errorf("list webhooks for %s: %w", channelID, err)
	}
	return hooks, nil
}

// CreateWebhook creates a webhook with the given display name
func (c *Client) CreateWebhook(ctx context.Context, channelID, name string) (*Handle, error) {
	body := map[string]string{"name": name}
	var hook Handle
	if err := c.doJSON(ctx, http.MethodPost, "/channels/"+channelID+"/webhooks", body, &hook); err != nil {
		return nil, fmt.Errorf("create webhook on %s: %w", channelID, err)
	}
	return &hook, nil
}

// Execute sends a message through a webhook handle. Transient failures
// (rate limit, server errors) are retried with backoff; anything else
// fails immediately.
func (c *Client) Execute(ctx context.Context, h *Handle, msg Message) error {
	if !h.Usable() {
		return fmt.Errorf("handle not usable")
	}

	target := c.apiBase + "/webhooks/" + h.ID + "/" + h.Token
	if h.ThreadID != "" {
		target += "?thread_id=" + url.QueryEscape(h.ThreadID)
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	retrier := repeater.NewBackoff(3, 500*time.Millisecond, repeater.WithMaxDelay(5*time.Second))
	return retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
		if err != nil {
			return &permanentError{err: fmt.Errorf("create request: %w", err)}
		}
		req.Header.Set("Content-Type", "application/json")
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return err // retry network errors
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}

		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		sendErr := fmt.Errorf("webhook execute status %d: %s", resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return sendErr // retry
		}
		return &permanentError{err: sendErr}
	}, errPermanent)
}

// doJSON performs an authenticated API request and decodes the response
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("api status %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errPermanent is the terminal sentinel passed to repeater.Do: failures
// wrapped in permanentError match it and stop the retry loop immediately
var errPermanent = errors.New("permanent failure")

// permanentError wraps an error to signal repeater to stop retrying
type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}

func (e *permanentError) Is(target error) bool {
	return target == errPermanent
}
