// Package render converts a feed item into a destination-ready message
// payload. Optional sub-blocks degrade to plain text instead of failing
// the whole payload.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/feedfan/feedfan/pkg/domain"
	"github.com/feedfan/feedfan/pkg/transport"
)

// maxSnippetLen caps the content block, longer snippets get an ellipsis
const maxSnippetLen = 500

// separator visually splits the content block from the metadata
const separator = "───────────────"

// embedColor is the accent color of delivered embeds
const embedColor = 0x5865F2

// Renderer builds message payloads from feed items
type Renderer struct {
	policy *bluemonday.Policy
}

// NewRenderer creates a renderer with a strict HTML stripping policy
func NewRenderer() *Renderer {
	return &Renderer{policy: bluemonday.StrictPolicy()}
}

// Render builds the full structured payload for one item: header with
// title and link, separator, truncated content block, optional image,
// metadata fields, attribution footer, and a read-more link control.
// Sender identity (username, avatar) is left for the dispatcher to fill in.
func (r *Renderer) Render(item domain.Item, feedName, imageURL string) transport.Message {
	var desc strings.Builder

	if snippet := r.Snippet(item.Snippet()); snippet != "" {
		desc.WriteString(snippet)
		desc.WriteString("\n")
		desc.WriteString(separator)
		desc.WriteString("\n")
	}
	if item.Link != "" {
		fmt.Fprintf(&desc, "[Read more](%s)", item.Link)
	}

	embed := transport.Embed{
		Title:       item.Title,
		URL:         item.Link,
		Description: desc.String(),
		Color:       embedColor,
		Timestamp:   transport.FormatTimestamp(item.Published),
	}

	if len(item.Categories) > 0 {
		embed.Fields = append(embed.Fields, transport.EmbedField{
			Name:   "Categories",
			Value:  strings.Join(item.Categories, ", "),
			Inline: true,
		})
	}
	if item.Author != "" {
		embed.Fields = append(embed.Fields, transport.EmbedField{
			Name:   "Author",
			Value:  item.Author,
			Inline: true,
		})
	}
	if !item.Published.IsZero() {
		embed.Fields = append(embed.Fields, transport.EmbedField{
			Name:   "Published",
			Value:  item.Published.Local().Format("2 Jan 2006 15:04"),
			Inline: true,
		})
	}

	if imageURL != "" {
		embed.Image = &transport.EmbedImage{URL: imageURL}
	}

	embed.Footer = &transport.EmbedFooter{Text: "via " + feedName}

	return transport.Message{Embeds: []transport.Embed{embed}}
}

// RenderFallback builds the minimal payload used when sending the full
// one failed: plain title and link, nothing that can go wrong
func (r *Renderer) RenderFallback(item domain.Item, feedName string) transport.Message {
	content := strings.TrimSpace(item.Title + "\n" + item.Link)
	if content == "" {
		content = "new item from " + feedName
	}
	return transport.Message{Content: content}
}

// Snippet strips markup from feed-provided HTML and truncates the result
// to the content block limit
func (r *Renderer) Snippet(raw string) string {
	text := r.policy.Sanitize(raw)
	text = html.UnescapeString(text)
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) > maxSnippetLen {
		return string(runes[:maxSnippetLen]) + "…"
	}
	return text
}
