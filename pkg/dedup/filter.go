// Package dedup decides which fetched items have not been delivered yet
// and puts them into delivery order.
package dedup

import (
	"sort"

	"github.com/feedfan/feedfan/pkg/domain"
)

// NewItems classifies fetched items against the feed's watermark using a
// three-tier, item-by-item comparison: stable id, then publish date, then
// title. A matching id conclusively marks the item as already delivered;
// a differing id hands the decision to the date tier, so an unchanged
// response delivers nothing on the next cycle. An item with no comparable
// field on either side is treated as new, which also covers the first run
// when no watermark exists.
//
// Known limitation: each item is compared only to the single stored
// watermark, not to the set of everything delivered before. A source
// that re-surfaces undated entries between polls can get an old item
// classified as new again. NewItemsSeen is the opt-in alternative without
// this property.
func NewItems(items []domain.Item, wm *domain.Watermark) []domain.Item {
	if wm == nil {
		return items
	}

	fresh := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if isNew(item, wm) {
			fresh = append(fresh, item)
		}
	}
	return fresh
}

// isNew applies the tier chain for a single item
func isNew(item domain.Item, wm *domain.Watermark) bool {
	// a matching stable id means this is the watermarked item itself
	if item.GUID != "" && wm.LastGUID != "" && item.GUID == wm.LastGUID {
		return false
	}
	if !item.Published.IsZero() && !wm.LastPublished.IsZero() {
		return item.Published.After(wm.LastPublished)
	}
	if item.Title != "" && wm.LastTitle != "" {
		return item.Title != wm.LastTitle
	}
	return true
}

// NewItemsSeen classifies items against a set of recently delivered guids.
// Items without a guid are always considered new under this strategy.
func NewItemsSeen(items []domain.Item, known map[string]struct{}) []domain.Item {
	fresh := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.GUID == "" {
			fresh = append(fresh, item)
			continue
		}
		if _, ok := known[item.GUID]; !ok {
			fresh = append(fresh, item)
		}
	}
	return fresh
}

// SortByPublished orders items ascending by publish time with a stable
// sort. Items without a parseable time compare equal to everything, so
// they keep their relative fetch order.
func SortByPublished(items []domain.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Published.IsZero() || items[j].Published.IsZero() {
			return false // unknown times are equal-rank
		}
		return items[i].Published.Before(items[j].Published)
	})
}
