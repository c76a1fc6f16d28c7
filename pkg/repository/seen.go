package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// SeenRepository keeps a bounded set of recently delivered item ids per
// feed, backing the optional seen dedup strategy
type SeenRepository struct {
	db *sqlx.DB
}

// NewSeenRepository creates a new seen-items repository
func NewSeenRepository(database *sqlx.DB) *SeenRepository {
	return &SeenRepository{db: database}
}

// Known returns the set of recently recorded guids for a feed
func (r *SeenRepository) Known(ctx context.Context, feedKey string) (map[string]struct{}, error) {
	var guids []string
	err := r.db.SelectContext(ctx, &guids, "SELECT guid FROM seen_items WHERE feed_key = ?", feedKey)
	if err != nil {
		return nil, fmt.Errorf("get seen items: %w", err)
	}

	known := make(map[string]struct{}, len(guids))
	for _, g := range guids {
		known[g] = struct{}{}
	}
	return known, nil
}

// Record stores delivered guids and prunes the set down to keep entries,
// oldest first
func (r *SeenRepository) Record(ctx context.Context, feedKey string, guids []string, keep int) error {
	if len(guids) == 0 {
		return nil
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("begin seen tx: %w", err)}
		}
		defer func() { _ = tx.Rollback() }()

		for _, guid := range guids {
			query := "INSERT INTO seen_items (feed_key, guid) VALUES (?, ?) ON CONFLICT(feed_key, guid) DO UPDATE SET seen_at = CURRENT_TIMESTAMP"
			if _, err := tx.ExecContext(ctx, query, feedKey, guid); err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("record seen item: %w", err)}
			}
		}

		prune := `
			DELETE FROM seen_items WHERE feed_key = ? AND guid NOT IN (
				SELECT guid FROM seen_items WHERE feed_key = ?
				ORDER BY seen_at DESC, guid DESC LIMIT ?
			)
		`
		if _, err := tx.ExecContext(ctx, prune, feedKey, feedKey, keep); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("prune seen items: %w", err)}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("commit seen tx: %w", err)}
		}
		return nil
	}, errCritical)
}
