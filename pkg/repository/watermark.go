package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/feedfan/feedfan/pkg/domain"
)

// WatermarkRepository persists per-feed delivery watermarks
type WatermarkRepository struct {
	db *sqlx.DB
}

// watermarkSQL represents a watermark row for SQL operations
type watermarkSQL struct {
	FeedKey       string    `db:"feed_key"`
	LastGUID      string    `db:"last_guid"`
	LastPublished string    `db:"last_published"`
	LastTitle     string    `db:"last_title"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// NewWatermarkRepository creates a new watermark repository
func NewWatermarkRepository(database *sqlx.DB) *WatermarkRepository {
	return &WatermarkRepository{db: database}
}

// Get retrieves the watermark for a feed key, nil when none exists yet.
// Stored timestamps are normalized here, the rest of the pipeline only
// ever sees time.Time.
func (r *WatermarkRepository) Get(ctx context.Context, feedKey string) (*domain.Watermark, error) {
	var row watermarkSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM watermarks WHERE feed_key = ?", feedKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get watermark: %w", err)
	}

	return &domain.Watermark{
		FeedKey:       row.FeedKey,
		LastGUID:      row.LastGUID,
		LastPublished: parseTimestamp(row.LastPublished),
		LastTitle:     row.LastTitle,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

// Set upserts the watermark for a feed key. On first delivery the row is
// created with a fresh created_at; later writes overwrite only the
// delivery-state fields and updated_at.
func (r *WatermarkRepository) Set(ctx context.Context, feedKey, lastGUID string, lastPublished time.Time, lastTitle string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO watermarks (feed_key, last_guid, last_published, last_title)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(feed_key) DO UPDATE SET
				last_guid = excluded.last_guid,
				last_published = excluded.last_published,
				last_title = excluded.last_title,
				updated_at = CURRENT_TIMESTAMP
		`
		_, err := r.db.ExecContext(ctx, query, feedKey, lastGUID, formatTimestamp(lastPublished), lastTitle)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set watermark: %w", err)}
		}
		return nil
	}, errCritical)
}
