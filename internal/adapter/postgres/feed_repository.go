package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adchain/internal/core/domain"
)

// FeedRepository implements port.FeedRepository using pgxpool for PostgreSQL.
type FeedRepository struct {
	pool *pgxpool.Pool
}

// NewFeedRepository returns a new repository instance.
func NewFeedRepository(pool *pgxpool.Pool) *FeedRepository {
	return &FeedRepository{pool: pool}
}

// ListFeedItems returns the items of category ordered by position. An empty
// category lists every item.
func (r *FeedRepository) ListFeedItems(ctx context.Context, category string) ([]domain.FeedItem, error) {
	query := `
        SELECT id, category, title, body, image_url, position, created_at
        FROM feed_items
        WHERE $1 = '' OR category = $1
        ORDER BY position, id`
	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FeedItem, error) {
		var it domain.FeedItem
		err := row.Scan(&it.ID, &it.Category, &it.Title, &it.Body, &it.ImageURL, &it.Position, &it.CreatedAt)
		return it, err
	})
}
