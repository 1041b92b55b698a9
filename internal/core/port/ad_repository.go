package port

import (
	"context"
	"time"

	"adchain/internal/core/domain"
)

// FeedRepository defines read access to the host's feed items. It is an
// outbound port in hexagonal architecture.
type FeedRepository interface {
	// ListFeedItems returns the items of category ordered by position. An
	// empty category lists every item.
	ListFeedItems(ctx context.Context, category string) ([]domain.FeedItem, error)
}

// EventRepository persists engagement events and aggregates them.
// Implementations must be concurrency-safe.
type EventRepository interface {
	EventReporter
	// GetStats returns aggregated event counts in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StatsResp contains aggregated event counts. Impressions, Clicks and
// Conversions count the number of respective events.
type StatsResp struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Conversions int64 `json:"conversions"`
}

// StatsReq selects the period and, optionally, the single ad to aggregate.
type StatsReq struct {
	From time.Time
	To   time.Time
	AdID *string
}
