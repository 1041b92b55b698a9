package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"adchain/internal/core/domain"
	"adchain/internal/core/port"
)

// EventRepository implements port.EventRepository using pgxpool for
// PostgreSQL. It stores every reported engagement event in ad_events.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a new repository instance.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// ReportEvent inserts the event. Reporting the same event id twice is a
// no-op.
func (r *EventRepository) ReportEvent(ctx context.Context, event domain.Event) error {
	params, err := json.Marshal(event.Params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO ad_events (id, kind, ad_id, params, created_at)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT (id) DO NOTHING`,
		event.ID, string(event.Kind), event.AdID, params, event.CreatedAt)
	return err
}

// GetStats returns aggregated event counts for the period, optionally
// restricted to a single ad.
func (r *EventRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{req.From, req.To}
	whereAd := ""
	if req.AdID != nil {
		whereAd = "AND ad_id = $3"
		args = append(args, *req.AdID)
	}
	query := fmt.Sprintf(`
        SELECT
            count(*) FILTER (WHERE kind = 'impression'),
            count(*) FILTER (WHERE kind = 'click'),
            count(*) FILTER (WHERE kind = 'conversion')
        FROM ad_events
        WHERE created_at >= $1 AND created_at <= $2 %s`, whereAd)

	var resp port.StatsResp
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Impressions, &resp.Clicks, &resp.Conversions); err != nil {
		return nil, err
	}
	return &resp, nil
}
