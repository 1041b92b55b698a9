package port

import (
	"context"

	"adchain/internal/core/domain"
)

// AdFetcher is the transport collaborator that retrieves ad batches from the
// ad server. Retries and timeouts are its own concern.
type AdFetcher interface {
	// FetchAdBatch requests exactly count ads for unitID.
	FetchAdBatch(ctx context.Context, unitID string, count int) ([]domain.AdRecord, error)
}

// EventReporter forwards engagement events to analytics.
type EventReporter interface {
	ReportEvent(ctx context.Context, event domain.Event) error
}

// TrackingPinger sends the confirmation request for a tracking URL.
type TrackingPinger interface {
	Ping(ctx context.Context, url string) error
}

// AdTracker reports engagement at most once per ad and kind within a session.
// Clicks are the exception: every click is reported.
type AdTracker interface {
	TrackImpression(ctx context.Context, ad domain.AdRecord)
	TrackClick(ctx context.Context, ad domain.AdRecord)
	TrackConversion(ctx context.Context, ad domain.AdRecord)
	TrackVideoStart(ctx context.Context, ad domain.AdRecord)
	TrackVideoComplete(ctx context.Context, ad domain.AdRecord)
	// Reset starts a new tracking session.
	Reset()
}

// AdLoader is the part of the loader a list adapter depends on.
type AdLoader interface {
	LoadAds(ctx context.Context, unitID string, count int) (domain.CachedAdSet, error)
	TrackImpression(ctx context.Context, ad domain.AdRecord)
	TrackClick(ctx context.Context, ad domain.AdRecord)
	// ResetTracking starts a new tracking session, so ads seen before are
	// reported again.
	ResetTracking()
}
