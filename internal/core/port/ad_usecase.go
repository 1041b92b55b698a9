package port

import (
	"context"

	"adchain/internal/core/domain"
)

// FeedUseCase defines the operations the host service exposes over feed
// sessions. Each session wraps the host's feed in a list adapter that splices
// ads between the items. This interface is the primary port into the
// application; mock implementations can be generated from it for testing.
type FeedUseCase interface {
	// OpenFeed snapshots the items of category, loads ads for them and
	// returns the new session. A failed ad load does not fail the call: the
	// feed is served without ads.
	OpenFeed(ctx context.Context, category string) (*FeedSession, error)

	// Items returns up to limit slots of the augmented list starting at
	// offset. Returning an ad slot counts as an impression.
	Items(ctx context.Context, sessionID string, offset, limit int) (*FeedPage, error)

	// Select handles a tap on the augmented position. For an ad it records a
	// click and returns the slot carrying the landing URL; for an item it
	// forwards the selection to the host feed.
	Select(ctx context.Context, sessionID string, position int) (*FeedSlot, error)

	// Refresh drops the session's ads and loads a new batch.
	Refresh(ctx context.Context, sessionID string) (*FeedSession, error)

	// Close destroys the session.
	Close(ctx context.Context, sessionID string) error

	// TrackConversion records a conversion for an ad shown in the session.
	TrackConversion(ctx context.Context, sessionID, adID string) error

	// GetStats returns aggregated engagement for the requested period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// FeedSession describes an open session. Revision increases every time the
// augmented list is redrawn.
type FeedSession struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Count    int    `json:"count"`
	Ads      int    `json:"ads"`
	Revision int64  `json:"revision"`
}

// FeedSlot is one position of the augmented list; exactly one of Ad and Item
// is set.
type FeedSlot struct {
	Position int              `json:"position"`
	Ad       *AdView          `json:"ad,omitempty"`
	Item     *domain.FeedItem `json:"item,omitempty"`
	Size     domain.Size      `json:"size"`
}

// AdView is the DTO for an ad slot. It does not contain domain behaviour.
type AdView struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	ImageURL    string            `json:"image_url"`
	IconURL     string            `json:"icon_url,omitempty"`
	CTAText     string            `json:"cta_text"`
	LandingURL  string            `json:"landing_url"`
	SponsorName string            `json:"sponsor_name,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// FeedPage is a window over the augmented list.
type FeedPage struct {
	Session FeedSession `json:"session"`
	Slots   []FeedSlot  `json:"slots"`
}
