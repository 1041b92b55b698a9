package domain

import (
	"time"
)

// EventKind names an engagement event reported for an ad.
type EventKind string

const (
	EventImpression    EventKind = "impression"
	EventClick         EventKind = "click"
	EventConversion    EventKind = "conversion"
	EventVideoStart    EventKind = "video_start"
	EventVideoComplete EventKind = "video_complete"
)

// Name returns the analytics event name for the kind.
func (k EventKind) Name() string {
	return "native_ad_" + string(k)
}

// Event is a record of an engagement event forwarded to analytics.
type Event struct {
	ID        string
	Kind      EventKind
	AdID      string
	Params    map[string]any
	CreatedAt time.Time
}

// NewEvent builds the analytics event for ad. extra is merged over the ad's
// own analytics parameters.
func NewEvent(id string, kind EventKind, ad AdRecord, extra map[string]any, now time.Time) Event {
	params := ad.AnalyticsParams()
	for k, v := range extra {
		params[k] = v
	}
	return Event{
		ID:        id,
		Kind:      kind,
		AdID:      ad.ID,
		Params:    params,
		CreatedAt: now,
	}
}
