package domain

import "time"

// DefaultCacheTTL is how long a fetched batch stays fresh unless configured
// otherwise.
const DefaultCacheTTL = time.Hour

// CachedAdSet is the cached batch for one placement unit. A set is replaced
// as a whole when the unit is refreshed; it is never mutated in place.
type CachedAdSet struct {
	UnitID    string
	Ads       []AdRecord
	RequestID string
	Timestamp time.Time
	TTL       time.Duration
	// HasMore is set on responses served from a cache holding more ads than
	// were requested.
	HasMore bool
}

// IsFresh reports whether the set is still within its time-to-live.
func (s CachedAdSet) IsFresh() bool {
	return s.IsFreshAt(time.Now())
}

// IsFreshAt reports whether the set is within its time-to-live at now.
func (s CachedAdSet) IsFreshAt(now time.Time) bool {
	return now.Sub(s.Timestamp) < s.TTL
}

// RemainingTTL returns the time left until the set goes stale, never negative.
func (s CachedAdSet) RemainingTTL(now time.Time) time.Duration {
	left := s.TTL - now.Sub(s.Timestamp)
	if left < 0 {
		return 0
	}
	return left
}

// Prefix returns a copy of the set holding at most n ads. HasMore is set when
// ads were left out.
func (s CachedAdSet) Prefix(n int) CachedAdSet {
	out := s
	if n < len(s.Ads) {
		out.Ads = s.Ads[:n:n]
		out.HasMore = true
	} else {
		out.HasMore = false
	}
	return out
}
