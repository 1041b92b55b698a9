package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCachedAdSetFreshness(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	set := CachedAdSet{Timestamp: t0, TTL: 3600 * time.Second}

	assert.True(t, set.IsFreshAt(t0))
	assert.True(t, set.IsFreshAt(t0.Add(3599*time.Second)))
	assert.False(t, set.IsFreshAt(t0.Add(3600*time.Second)))
	assert.False(t, set.IsFreshAt(t0.Add(3601*time.Second)))
}

func TestCachedAdSetFreshnessIsMonotonic(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	set := CachedAdSet{Timestamp: t0, TTL: time.Minute}

	transitions := 0
	prev := true
	for s := 0; s <= 180; s++ {
		fresh := set.IsFreshAt(t0.Add(time.Duration(s) * time.Second))
		if fresh != prev {
			transitions++
			assert.False(t, fresh, "freshness flipped back at %ds", s)
		}
		prev = fresh
	}
	assert.Equal(t, 1, transitions)
}

func TestCachedAdSetRemainingTTL(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	set := CachedAdSet{Timestamp: t0, TTL: time.Hour}

	assert.Equal(t, 45*time.Minute, set.RemainingTTL(t0.Add(15*time.Minute)))
	assert.Zero(t, set.RemainingTTL(t0.Add(2*time.Hour)))
}

func TestCachedAdSetPrefix(t *testing.T) {
	set := CachedAdSet{Ads: []AdRecord{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	p := set.Prefix(2)
	assert.Len(t, p.Ads, 2)
	assert.True(t, p.HasMore)
	assert.Len(t, set.Ads, 3)

	p = set.Prefix(3)
	assert.Len(t, p.Ads, 3)
	assert.False(t, p.HasMore)
}

func TestAnalyticsParams(t *testing.T) {
	ad := AdRecord{ID: "x", CTAText: "Install"}
	params := ad.AnalyticsParams()

	assert.Equal(t, "x", params["ad_id"])
	assert.Equal(t, "DISPLAY", params["ad_type"])
	assert.Equal(t, "unknown", params["sponsor"])
	assert.Equal(t, false, params["is_video"])

	ev := NewEvent("e1", EventVideoStart, ad, map[string]any{"video_duration": 30}, time.Time{})
	assert.Equal(t, "native_ad_video_start", ev.Kind.Name())
	assert.Equal(t, 30, ev.Params["video_duration"])
}

func TestTrackedIDSet(t *testing.T) {
	s := NewTrackedIDSet()

	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Has("a"))
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.False(t, s.Has("a"))
	assert.True(t, s.Add("a"))
}
