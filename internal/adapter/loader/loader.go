package loader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"adchain/internal/adapter/cache"
	"adchain/internal/core/domain"
	"adchain/internal/core/port"
	"adchain/internal/metrics"
)

// DefaultPreloadSpacing separates consecutive preload requests so a preload
// pass does not burst the ad server.
const DefaultPreloadSpacing = 5 * time.Second

// DefaultFetchTimeout bounds a shared fetch. It runs detached from the
// callers waiting on it.
const DefaultFetchTimeout = 30 * time.Second

// Config tunes a Loader. Zero values select the defaults.
type Config struct {
	// TTL is the freshness window of fetched batches.
	TTL time.Duration
	// PreloadSpacing is the pause between requests of one preload pass.
	PreloadSpacing time.Duration
	// Shards is the shard count of the cache.
	Shards int
	// FetchTimeout bounds each network fetch.
	FetchTimeout time.Duration
}

// Loader fetches ad batches per placement unit, caches them and forwards
// engagement tracking. It is safe for concurrent use: loads for different
// units run independently and concurrent loads of the same unit and count
// share one fetch. A caller that gives up waiting does not cancel the fetch
// for the others.
type Loader struct {
	fetcher port.AdFetcher
	tracker port.AdTracker
	metrics *metrics.Metrics
	logger  *slog.Logger

	cache *cache.Store
	group singleflight.Group

	ttl          time.Duration
	spacing      time.Duration
	fetchTimeout time.Duration
	now          func() time.Time

	// genMu orders cache writes of finished fetches against clears.
	genMu   sync.Mutex
	epoch   uint64
	cleared map[string]uint64

	preloadMu sync.Mutex
	preload   *preloadRun
}

// New creates a loader. tracker may be nil when the host reports engagement
// elsewhere; m may be nil.
func New(fetcher port.AdFetcher, tracker port.AdTracker, cfg Config, m *metrics.Metrics, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = domain.DefaultCacheTTL
	}
	if cfg.PreloadSpacing <= 0 {
		cfg.PreloadSpacing = DefaultPreloadSpacing
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	return &Loader{
		fetcher:      fetcher,
		tracker:      tracker,
		metrics:      m,
		logger:       logger,
		cache:        cache.NewStore(cfg.Shards),
		ttl:          cfg.TTL,
		spacing:      cfg.PreloadSpacing,
		fetchTimeout: cfg.FetchTimeout,
		now:          time.Now,
		cleared:      make(map[string]uint64),
	}
}

// LoadAds returns count ads for unitID. A fresh cached set holding at least
// count ads is served without touching the network. Otherwise exactly count
// ads are fetched and the unit's cache entry is replaced by the new batch. On
// failure the error is returned and the existing entry is left as it was.
// When ctx ends first LoadAds returns ctx.Err() while a fetch it shares with
// other callers keeps running for them.
func (l *Loader) LoadAds(ctx context.Context, unitID string, count int) (domain.CachedAdSet, error) {
	if unitID == "" || count <= 0 {
		return domain.CachedAdSet{}, fmt.Errorf("%w: unit %q count %d", port.ErrInvalidRequest, unitID, count)
	}
	l.logger.Debug("loading ads", slog.String("unit_id", unitID), slog.Int("count", count))

	if set, ok := l.CachedAds(unitID); ok && len(set.Ads) >= count {
		l.metrics.CacheHit()
		l.logger.Debug("returning cached ads", slog.String("unit_id", unitID), slog.Int("count", count))
		return set.Prefix(count), nil
	}
	l.metrics.CacheMiss()

	gen := l.generation(unitID)
	key := fmt.Sprintf("%s/%d/%d.%d", unitID, count, gen.epoch, gen.unit)
	ch := l.group.DoChan(key, func() (interface{}, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.fetchTimeout)
		defer cancel()
		return l.fetch(fctx, unitID, count, gen)
	})

	select {
	case <-ctx.Done():
		l.logger.Debug("stopped waiting for ads", slog.String("unit_id", unitID), slog.Any("error", ctx.Err()))
		return domain.CachedAdSet{}, fmt.Errorf("load ads for %s: %w", unitID, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return domain.CachedAdSet{}, res.Err
		}
		if res.Shared {
			l.logger.Debug("joined in-flight fetch", slog.String("unit_id", unitID))
		}
		return res.Val.(domain.CachedAdSet).Prefix(count), nil
	}
}

// cacheGen identifies the clears a fetch started after. A fetch only stores
// its batch when no clear of its unit happened since.
type cacheGen struct {
	epoch uint64
	unit  uint64
}

func (l *Loader) generation(unitID string) cacheGen {
	l.genMu.Lock()
	defer l.genMu.Unlock()
	return cacheGen{epoch: l.epoch, unit: l.cleared[unitID]}
}

func (l *Loader) fetch(ctx context.Context, unitID string, count int, gen cacheGen) (domain.CachedAdSet, error) {
	ads, err := l.fetcher.FetchAdBatch(ctx, unitID, count)
	if err != nil {
		l.metrics.Fetch("error")
		l.logger.Error("failed to load ads", slog.String("unit_id", unitID), slog.Any("error", err))
		return domain.CachedAdSet{}, fmt.Errorf("fetch ads for %s: %w", unitID, err)
	}
	if len(ads) == 0 {
		l.metrics.Fetch("empty")
		return domain.CachedAdSet{}, fmt.Errorf("fetch ads for %s: %w", unitID, port.ErrNoAdsAvailable)
	}
	l.metrics.Fetch("ok")

	now := l.now()
	for i := range ads {
		if ads[i].FetchedAt.IsZero() {
			ads[i].FetchedAt = now
		}
	}
	set := domain.CachedAdSet{
		UnitID:    unitID,
		Ads:       ads,
		RequestID: "req_" + uuid.NewString(),
		Timestamp: now,
		TTL:       l.ttl,
	}
	l.logger.Debug("loaded ads from server", slog.String("unit_id", unitID), slog.Int("count", len(ads)))

	l.genMu.Lock()
	defer l.genMu.Unlock()
	if current := (cacheGen{epoch: l.epoch, unit: l.cleared[unitID]}); current != gen {
		l.logger.Debug("cache cleared during fetch", slog.String("unit_id", unitID))
		return set, nil
	}
	l.cache.Put(set)
	return set, nil
}

// LoadAd returns a single ad for unitID.
func (l *Loader) LoadAd(ctx context.Context, unitID string) (domain.AdRecord, error) {
	set, err := l.LoadAds(ctx, unitID, 1)
	if err != nil {
		return domain.AdRecord{}, err
	}
	return set.Ads[0], nil
}

// CachedAds returns the cached set for unitID if it is still fresh. It never
// blocks on a fetch.
func (l *Loader) CachedAds(unitID string) (domain.CachedAdSet, bool) {
	set, ok := l.cache.Get(unitID)
	if !ok || !set.IsFreshAt(l.now()) {
		return domain.CachedAdSet{}, false
	}
	return set, true
}

// ClearCache drops the cached set of unitID. Fetches already in flight for
// the unit still answer their callers but no longer fill the cache, and
// later loads do not join them.
func (l *Loader) ClearCache(unitID string) {
	l.genMu.Lock()
	l.cleared[unitID]++
	l.cache.Delete(unitID)
	l.genMu.Unlock()
	l.logger.Debug("cleared cache for unit", slog.String("unit_id", unitID))
}

// ClearAllCache drops every cached set. In-flight fetches are detached from
// the cache as with ClearCache.
func (l *Loader) ClearAllCache() {
	l.genMu.Lock()
	l.epoch++
	clear(l.cleared)
	l.cache.Clear()
	l.genMu.Unlock()
	l.logger.Debug("cleared ad cache")
}

func (l *Loader) TrackImpression(ctx context.Context, ad domain.AdRecord) {
	if l.tracker != nil {
		l.tracker.TrackImpression(ctx, ad)
	}
}

func (l *Loader) TrackClick(ctx context.Context, ad domain.AdRecord) {
	if l.tracker != nil {
		l.tracker.TrackClick(ctx, ad)
	}
}

func (l *Loader) TrackConversion(ctx context.Context, ad domain.AdRecord) {
	if l.tracker != nil {
		l.tracker.TrackConversion(ctx, ad)
	}
}

func (l *Loader) TrackVideoStart(ctx context.Context, ad domain.AdRecord) {
	if l.tracker != nil {
		l.tracker.TrackVideoStart(ctx, ad)
	}
}

func (l *Loader) TrackVideoComplete(ctx context.Context, ad domain.AdRecord) {
	if l.tracker != nil {
		l.tracker.TrackVideoComplete(ctx, ad)
	}
}

// ResetTracking starts a new tracking session: impressions and conversions
// of ads seen before are reported again.
func (l *Loader) ResetTracking() {
	if l.tracker != nil {
		l.tracker.Reset()
	}
}

// Destroy stops preloading and clears the cache.
func (l *Loader) Destroy() {
	l.StopPreloading()
	l.ClearAllCache()
}
