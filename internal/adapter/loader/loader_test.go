package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adchain/internal/adapter/listadapter"
	"adchain/internal/adapter/tracker"
	"adchain/internal/core/domain"
	"adchain/internal/core/port"
	"adchain/internal/core/port/mocks"
)

type nopTracker struct {
	mu     sync.Mutex
	events []string
	resets int
}

func (n *nopTracker) record(kind, id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, kind+":"+id)
}

func (n *nopTracker) TrackImpression(_ context.Context, ad domain.AdRecord) { n.record("impression", ad.ID) }
func (n *nopTracker) TrackClick(_ context.Context, ad domain.AdRecord)      { n.record("click", ad.ID) }
func (n *nopTracker) TrackConversion(_ context.Context, ad domain.AdRecord) { n.record("conversion", ad.ID) }
func (n *nopTracker) TrackVideoStart(_ context.Context, ad domain.AdRecord) { n.record("video_start", ad.ID) }
func (n *nopTracker) TrackVideoComplete(_ context.Context, ad domain.AdRecord) {
	n.record("video_complete", ad.ID)
}
func (n *nopTracker) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resets++
}

func batch(prefix string, n int) []domain.AdRecord {
	ads := make([]domain.AdRecord, n)
	for i := range ads {
		ads[i] = domain.AdRecord{ID: fmt.Sprintf("%s-%d", prefix, i)}
	}
	return ads
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLoader(t *testing.T, fetcher port.AdFetcher) (*Loader, *clock) {
	t.Helper()
	clk := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := New(fetcher, &nopTracker{}, Config{TTL: time.Hour, PreloadSpacing: time.Millisecond}, nil, nil)
	l.now = clk.Now
	return l, clk
}

// TestLoadAdsServesFreshCache ensures a fresh cached set large enough for the
// request is served as a prefix without a second fetch.
func TestLoadAdsServesFreshCache(t *testing.T) {
	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 5).Return(batch("a", 5), nil).Once()

	l, _ := newTestLoader(t, fetcher)

	first, err := l.LoadAds(context.Background(), "unit", 5)
	require.NoError(t, err)
	require.Len(t, first.Ads, 5)
	assert.NotEmpty(t, first.RequestID)
	assert.False(t, first.HasMore)

	second, err := l.LoadAds(context.Background(), "unit", 3)
	require.NoError(t, err)
	assert.Equal(t, first.Ads[:3], second.Ads)
	assert.Equal(t, first.RequestID, second.RequestID)
	assert.True(t, second.HasMore)
}

func TestLoadAdsRefetchesWhenCacheTooSmall(t *testing.T) {
	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 2).Return(batch("a", 2), nil).Once()
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 4).Return(batch("b", 4), nil).Once()

	l, _ := newTestLoader(t, fetcher)

	_, err := l.LoadAds(context.Background(), "unit", 2)
	require.NoError(t, err)
	set, err := l.LoadAds(context.Background(), "unit", 4)
	require.NoError(t, err)
	assert.Equal(t, "b-0", set.Ads[0].ID)

	cached, ok := l.CachedAds("unit")
	require.True(t, ok)
	assert.Len(t, cached.Ads, 4)
}

func TestLoadAdsRefetchesStaleCache(t *testing.T) {
	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 2).Return(batch("a", 2), nil).Once()
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 2).Return(batch("b", 2), nil).Once()

	l, clk := newTestLoader(t, fetcher)

	_, err := l.LoadAds(context.Background(), "unit", 2)
	require.NoError(t, err)

	clk.Advance(3599 * time.Second)
	_, ok := l.CachedAds("unit")
	assert.True(t, ok)

	clk.Advance(2 * time.Second)
	_, ok = l.CachedAds("unit")
	assert.False(t, ok)

	set, err := l.LoadAds(context.Background(), "unit", 2)
	require.NoError(t, err)
	assert.Equal(t, "b-0", set.Ads[0].ID)
}

// TestFailedLoadKeepsPreviousSet ensures a failing fetch leaves the cached
// set of the unit in place.
func TestFailedLoadKeepsPreviousSet(t *testing.T) {
	transportErr := &port.TransportError{StatusCode: 503, Message: "unavailable"}
	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 2).Return(batch("a", 2), nil).Once()
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 5).Return(nil, transportErr).Once()

	l, _ := newTestLoader(t, fetcher)

	prior, err := l.LoadAds(context.Background(), "unit", 2)
	require.NoError(t, err)

	_, err = l.LoadAds(context.Background(), "unit", 5)
	var te *port.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 503, te.StatusCode)

	cached, ok := l.CachedAds("unit")
	require.True(t, ok)
	assert.Equal(t, prior.RequestID, cached.RequestID)
	assert.Equal(t, prior.Ads, cached.Ads)
}

// TestExpiredSetOutlivesFailedRefetch ensures the store keeps a unit's set
// past its TTL while freshness is judged by the loader's clock.
func TestExpiredSetOutlivesFailedRefetch(t *testing.T) {
	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 2).Return(batch("a", 2), nil).Once()
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 2).Return(nil, errors.New("down")).Once()

	l, clk := newTestLoader(t, fetcher)

	prior, err := l.LoadAds(context.Background(), "unit", 2)
	require.NoError(t, err)

	clk.Advance(2 * time.Hour)
	_, err = l.LoadAds(context.Background(), "unit", 2)
	require.Error(t, err)

	_, ok := l.CachedAds("unit")
	assert.False(t, ok)
	kept, ok := l.cache.Get("unit")
	require.True(t, ok)
	assert.Equal(t, prior.RequestID, kept.RequestID)
}

func TestEmptyBatchIsNoAdsAvailable(t *testing.T) {
	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 3).Return([]domain.AdRecord{}, nil).Once()

	l, _ := newTestLoader(t, fetcher)

	_, err := l.LoadAds(context.Background(), "unit", 3)
	require.ErrorIs(t, err, port.ErrNoAdsAvailable)
	_, ok := l.CachedAds("unit")
	assert.False(t, ok)
}

func TestLoadAdsRejectsInvalidRequest(t *testing.T) {
	l, _ := newTestLoader(t, mocks.NewMockAdFetcher(t))

	_, err := l.LoadAds(context.Background(), "", 3)
	assert.ErrorIs(t, err, port.ErrInvalidRequest)
	_, err = l.LoadAds(context.Background(), "unit", 0)
	assert.ErrorIs(t, err, port.ErrInvalidRequest)
}

func TestClearCacheForcesFetch(t *testing.T) {
	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, mock.Anything, 1).Return(batch("a", 1), nil).Times(4)

	l, _ := newTestLoader(t, fetcher)
	ctx := context.Background()

	_, err := l.LoadAds(ctx, "u1", 1)
	require.NoError(t, err)
	l.ClearCache("u1")
	_, err = l.LoadAds(ctx, "u1", 1)
	require.NoError(t, err)

	ad, err := l.LoadAd(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "a-0", ad.ID)

	l.ClearAllCache()
	_, ok := l.CachedAds("u2")
	assert.False(t, ok)
	_, err = l.LoadAds(ctx, "u2", 1)
	require.NoError(t, err)
}

// TestLoadsForDifferentUnitsDoNotBlock ensures a slow fetch for one unit does
// not hold up another unit.
func TestLoadsForDifferentUnitsDoNotBlock(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "slow", 1).
		RunAndReturn(func(context.Context, string, int) ([]domain.AdRecord, error) {
			close(entered)
			<-release
			return batch("slow", 1), nil
		}).Once()
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "fast", 1).Return(batch("fast", 1), nil).Once()

	l, _ := newTestLoader(t, fetcher)

	done := make(chan error, 1)
	go func() {
		_, err := l.LoadAds(context.Background(), "slow", 1)
		done <- err
	}()
	<-entered

	set, err := l.LoadAds(context.Background(), "fast", 1)
	require.NoError(t, err)
	assert.Equal(t, "fast-0", set.Ads[0].ID)

	_, ok := l.CachedAds("fast")
	assert.True(t, ok)

	close(release)
	require.NoError(t, <-done)
}

// TestConcurrentLoadsShareFetch ensures overlapping loads of one unit result
// in a single fetch.
func TestConcurrentLoadsShareFetch(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 2).
		RunAndReturn(func(context.Context, string, int) ([]domain.AdRecord, error) {
			close(entered)
			<-release
			return batch("a", 2), nil
		}).Once()

	l, _ := newTestLoader(t, fetcher)

	var wg sync.WaitGroup
	results := make([]domain.CachedAdSet, 5)
	errs := make([]error, 5)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = l.LoadAds(context.Background(), "unit", 2)
	}()
	<-entered
	for i := 1; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = l.LoadAds(context.Background(), "unit", 2)
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0].RequestID, results[i].RequestID)
	}
}

// TestCancelledCallerDoesNotFailSharedFetch ensures a caller that gives up
// on a shared fetch leaves it running for the callers that joined it.
func TestCancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 2).
		RunAndReturn(func(ctx context.Context, _ string, _ int) ([]domain.AdRecord, error) {
			close(entered)
			<-release
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return batch("a", 2), nil
		}).Once()

	l, _ := newTestLoader(t, fetcher)

	first, cancel := context.WithCancel(context.Background())
	defer cancel()
	firstErr := make(chan error, 1)
	go func() {
		_, err := l.LoadAds(first, "unit", 2)
		firstErr <- err
	}()
	<-entered

	type result struct {
		set domain.CachedAdSet
		err error
	}
	second := make(chan result, 1)
	go func() {
		set, err := l.LoadAds(context.Background(), "unit", 2)
		second <- result{set, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	require.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, "a-0", res.set.Ads[0].ID)

	cached, ok := l.CachedAds("unit")
	require.True(t, ok)
	assert.Equal(t, res.set.RequestID, cached.RequestID)
}

// TestClearCacheDuringFetchSkipsWriteBack ensures a fetch that was in flight
// when the unit was cleared neither refills the cache nor serves later loads.
func TestClearCacheDuringFetchSkipsWriteBack(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 2).
		RunAndReturn(func(context.Context, string, int) ([]domain.AdRecord, error) {
			close(entered)
			<-release
			return batch("old", 2), nil
		}).Once()
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 2).Return(batch("new", 2), nil).Once()

	l, _ := newTestLoader(t, fetcher)

	stale := make(chan error, 1)
	go func() {
		set, err := l.LoadAds(context.Background(), "unit", 2)
		if err == nil && set.Ads[0].ID != "old-0" {
			err = fmt.Errorf("unexpected batch %s", set.Ads[0].ID)
		}
		stale <- err
	}()
	<-entered

	l.ClearCache("unit")
	set, err := l.LoadAds(context.Background(), "unit", 2)
	require.NoError(t, err)
	assert.Equal(t, "new-0", set.Ads[0].ID)

	close(release)
	require.NoError(t, <-stale)

	cached, ok := l.CachedAds("unit")
	require.True(t, ok)
	assert.Equal(t, "new-0", cached.Ads[0].ID)
}

func TestClearAllCacheDuringFetchSkipsWriteBack(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 1).
		RunAndReturn(func(context.Context, string, int) ([]domain.AdRecord, error) {
			close(entered)
			<-release
			return batch("old", 1), nil
		}).Once()

	l, _ := newTestLoader(t, fetcher)

	done := make(chan error, 1)
	go func() {
		_, err := l.LoadAds(context.Background(), "unit", 1)
		done <- err
	}()
	<-entered

	l.ClearAllCache()
	close(release)
	require.NoError(t, <-done)

	_, ok := l.CachedAds("unit")
	assert.False(t, ok)
}

func TestTrackingIsForwarded(t *testing.T) {
	tr := &nopTracker{}
	l := New(mocks.NewMockAdFetcher(t), tr, Config{}, nil, nil)
	ad := domain.AdRecord{ID: "x"}
	ctx := context.Background()

	l.TrackImpression(ctx, ad)
	l.TrackClick(ctx, ad)
	l.TrackConversion(ctx, ad)
	l.TrackVideoStart(ctx, ad)
	l.TrackVideoComplete(ctx, ad)

	assert.Equal(t, []string{"impression:x", "click:x", "conversion:x", "video_start:x", "video_complete:x"}, tr.events)

	l.ResetTracking()
	assert.Equal(t, 1, tr.resets)
}

func TestTrackingWithoutTracker(t *testing.T) {
	l := New(mocks.NewMockAdFetcher(t), nil, Config{}, nil, nil)
	ad := domain.AdRecord{ID: "x"}

	assert.NotPanics(t, func() {
		l.TrackImpression(context.Background(), ad)
		l.TrackClick(context.Background(), ad)
		l.ResetTracking()
	})
}

type itemList []string

func (l itemList) Count(int) int          { return len(l) }
func (l itemList) ItemAt(_, i int) string { return l[i] }

// TestAdapterRefreshReportsImpressionsAgain drives a list adapter straight
// from a loader: after a refresh the same ad is reported to analytics again.
func TestAdapterRefreshReportsImpressionsAgain(t *testing.T) {
	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 10).Return(batch("a", 10), nil).Once()

	reporter := mocks.NewMockEventReporter(t)
	reporter.EXPECT().ReportEvent(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Kind == domain.EventImpression && e.AdID == "a-0"
	})).Return(nil).Times(2)

	tr := tracker.New(reporter, nil, nil, nil)
	l := New(fetcher, tr, Config{TTL: time.Hour}, nil, nil)

	var callbacks atomic.Int32
	a, err := listadapter.New[string](itemList(make([]string, 20)), l, nil, listadapter.DefaultConfig("unit"),
		listadapter.Callbacks{OnAdImpression: func(domain.AdRecord, int) { callbacks.Add(1) }}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, a.LoadAds(ctx))
	require.True(t, a.ItemAt(ctx, listadapter.AdSection, 3).IsAd())
	a.ItemAt(ctx, listadapter.AdSection, 3)

	require.NoError(t, a.RefreshAds(ctx))
	a.ItemAt(ctx, listadapter.AdSection, 3)

	tr.Wait()
	assert.Equal(t, int32(2), callbacks.Load())
}

// TestPreloadingSurvivesErrors ensures a failing unit is logged and the
// schedule keeps loading the others.
func TestPreloadingSurvivesErrors(t *testing.T) {
	goodLoaded := make(chan struct{}, 16)

	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "bad", 2).Return(nil, errors.New("boom"))
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "good", 2).
		RunAndReturn(func(context.Context, string, int) ([]domain.AdRecord, error) {
			goodLoaded <- struct{}{}
			return batch("g", 2), nil
		})

	l, clk := newTestLoader(t, fetcher)
	requests := []domain.AdRequest{{UnitID: "bad", Count: 2}, {UnitID: "good", Count: 2}}

	l.StartPreloading(context.Background(), requests, 10*time.Millisecond)
	defer l.StopPreloading()

	select {
	case <-goodLoaded:
	case <-time.After(time.Second):
		t.Fatal("good unit was not preloaded")
	}
	_, ok := l.CachedAds("good")
	assert.True(t, ok)

	// once stale, the next pass fetches the unit again
	clk.Advance(2 * time.Hour)
	select {
	case <-goodLoaded:
	case <-time.After(time.Second):
		t.Fatal("good unit was not preloaded again")
	}
}

// TestConcurrentStartPreloadingKeepsOneSchedule ensures racing starts leave a
// single schedule behind, so nothing preloads once it is stopped.
func TestConcurrentStartPreloadingKeepsOneSchedule(t *testing.T) {
	var fetches atomic.Int32
	fetcher := mocks.NewMockAdFetcher(t)
	fetcher.EXPECT().FetchAdBatch(mock.Anything, "unit", 1).
		RunAndReturn(func(context.Context, string, int) ([]domain.AdRecord, error) {
			fetches.Add(1)
			return nil, errors.New("down")
		}).Maybe()

	l, _ := newTestLoader(t, fetcher)
	requests := []domain.AdRequest{{UnitID: "unit", Count: 1}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.StartPreloading(context.Background(), requests, time.Millisecond)
		}()
	}
	wg.Wait()
	l.StopPreloading()

	time.Sleep(20 * time.Millisecond)
	settled := fetches.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, fetches.Load())
}

func TestStopPreloadingIsIdempotent(t *testing.T) {
	l, _ := newTestLoader(t, mocks.NewMockAdFetcher(t))
	l.StopPreloading()

	l.StartPreloading(context.Background(), nil, time.Millisecond)
	l.StopPreloading()
	l.StopPreloading()
	l.Destroy()
}
