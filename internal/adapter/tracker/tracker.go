package tracker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"adchain/internal/core/domain"
	"adchain/internal/core/port"
	"adchain/internal/metrics"
)

// DefaultDeliveryTimeout bounds each background report and confirmation
// request.
const DefaultDeliveryTimeout = 10 * time.Second

// Tracker implements port.AdTracker. Impressions and conversions are
// reported at most once per ad id until Reset; clicks are always reported.
// Reporting and tracking-URL confirmation run in the background and their
// failures are only logged.
type Tracker struct {
	reporter port.EventReporter
	pinger   port.TrackingPinger
	metrics  *metrics.Metrics
	logger   *slog.Logger

	// Timeout bounds each background delivery. Zero means
	// DefaultDeliveryTimeout.
	Timeout time.Duration

	now func() time.Time

	mu      sync.Mutex
	tracked map[domain.EventKind]*domain.TrackedIDSet

	wg sync.WaitGroup
}

// New creates a tracker. pinger may be nil when tracking URLs should not be
// confirmed; m may be nil.
func New(reporter port.EventReporter, pinger port.TrackingPinger, m *metrics.Metrics, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		reporter: reporter,
		pinger:   pinger,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
		tracked: map[domain.EventKind]*domain.TrackedIDSet{
			domain.EventImpression: domain.NewTrackedIDSet(),
			domain.EventClick:      domain.NewTrackedIDSet(),
			domain.EventConversion: domain.NewTrackedIDSet(),
		},
	}
}

func (t *Tracker) TrackImpression(ctx context.Context, ad domain.AdRecord) {
	if !t.markOnce(domain.EventImpression, ad.ID) {
		t.logger.Debug("impression already tracked", slog.String("ad_id", ad.ID))
		return
	}
	t.dispatch(ctx, domain.EventImpression, ad, nil)
}

// TrackClick reports every click. Repeat clicks are meaningful engagement and
// are only noted in the log.
func (t *Tracker) TrackClick(ctx context.Context, ad domain.AdRecord) {
	if !t.markOnce(domain.EventClick, ad.ID) {
		t.logger.Debug("ad clicked before", slog.String("ad_id", ad.ID))
	}
	t.dispatch(ctx, domain.EventClick, ad, nil)
}

func (t *Tracker) TrackConversion(ctx context.Context, ad domain.AdRecord) {
	if !t.markOnce(domain.EventConversion, ad.ID) {
		t.logger.Debug("conversion already tracked", slog.String("ad_id", ad.ID))
		return
	}
	t.dispatch(ctx, domain.EventConversion, ad, nil)
}

// TrackVideoStart is a no-op for ads that are not videos.
func (t *Tracker) TrackVideoStart(ctx context.Context, ad domain.AdRecord) {
	if !ad.IsVideo {
		return
	}
	t.dispatch(ctx, domain.EventVideoStart, ad, map[string]any{"video_duration": ad.VideoDuration})
}

// TrackVideoComplete is a no-op for ads that are not videos.
func (t *Tracker) TrackVideoComplete(ctx context.Context, ad domain.AdRecord) {
	if !ad.IsVideo {
		return
	}
	t.dispatch(ctx, domain.EventVideoComplete, ad, map[string]any{"video_duration": ad.VideoDuration})
}

// Reset forgets every tracked id.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, set := range t.tracked {
		set.Clear()
	}
}

// Wait blocks until all background deliveries have finished.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// markOnce records id for kind and reports whether it is the first time.
func (t *Tracker) markOnce(kind domain.EventKind, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tracked[kind].Add(id)
}

func (t *Tracker) dispatch(ctx context.Context, kind domain.EventKind, ad domain.AdRecord, extra map[string]any) {
	event := domain.NewEvent(uuid.NewString(), kind, ad, extra, t.now().UTC())
	t.metrics.Event(string(kind))
	t.logger.Debug("tracked event", slog.String("kind", string(kind)), slog.String("ad_id", ad.ID))

	timeout := t.Timeout
	if timeout <= 0 {
		timeout = DefaultDeliveryTimeout
	}
	// deliveries outlive the caller's request
	base := context.WithoutCancel(ctx)
	trackingURL := ad.TrackingURL(kind)

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(base, timeout)
		defer cancel()

		if err := t.reporter.ReportEvent(ctx, event); err != nil {
			t.logger.Error("report event failed",
				slog.String("event", kind.Name()),
				slog.String("ad_id", ad.ID),
				slog.Any("error", err))
		}
		if trackingURL == "" || t.pinger == nil {
			return
		}
		if err := t.pinger.Ping(ctx, trackingURL); err != nil {
			t.logger.Error("tracking request failed",
				slog.String("url", trackingURL),
				slog.Any("error", err))
			return
		}
		t.logger.Debug("tracking request sent", slog.String("url", trackingURL))
	}()
}
