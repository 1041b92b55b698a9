package loader

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"adchain/internal/core/domain"
)

// DefaultPreloadInterval is the period between preload passes.
const DefaultPreloadInterval = 5 * time.Minute

type preloadRun struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// PreloadAds loads req into the cache. Failures are logged, not returned.
func (l *Loader) PreloadAds(ctx context.Context, req domain.AdRequest) {
	l.logger.Debug("preloading ads", slog.String("unit_id", req.UnitID))
	if _, err := l.LoadAds(ctx, req.UnitID, req.Count); err != nil {
		l.logger.Error("failed to preload ads", slog.String("unit_id", req.UnitID), slog.Any("error", err))
		return
	}
	l.logger.Debug("preloaded ads", slog.String("unit_id", req.UnitID))
}

// StartPreloading keeps the cache warm for requests: one pass runs
// immediately and then every interval until StopPreloading or ctx is done.
// Requests within a pass are spaced apart. A running schedule is replaced.
func (l *Loader) StartPreloading(ctx context.Context, requests []domain.AdRequest, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPreloadInterval
	}
	requests = slices.Clone(requests)

	ctx, cancel := context.WithCancel(ctx)
	run := &preloadRun{cancel: cancel, done: make(chan struct{})}

	l.preloadMu.Lock()
	prev := l.preload
	l.preload = run
	l.preloadMu.Unlock()
	l.stopRun(prev)

	go func() {
		defer close(run.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			l.preloadPass(ctx, requests)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	l.logger.Debug("started preloading", slog.Int("units", len(requests)), slog.Duration("interval", interval))
}

// StopPreloading cancels the preload schedule and waits for it to exit.
func (l *Loader) StopPreloading() {
	l.preloadMu.Lock()
	run := l.preload
	l.preload = nil
	l.preloadMu.Unlock()
	l.stopRun(run)
}

func (l *Loader) stopRun(run *preloadRun) {
	if run == nil {
		return
	}
	run.cancel()
	<-run.done
	l.logger.Debug("stopped preloading")
}

func (l *Loader) preloadPass(ctx context.Context, requests []domain.AdRequest) {
	for i, req := range requests {
		if i > 0 {
			timer := time.NewTimer(l.spacing)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
		if ctx.Err() != nil {
			return
		}
		l.PreloadAds(ctx, req)
	}
}
