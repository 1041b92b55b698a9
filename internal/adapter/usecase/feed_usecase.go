package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"adchain/internal/adapter/listadapter"
	"adchain/internal/core/domain"
	"adchain/internal/core/port"
)

// MaxPageSize caps the number of slots returned by Items.
const MaxPageSize = 100

// AdSource is the shared ad loader. Feed sessions read ads through it so
// that every session hits the same cache.
type AdSource interface {
	LoadAds(ctx context.Context, unitID string, count int) (domain.CachedAdSet, error)
}

// TrackerFactory creates the engagement tracker of a new session.
type TrackerFactory func() port.AdTracker

// FeedUseCase implements port.FeedUseCase. Each session owns a list adapter
// over a snapshot of the category's feed items and its own tracker, so
// impressions are deduplicated per session.
type FeedUseCase struct {
	feeds      port.FeedRepository
	events     port.EventRepository
	ads        AdSource
	newTracker TrackerFactory
	placement  listadapter.Config
	logger     *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewFeedUseCase creates a use case. placement configures ad placement for
// every session.
func NewFeedUseCase(
	feeds port.FeedRepository,
	events port.EventRepository,
	ads AdSource,
	newTracker TrackerFactory,
	placement listadapter.Config,
	logger *slog.Logger,
) *FeedUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedUseCase{
		feeds:      feeds,
		events:     events,
		ads:        ads,
		newTracker: newTracker,
		placement:  placement,
		logger:     logger,
		sessions:   make(map[string]*session),
	}
}

type session struct {
	id       string
	category string
	source   *feedSource
	adapter  *listadapter.Adapter[domain.FeedItem]
	tracker  port.AdTracker
	revision atomic.Int64
}

func (s *session) describe() *port.FeedSession {
	return &port.FeedSession{
		ID:       s.id,
		Category: s.category,
		Count:    s.adapter.Count(listadapter.AdSection),
		Ads:      s.adapter.AdCount(),
		Revision: s.revision.Load(),
	}
}

// sessionLoader serves ads from the shared source and reports engagement to
// the session's tracker.
type sessionLoader struct {
	ads     AdSource
	tracker port.AdTracker
}

func (l sessionLoader) LoadAds(ctx context.Context, unitID string, count int) (domain.CachedAdSet, error) {
	return l.ads.LoadAds(ctx, unitID, count)
}

func (l sessionLoader) TrackImpression(ctx context.Context, ad domain.AdRecord) {
	l.tracker.TrackImpression(ctx, ad)
}

func (l sessionLoader) TrackClick(ctx context.Context, ad domain.AdRecord) {
	l.tracker.TrackClick(ctx, ad)
}

func (l sessionLoader) ResetTracking() {
	l.tracker.Reset()
}

func (u *FeedUseCase) OpenFeed(ctx context.Context, category string) (*port.FeedSession, error) {
	items, err := u.feeds.ListFeedItems(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list feed items: %w", err)
	}

	s := &session{
		id:       uuid.NewString(),
		category: category,
		source:   newFeedSource(items, u.placement.DefaultItemSize),
		tracker:  u.newTracker(),
	}
	logger := u.logger.With(slog.String("session", s.id))
	s.adapter, err = listadapter.New[domain.FeedItem](
		s.source,
		sessionLoader{ads: u.ads, tracker: s.tracker},
		port.ListNotifierFunc(func() { s.revision.Add(1) }),
		u.placement,
		listadapter.Callbacks{
			OnAdClick: func(ad domain.AdRecord, position int) {
				logger.Info("ad clicked", slog.String("ad_id", ad.ID), slog.Int("position", position))
			},
		},
		logger,
	)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.sessions[s.id] = s
	u.mu.Unlock()

	if err = u.loadAds(s.adapter.LoadAds(ctx)); err != nil {
		return nil, err
	}
	logger.Info("feed opened",
		slog.String("category", category),
		slog.Int("items", len(items)),
		slog.Int("ads", s.adapter.AdCount()))
	return s.describe(), nil
}

// loadAds filters the result of an adapter load. A failed load only leaves
// the feed without new ads; the adapter has already logged it.
func (u *FeedUseCase) loadAds(err error) error {
	if errors.Is(err, port.ErrAdapterBusy) || errors.Is(err, port.ErrAdapterDestroyed) {
		return err
	}
	return nil
}

func (u *FeedUseCase) Items(ctx context.Context, sessionID string, offset, limit int) (*port.FeedPage, error) {
	if offset < 0 || limit <= 0 {
		return nil, fmt.Errorf("%w: offset %d, limit %d", port.ErrInvalidRequest, offset, limit)
	}
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	limit = min(limit, MaxPageSize)

	count := s.adapter.Count(listadapter.AdSection)
	end := min(offset+limit, count)
	slots := make([]port.FeedSlot, 0, max(end-offset, 0))
	for i := offset; i < end; i++ {
		slots = append(slots, toFeedSlot(s, s.adapter.ItemAt(ctx, listadapter.AdSection, i)))
	}
	return &port.FeedPage{Session: *s.describe(), Slots: slots}, nil
}

func (u *FeedUseCase) Select(ctx context.Context, sessionID string, position int) (*port.FeedSlot, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	if position < 0 || position >= s.adapter.Count(listadapter.AdSection) {
		return nil, fmt.Errorf("%w: position %d out of range", port.ErrInvalidRequest, position)
	}

	size := s.adapter.SizeOf(listadapter.AdSection, position)
	if ad, ok := s.adapter.Select(ctx, listadapter.AdSection, position); ok {
		return &port.FeedSlot{Position: position, Ad: toAdView(ad), Size: size}, nil
	}
	item, ok := s.source.item(s.adapter.OriginalIndexOf(position))
	if !ok {
		return nil, fmt.Errorf("%w: position %d out of range", port.ErrInvalidRequest, position)
	}
	return &port.FeedSlot{Position: position, Item: &item, Size: size}, nil
}

func (u *FeedUseCase) Refresh(ctx context.Context, sessionID string) (*port.FeedSession, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err = u.loadAds(s.adapter.RefreshAds(ctx)); err != nil {
		return nil, err
	}
	return s.describe(), nil
}

func (u *FeedUseCase) Close(_ context.Context, sessionID string) error {
	u.mu.Lock()
	s, ok := u.sessions[sessionID]
	delete(u.sessions, sessionID)
	u.mu.Unlock()
	if !ok {
		return port.ErrSessionNotFound
	}
	s.adapter.Destroy()
	u.logger.Info("feed closed", slog.String("session", sessionID))
	return nil
}

func (u *FeedUseCase) TrackConversion(ctx context.Context, sessionID, adID string) error {
	s, err := u.session(sessionID)
	if err != nil {
		return err
	}
	ad, ok := s.adapter.FindAd(adID)
	if !ok {
		return port.ErrAdNotFound
	}
	s.tracker.TrackConversion(ctx, ad)
	return nil
}

// GetStats returns aggregated engagement for a period.
func (u *FeedUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.events.GetStats(ctx, req)
}

// Shutdown destroys every session and waits for their pending event
// deliveries.
func (u *FeedUseCase) Shutdown() {
	u.mu.Lock()
	sessions := u.sessions
	u.sessions = make(map[string]*session)
	u.mu.Unlock()

	for _, s := range sessions {
		s.adapter.Destroy()
		if w, ok := s.tracker.(interface{ Wait() }); ok {
			w.Wait()
		}
	}
}

func (u *FeedUseCase) session(id string) (*session, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	s, ok := u.sessions[id]
	if !ok {
		return nil, port.ErrSessionNotFound
	}
	return s, nil
}

func toFeedSlot(s *session, slot listadapter.Slot[domain.FeedItem]) port.FeedSlot {
	out := port.FeedSlot{
		Position: slot.Position,
		Size:     s.adapter.SizeOf(listadapter.AdSection, slot.Position),
	}
	if slot.IsAd() {
		out.Ad = toAdView(*slot.Ad)
	} else {
		item := slot.Item
		out.Item = &item
	}
	return out
}

func toAdView(ad domain.AdRecord) *port.AdView {
	return &port.AdView{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		ImageURL:    ad.ImageURL,
		IconURL:     ad.IconURL,
		CTAText:     ad.CTAText,
		LandingURL:  ad.LandingURL,
		SponsorName: ad.SponsorName,
		Metadata:    ad.Metadata,
	}
}
