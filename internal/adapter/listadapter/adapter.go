// Package listadapter splices ads into a host-owned ordered list.
//
// An Adapter wraps the host's data source and presents an augmented list in
// which ads sit at positions chosen by domain.DistributeAds. Every query the
// host list view makes goes through the adapter in augmented coordinates; the
// adapter answers ad slots itself and translates everything else back to the
// host's own index space before delegating.
package listadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"adchain/internal/core/domain"
	"adchain/internal/core/port"
)

// AdSection is the section that receives ads. Other sections are delegated
// to the host untouched.
const AdSection = 0

// State is the load state of an adapter.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config places ads within the host list.
type Config struct {
	UnitID          string
	AdInterval      int
	FirstAdPosition int
	PreloadCount    int
	// AdSize is reported for every ad slot.
	AdSize domain.Size
	// DefaultItemSize is reported for host items the host does not size.
	DefaultItemSize domain.Size
}

// DefaultConfig returns the placement used when a host does not choose one:
// the first ad before the fourth item, then one every five items, ten ads
// requested per load.
func DefaultConfig(unitID string) Config {
	return Config{
		UnitID:          unitID,
		AdInterval:      5,
		FirstAdPosition: 3,
		PreloadCount:    10,
	}
}

func (c Config) validate() error {
	var errs []error
	if c.UnitID == "" {
		errs = append(errs, errors.New("unit id is required"))
	}
	if c.AdInterval <= 0 {
		errs = append(errs, fmt.Errorf("ad interval must be positive, got %d", c.AdInterval))
	}
	if c.FirstAdPosition < 0 {
		errs = append(errs, fmt.Errorf("first ad position must not be negative, got %d", c.FirstAdPosition))
	}
	if c.PreloadCount <= 0 {
		errs = append(errs, fmt.Errorf("preload count must be positive, got %d", c.PreloadCount))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", port.ErrInvalidRequest, err)
	}
	return nil
}

// Callbacks are invoked outside the adapter's lock. Any of them may be nil.
type Callbacks struct {
	OnAdClick      func(ad domain.AdRecord, position int)
	OnAdImpression func(ad domain.AdRecord, position int)
	OnLoadError    func(err error)
}

// Slot is one entry of the augmented list: an ad or a host item.
type Slot[T any] struct {
	Position int
	Ad       *domain.AdRecord
	Item     T
	// OriginalIndex is the host index of Item; -1 for ads.
	OriginalIndex int
}

func (s Slot[T]) IsAd() bool {
	return s.Ad != nil
}

// Adapter presents host items of type T with ads spliced in. All state lives
// behind one mutex: loads mutate it only after the loader returns, so reads
// during a load see the last populated state.
type Adapter[T any] struct {
	host      port.DataSource[T]
	loader    port.AdLoader
	notifier  port.ListNotifier
	cfg       Config
	callbacks Callbacks
	logger    *slog.Logger

	mu        sync.RWMutex
	state     State
	slots     domain.AdSlotMap
	loadedAds []domain.AdRecord
	impressed *domain.TrackedIDSet
	// generation changes on refresh and destroy; loads started under an
	// older generation are discarded.
	generation uint64
	destroyed  bool
	lastErr    error
}

// New wraps host. notifier may be nil. No ads are requested until LoadAds.
func New[T any](host port.DataSource[T], loader port.AdLoader, notifier port.ListNotifier, cfg Config, callbacks Callbacks, logger *slog.Logger) (*Adapter[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = port.ListNotifierFunc(func() {})
	}
	return &Adapter[T]{
		host:      host,
		loader:    loader,
		notifier:  notifier,
		cfg:       cfg,
		callbacks: callbacks,
		logger:    logger.With(slog.String("unit_id", cfg.UnitID)),
		impressed: domain.NewTrackedIDSet(),
	}, nil
}

// LoadAds requests PreloadCount ads, appends the new ones to the loaded ads,
// redistributes them over the host list and asks the host to redraw. It
// returns port.ErrAdapterBusy while another load is in flight. On failure
// the previous ads stay in place and the host is not notified.
func (a *Adapter[T]) LoadAds(ctx context.Context) error {
	a.mu.Lock()
	gen, prev, err := a.beginLoadLocked()
	a.mu.Unlock()
	if err != nil {
		return err
	}
	return a.finishLoad(ctx, gen, prev)
}

// RefreshAds drops every ad and impression record, starts a new tracking
// session in the loader, then loads again. A load still in flight is
// superseded and its result discarded.
func (a *Adapter[T]) RefreshAds(ctx context.Context) error {
	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return port.ErrAdapterDestroyed
	}
	a.generation++
	a.resetLocked()
	gen, prev, err := a.beginLoadLocked()
	a.mu.Unlock()
	a.loader.ResetTracking()
	if err != nil {
		return err
	}
	a.notifier.ReloadAll()
	return a.finishLoad(ctx, gen, prev)
}

// Redistribute places the loaded ads again, for hosts whose item count
// changed since the last load.
func (a *Adapter[T]) Redistribute() {
	total := a.host.Count(AdSection)
	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return
	}
	a.slots = domain.DistributeAds(a.loadedAds, a.cfg.FirstAdPosition, a.cfg.AdInterval, total)
	a.mu.Unlock()
	a.notifier.ReloadAll()
}

func (a *Adapter[T]) beginLoadLocked() (uint64, State, error) {
	if a.destroyed {
		return 0, 0, port.ErrAdapterDestroyed
	}
	if a.state == StateLoading {
		return 0, 0, port.ErrAdapterBusy
	}
	prev := a.state
	a.state = StateLoading
	return a.generation, prev, nil
}

func (a *Adapter[T]) finishLoad(ctx context.Context, gen uint64, prev State) error {
	set, err := a.loader.LoadAds(ctx, a.cfg.UnitID, a.cfg.PreloadCount)
	total := a.host.Count(AdSection)

	a.mu.Lock()
	if a.destroyed || gen != a.generation {
		a.mu.Unlock()
		a.logger.Debug("discarding superseded ad load")
		return port.ErrLoadDiscarded
	}
	if err != nil {
		a.state = prev
		a.lastErr = err
		a.mu.Unlock()
		a.logger.Error("failed to load ads", slog.Any("error", err))
		if cb := a.callbacks.OnLoadError; cb != nil {
			cb(err)
		}
		return err
	}
	for _, ad := range set.Ads {
		if !slices.ContainsFunc(a.loadedAds, ad.Equal) {
			a.loadedAds = append(a.loadedAds, ad)
		}
	}
	a.slots = domain.DistributeAds(a.loadedAds, a.cfg.FirstAdPosition, a.cfg.AdInterval, total)
	a.state = StatePopulated
	a.lastErr = nil
	placed := a.slots.Len()
	a.mu.Unlock()

	a.logger.Debug("loaded ads", slog.Int("received", len(set.Ads)), slog.Int("placed", placed))
	a.notifier.ReloadAll()
	return nil
}

func (a *Adapter[T]) resetLocked() {
	a.slots = domain.AdSlotMap{}
	a.loadedAds = nil
	a.impressed.Clear()
	a.state = StateEmpty
	a.lastErr = nil
}

// Destroy drops all adapter state. Loads completing afterwards are ignored.
// The host's own state is not touched.
func (a *Adapter[T]) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.destroyed = true
	a.generation++
	a.resetLocked()
}

// Count returns the number of entries in section. The ad section grows by
// the number of placed ads.
func (a *Adapter[T]) Count(section int) int {
	n := a.host.Count(section)
	if section != AdSection {
		return n
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.slots.AugmentedCount(n)
}

// ItemAt returns the entry at index. Returning an ad slot records an
// impression the first time the ad is seen in this session.
func (a *Adapter[T]) ItemAt(ctx context.Context, section, index int) Slot[T] {
	if section != AdSection {
		return Slot[T]{Position: index, Item: a.host.ItemAt(section, index), OriginalIndex: index}
	}
	ad, isAd, orig := a.resolve(index)
	if isAd {
		a.trackImpression(ctx, ad, index)
		return Slot[T]{Position: index, Ad: &ad, OriginalIndex: -1}
	}
	return Slot[T]{Position: index, Item: a.host.ItemAt(section, orig), OriginalIndex: orig}
}

// Select handles a tap at index. An ad slot records a click and fires
// OnAdClick; any other entry is forwarded to the host's Selector with its
// original index. The ad is returned when one was tapped.
func (a *Adapter[T]) Select(ctx context.Context, section, index int) (domain.AdRecord, bool) {
	sel, hasSelector := a.host.(port.Selector)
	if section != AdSection {
		if hasSelector {
			sel.Select(section, index)
		}
		return domain.AdRecord{}, false
	}
	ad, isAd, orig := a.resolve(index)
	if isAd {
		a.loader.TrackClick(ctx, ad)
		if cb := a.callbacks.OnAdClick; cb != nil {
			cb(ad, index)
		}
		return ad, true
	}
	if hasSelector {
		sel.Select(section, orig)
	}
	return domain.AdRecord{}, false
}

// Display forwards visibility of a host item to the host's Displayer.
func (a *Adapter[T]) Display(section, index int) {
	disp, ok := a.host.(port.Displayer)
	if !ok {
		return
	}
	if section != AdSection {
		disp.Display(section, index)
		return
	}
	if _, isAd, orig := a.resolve(index); !isAd {
		disp.Display(section, orig)
	}
}

// SizeOf returns the extent of the entry at index: the configured ad size for
// ad slots, the host's own size for items, or DefaultItemSize when the host
// has none.
func (a *Adapter[T]) SizeOf(section, index int) domain.Size {
	orig := index
	if section == AdSection {
		var isAd bool
		_, isAd, orig = a.resolve(index)
		if isAd {
			return a.cfg.AdSize
		}
	}
	if sizer, ok := a.host.(port.Sizer); ok {
		if size, ok := sizer.SizeOf(section, orig); ok {
			return size
		}
	}
	return a.cfg.DefaultItemSize
}

// IsAdPosition reports whether index of the ad section holds an ad.
func (a *Adapter[T]) IsAdPosition(index int) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.slots.IsAdPosition(index)
}

// AdAt returns the ad at index of the ad section without recording an
// impression.
func (a *Adapter[T]) AdAt(index int) (domain.AdRecord, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.slots.AdAt(index)
}

// OriginalIndexOf translates an augmented index into the host's index space.
func (a *Adapter[T]) OriginalIndexOf(index int) int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.slots.OriginalIndexOf(index)
}

// AugmentedIndexOf translates a host index into the augmented index space.
func (a *Adapter[T]) AugmentedIndexOf(original int) int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.slots.AugmentedIndexOf(original)
}

// AdCount returns the number of placed ads.
func (a *Adapter[T]) AdCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.slots.Len()
}

// LoadedAds returns every ad loaded since the last refresh, placed or not.
func (a *Adapter[T]) LoadedAds() []domain.AdRecord {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.loadedAds)
}

// FindAd returns the loaded ad with the given id.
func (a *Adapter[T]) FindAd(id string) (domain.AdRecord, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	i := slices.IndexFunc(a.loadedAds, func(ad domain.AdRecord) bool { return ad.ID == id })
	if i < 0 {
		return domain.AdRecord{}, false
	}
	return a.loadedAds[i], true
}

func (a *Adapter[T]) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// LastError returns the error of the most recent failed load, cleared by the
// next successful one.
func (a *Adapter[T]) LastError() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastErr
}

func (a *Adapter[T]) Config() Config {
	return a.cfg
}

func (a *Adapter[T]) resolve(index int) (ad domain.AdRecord, isAd bool, original int) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ad, isAd = a.slots.AdAt(index)
	return ad, isAd, a.slots.OriginalIndexOf(index)
}

func (a *Adapter[T]) trackImpression(ctx context.Context, ad domain.AdRecord, position int) {
	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return
	}
	first := a.impressed.Add(ad.ID)
	a.mu.Unlock()
	if !first {
		return
	}
	a.loader.TrackImpression(ctx, ad)
	if cb := a.callbacks.OnAdImpression; cb != nil {
		cb(ad, position)
	}
}
