package domain

import "sort"

// AdSlotMap assigns ads to positions of a host list. Keys are positions in
// the host's original index space: an ad keyed at k is shown immediately
// before the host item that originally sat at k. The map is rebuilt as a
// whole by DistributeAds and never edited afterwards.
type AdSlotMap struct {
	// positions holds the keys in ascending order.
	positions []int
	ads       map[int]AdRecord
}

// DistributeAds places ads at firstPosition, firstPosition+interval, ... for
// as long as the position stays below totalItems, the host's original item
// count. The bound does not grow as ads are inserted, so ad density is capped
// relative to the host's own content.
func DistributeAds(ads []AdRecord, firstPosition, interval, totalItems int) AdSlotMap {
	m := AdSlotMap{ads: make(map[int]AdRecord)}
	if interval <= 0 || firstPosition < 0 {
		return m
	}
	position := firstPosition
	for adIndex := 0; position < totalItems && adIndex < len(ads); adIndex++ {
		m.ads[position] = ads[adIndex]
		m.positions = append(m.positions, position)
		position += interval
	}
	return m
}

// Len returns the number of filled ad slots.
func (m AdSlotMap) Len() int {
	return len(m.positions)
}

// Positions returns the original-space keys in ascending order.
func (m AdSlotMap) Positions() []int {
	out := make([]int, len(m.positions))
	copy(out, m.positions)
	return out
}

// At returns the ad keyed at the original position.
func (m AdSlotMap) At(original int) (AdRecord, bool) {
	ad, ok := m.ads[original]
	return ad, ok
}

// AugmentedPositions returns the indexes the ads occupy in the augmented list.
func (m AdSlotMap) AugmentedPositions() []int {
	out := make([]int, len(m.positions))
	for j, k := range m.positions {
		out[j] = k + j
	}
	return out
}

// AdAt returns the ad occupying augmented index i, if any.
func (m AdSlotMap) AdAt(i int) (AdRecord, bool) {
	j := m.adsBefore(i)
	if j < len(m.positions) && m.positions[j]+j == i {
		return m.ads[m.positions[j]], true
	}
	return AdRecord{}, false
}

// IsAdPosition reports whether augmented index i is an ad slot.
func (m AdSlotMap) IsAdPosition(i int) bool {
	_, ok := m.AdAt(i)
	return ok
}

// OriginalIndexOf translates augmented index i into the host's index space by
// discounting every ad slot that precedes it. For an ad slot the result is
// the host item the ad is shown in front of.
func (m AdSlotMap) OriginalIndexOf(i int) int {
	return i - m.adsBefore(i)
}

// AugmentedIndexOf translates a host index into the augmented index space.
func (m AdSlotMap) AugmentedIndexOf(original int) int {
	shift := sort.Search(len(m.positions), func(j int) bool {
		return m.positions[j] > original
	})
	return original + shift
}

// AugmentedCount returns the length of the augmented list for a host list of
// originalCount items.
func (m AdSlotMap) AugmentedCount(originalCount int) int {
	return originalCount + len(m.positions)
}

// adsBefore counts ad slots whose augmented index is below i. The j-th ad
// sits at positions[j]+j, which is strictly increasing.
func (m AdSlotMap) adsBefore(i int) int {
	return sort.Search(len(m.positions), func(j int) bool {
		return m.positions[j]+j >= i
	})
}
