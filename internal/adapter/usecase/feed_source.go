package usecase

import "adchain/internal/core/domain"

// feedSource is the host list of a session: an immutable snapshot of feed
// items taken when the session was opened.
type feedSource struct {
	items     []domain.FeedItem
	imageSize domain.Size
}

func newFeedSource(items []domain.FeedItem, itemSize domain.Size) *feedSource {
	return &feedSource{
		items:     items,
		imageSize: domain.Size{Width: itemSize.Width, Height: itemSize.Height * 2},
	}
}

func (s *feedSource) Count(section int) int {
	if section != 0 {
		return 0
	}
	return len(s.items)
}

func (s *feedSource) ItemAt(_ int, index int) domain.FeedItem {
	it, _ := s.item(index)
	return it
}

// SizeOf makes items carrying an image twice as tall. Items without one are
// left to the adapter's default size.
func (s *feedSource) SizeOf(_ int, index int) (domain.Size, bool) {
	if index < 0 || index >= len(s.items) || s.items[index].ImageURL == "" {
		return domain.Size{}, false
	}
	return s.imageSize, true
}

// item returns the item at index, or false when index is out of range.
func (s *feedSource) item(index int) (domain.FeedItem, bool) {
	if index < 0 || index >= len(s.items) {
		return domain.FeedItem{}, false
	}
	return s.items[index], true
}
