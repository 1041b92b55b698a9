package port

import "adchain/internal/core/domain"

// DataSource is the host's own ordered list. Sections other than the one the
// adapter augments are passed through untouched.
type DataSource[T any] interface {
	Count(section int) int
	ItemAt(section, index int) T
}

// Selector is implemented by hosts that handle item selection.
type Selector interface {
	Select(section, index int)
}

// Sizer is implemented by hosts that size their own items. ok is false when
// the host has no opinion for the index.
type Sizer interface {
	SizeOf(section, index int) (size domain.Size, ok bool)
}

// Displayer is implemented by hosts that want to know when an item becomes
// visible.
type Displayer interface {
	Display(section, index int)
}

// ListNotifier tells the host list view that the augmented list changed and
// must be redrawn.
type ListNotifier interface {
	ReloadAll()
}

// ListNotifierFunc adapts a function to ListNotifier.
type ListNotifierFunc func()

func (f ListNotifierFunc) ReloadAll() { f() }
