package domain

import "time"

// FeedItem is one entry of the host application's own feed. It is the item
// type the list adapter wraps in the bundled host service.
type FeedItem struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"image_url"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Size is the extent of a rendered slot in the host's layout units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
