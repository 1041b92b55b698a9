package configs

import "time"

// Ads configures how ads are fetched, cached and placed into feeds.
type Ads struct {
	// UnitID is the ad unit used for every feed.
	UnitID string `env:"UNIT_ID" envDefault:"feed"`
	// Interval is the number of original items between consecutive ads.
	Interval int `env:"INTERVAL" envDefault:"5"`
	// FirstPosition is the original index the first ad is placed before.
	FirstPosition int `env:"FIRST_POSITION" envDefault:"3"`
	// PreloadCount is the number of ads requested per load.
	PreloadCount int `env:"PRELOAD_COUNT" envDefault:"10"`

	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	// CacheShards is rounded up to a power of two.
	CacheShards int `env:"CACHE_SHARDS" envDefault:"16"`

	PreloadInterval time.Duration `env:"PRELOAD_INTERVAL" envDefault:"5m"`
	PreloadSpacing  time.Duration `env:"PRELOAD_SPACING" envDefault:"5s"`
	// PreloadFile points to a YAML preload plan. Empty disables preloading.
	PreloadFile string `env:"PRELOAD_FILE"`

	SlotWidth  float64 `env:"SLOT_WIDTH" envDefault:"320"`
	SlotHeight float64 `env:"SLOT_HEIGHT" envDefault:"280"`
	ItemWidth  float64 `env:"ITEM_WIDTH" envDefault:"320"`
	ItemHeight float64 `env:"ITEM_HEIGHT" envDefault:"120"`

	// TrackTimeout bounds each asynchronous event delivery.
	TrackTimeout time.Duration `env:"TRACK_TIMEOUT" envDefault:"10s"`
}
