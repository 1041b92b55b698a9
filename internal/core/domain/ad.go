package domain

import "time"

// AdType classifies the creative behind an ad record.
type AdType string

const (
	AdTypeDisplay    AdType = "DISPLAY"
	AdTypeVideo      AdType = "VIDEO"
	AdTypeAppInstall AdType = "APP_INSTALL"
	AdTypeContent    AdType = "CONTENT"
	AdTypeProduct    AdType = "PRODUCT"
	AdTypeCustom     AdType = "CUSTOM"
)

// DefaultCTAText is used when the ad server does not provide a call to action.
const DefaultCTAText = "Learn More"

// AdRecord is a single native ad as delivered by the ad server. Records are
// created by the loader on a successful fetch and never mutated afterwards.
// Two records are the same ad when their IDs match.
type AdRecord struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	IconURL     string
	CTAText     string
	LandingURL  string
	SponsorName string
	Rating      *float32
	ReviewCount *int
	Price       string
	Metadata    map[string]string

	ImpressionTrackingURL string
	ClickTrackingURL      string

	Type          AdType
	IsVideo       bool
	VideoURL      string
	VideoDuration int // in seconds

	FetchedAt time.Time
}

// Equal reports whether both records describe the same ad.
func (a AdRecord) Equal(other AdRecord) bool {
	return a.ID == other.ID
}

// TrackingURL returns the confirmation URL the ad carries for the given event
// kind, or an empty string.
func (a AdRecord) TrackingURL(kind EventKind) string {
	switch kind {
	case EventImpression:
		return a.ImpressionTrackingURL
	case EventClick:
		return a.ClickTrackingURL
	default:
		return ""
	}
}

// AnalyticsParams returns the attributes reported alongside every engagement
// event for this ad.
func (a AdRecord) AnalyticsParams() map[string]any {
	sponsor := a.SponsorName
	if sponsor == "" {
		sponsor = "unknown"
	}
	adType := a.Type
	if adType == "" {
		adType = AdTypeDisplay
	}
	return map[string]any{
		"ad_id":    a.ID,
		"ad_type":  string(adType),
		"sponsor":  sponsor,
		"cta_text": a.CTAText,
		"is_video": a.IsVideo,
	}
}

// AdRequest asks for Count ads of the placement identified by UnitID.
type AdRequest struct {
	UnitID string `yaml:"unit_id"`
	Count  int    `yaml:"count"`
}
