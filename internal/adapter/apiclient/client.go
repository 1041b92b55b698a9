package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"adchain/internal/config/configs"
	"adchain/internal/core/domain"
	"adchain/internal/core/port"
)

const (
	SDKVersion = "1.0.0"
	Platform   = "Go"

	adsEndpoint    = "/v1/carousel/ads"
	eventsEndpoint = "/v1/analytics/event"
)

// Client talks to the ad server. It implements port.AdFetcher,
// port.EventReporter and port.TrackingPinger. No retries are performed.
type Client struct {
	baseURL   string
	appID     string
	appSecret string
	http      *http.Client
	now       func() time.Time
}

// New creates a client for the configured ad server.
func New(cfg configs.AdServer) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		appID:     cfg.AppID,
		appSecret: cfg.AppSecret,
		http:      &http.Client{Timeout: cfg.Timeout},
		now:       time.Now,
	}
}

type adsResponse struct {
	Ads []adResponse `json:"ads"`
}

type adResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	ImageURL    string         `json:"image_url"`
	LandingURL  string         `json:"landing_url"`
	Metadata    map[string]any `json:"metadata"`
}

func (r adResponse) validate() error {
	var missing []string
	if r.ID == "" {
		missing = append(missing, "id")
	}
	if r.Title == "" {
		missing = append(missing, "title")
	}
	if r.ImageURL == "" {
		missing = append(missing, "image_url")
	}
	if r.LandingURL == "" {
		missing = append(missing, "landing_url")
	}
	if len(missing) > 0 {
		return fmt.Errorf("ad %q: missing %s", r.ID, strings.Join(missing, ", "))
	}
	return nil
}

func (r adResponse) toRecord(fetchedAt time.Time) domain.AdRecord {
	ad := domain.AdRecord{
		ID:         r.ID,
		Title:      r.Title,
		ImageURL:   r.ImageURL,
		CTAText:    domain.DefaultCTAText,
		LandingURL: r.LandingURL,
		Type:       domain.AdTypeDisplay,
		FetchedAt:  fetchedAt,
	}
	if r.Description != nil {
		ad.Description = *r.Description
	}
	if len(r.Metadata) > 0 {
		ad.Metadata = make(map[string]string, len(r.Metadata))
		for k, v := range r.Metadata {
			ad.Metadata[k] = fmt.Sprint(v)
		}
	}
	return ad
}

// FetchAdBatch requests count ads for unitID.
func (c *Client) FetchAdBatch(ctx context.Context, unitID string, count int) ([]domain.AdRecord, error) {
	q := url.Values{}
	q.Set("unit_id", unitID)
	q.Set("count", strconv.Itoa(count))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+adsEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &port.TransportError{Message: "invalid request", Err: err}
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var resp adsResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, &port.DecodingError{Err: err}
	}
	now := c.now()
	ads := make([]domain.AdRecord, 0, len(resp.Ads))
	for _, r := range resp.Ads {
		if err = r.validate(); err != nil {
			return nil, &port.DecodingError{Err: err}
		}
		ads = append(ads, r.toRecord(now))
	}
	return ads, nil
}

type eventRequest struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Timestamp  float64        `json:"timestamp"`
	AdID       string         `json:"ad_id"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// ReportEvent posts an engagement event to the analytics endpoint.
func (c *Client) ReportEvent(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(eventRequest{
		ID:         event.ID,
		Name:       event.Kind.Name(),
		Timestamp:  float64(event.CreatedAt.UnixMilli()) / 1000,
		AdID:       event.AdID,
		Parameters: event.Params,
	})
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+eventsEndpoint, bytes.NewReader(payload))
	if err != nil {
		return &port.TransportError{Message: "invalid request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	_, err = c.do(req)
	if errors.Is(err, errEmptyBody) {
		return nil
	}
	return err
}

// Ping sends the confirmation request for a tracking URL.
func (c *Client) Ping(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &port.TransportError{Message: "invalid tracking url " + rawURL, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &port.TransportError{Message: "invalid request", Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &port.TransportError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &port.TransportError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return nil
}

var errEmptyBody = errors.New("empty response")

// do sends an authenticated request and returns the body of a 2xx response.
func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("X-AdChain-App-Id", c.appID)
	req.Header.Set("X-AdChain-App-Secret", c.appSecret)
	req.Header.Set("X-AdChain-SDK-Version", SDKVersion)
	req.Header.Set("X-AdChain-Platform", Platform)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &port.TransportError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &port.TransportError{StatusCode: resp.StatusCode, Message: "read body", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &port.TransportError{StatusCode: resp.StatusCode, Message: msg}
	}
	if resp.StatusCode == http.StatusNoContent || len(body) == 0 {
		return nil, &port.TransportError{StatusCode: resp.StatusCode, Message: "empty response", Err: errEmptyBody}
	}
	return body, nil
}
