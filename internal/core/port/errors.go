package port

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAdsAvailable is returned when the ad server answered successfully
	// with an empty batch.
	ErrNoAdsAvailable = errors.New("no ads available")
	// ErrAdapterBusy is returned by a list adapter asked to load while a load
	// is already in flight.
	ErrAdapterBusy = errors.New("adapter busy")
	// ErrAdapterDestroyed is returned by a list adapter after Destroy.
	ErrAdapterDestroyed = errors.New("adapter destroyed")
	// ErrLoadDiscarded is returned when a load completed after the adapter was
	// refreshed or destroyed; its result was dropped.
	ErrLoadDiscarded = errors.New("load result discarded")
	// ErrInvalidRequest is returned for malformed load requests.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrSessionNotFound is returned for unknown feed sessions.
	ErrSessionNotFound = errors.New("session not found")
	// ErrAdNotFound is returned for ads that were not loaded in a session.
	ErrAdNotFound = errors.New("ad not found")
)

// TransportError reports a failed exchange with the ad server: the request
// never completed, or it completed with a non-success status.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error (%d): %s", e.StatusCode, e.Message)
	}
	return "transport error: " + e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodingError reports an ad batch that could not be decoded.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return "decode ad batch: " + e.Err.Error()
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}
