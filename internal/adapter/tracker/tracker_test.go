package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adchain/internal/core/domain"
	"adchain/internal/core/port/mocks"
)

func kindIs(kind domain.EventKind) interface{} {
	return mock.MatchedBy(func(e domain.Event) bool { return e.Kind == kind })
}

// TestImpressionIsIdempotent ensures a second impression for the same ad id
// is not reported.
func TestImpressionIsIdempotent(t *testing.T) {
	reporter := mocks.NewMockEventReporter(t)
	reporter.EXPECT().ReportEvent(mock.Anything, kindIs(domain.EventImpression)).Return(nil).Once()

	tr := New(reporter, nil, nil, nil)
	ad := domain.AdRecord{ID: "ad-1"}

	tr.TrackImpression(context.Background(), ad)
	tr.TrackImpression(context.Background(), ad)
	tr.Wait()
}

func TestClicksAreNotDeduplicated(t *testing.T) {
	reporter := mocks.NewMockEventReporter(t)
	reporter.EXPECT().ReportEvent(mock.Anything, kindIs(domain.EventClick)).Return(nil).Times(3)

	tr := New(reporter, nil, nil, nil)
	ad := domain.AdRecord{ID: "ad-1"}
	for i := 0; i < 3; i++ {
		tr.TrackClick(context.Background(), ad)
	}
	tr.Wait()
}

func TestConversionIsIdempotent(t *testing.T) {
	reporter := mocks.NewMockEventReporter(t)
	reporter.EXPECT().ReportEvent(mock.Anything, kindIs(domain.EventConversion)).Return(nil).Once()

	tr := New(reporter, nil, nil, nil)
	tr.TrackConversion(context.Background(), domain.AdRecord{ID: "ad-1"})
	tr.TrackConversion(context.Background(), domain.AdRecord{ID: "ad-1"})
	tr.Wait()
}

func TestResetStartsNewSession(t *testing.T) {
	reporter := mocks.NewMockEventReporter(t)
	reporter.EXPECT().ReportEvent(mock.Anything, kindIs(domain.EventImpression)).Return(nil).Twice()

	tr := New(reporter, nil, nil, nil)
	ad := domain.AdRecord{ID: "ad-1"}
	tr.TrackImpression(context.Background(), ad)
	tr.Reset()
	tr.TrackImpression(context.Background(), ad)
	tr.Wait()
}

// TestTrackingURLIsConfirmed ensures the impression URL is pinged and that a
// failing ping or reporter stays invisible to the caller.
func TestTrackingURLIsConfirmed(t *testing.T) {
	reporter := mocks.NewMockEventReporter(t)
	reporter.EXPECT().ReportEvent(mock.Anything, mock.Anything).Return(errors.New("analytics down"))

	pinger := mocks.NewMockTrackingPinger(t)
	pinger.EXPECT().Ping(mock.Anything, "https://t.example/imp").Return(errors.New("timeout")).Once()

	tr := New(reporter, pinger, nil, nil)
	ad := domain.AdRecord{ID: "ad-1", ImpressionTrackingURL: "https://t.example/imp"}

	require.NotPanics(t, func() {
		tr.TrackImpression(context.Background(), ad)
	})
	tr.Wait()
}

func TestNoPingWithoutTrackingURL(t *testing.T) {
	reporter := mocks.NewMockEventReporter(t)
	reporter.EXPECT().ReportEvent(mock.Anything, mock.Anything).Return(nil).Once()
	pinger := mocks.NewMockTrackingPinger(t)

	tr := New(reporter, pinger, nil, nil)
	tr.TrackClick(context.Background(), domain.AdRecord{ID: "ad-1"})
	tr.Wait()

	pinger.AssertNotCalled(t, "Ping", mock.Anything, mock.Anything)
}

func TestVideoEventsOnlyForVideoAds(t *testing.T) {
	reporter := mocks.NewMockEventReporter(t)
	reporter.EXPECT().
		ReportEvent(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
			return e.Kind == domain.EventVideoStart && e.Params["video_duration"] == 15
		})).
		Return(nil).Once()
	reporter.EXPECT().ReportEvent(mock.Anything, kindIs(domain.EventVideoComplete)).Return(nil).Once()

	tr := New(reporter, nil, nil, nil)
	tr.TrackVideoStart(context.Background(), domain.AdRecord{ID: "static"})
	tr.TrackVideoStart(context.Background(), domain.AdRecord{ID: "v", IsVideo: true, VideoDuration: 15})
	tr.TrackVideoComplete(context.Background(), domain.AdRecord{ID: "v", IsVideo: true, VideoDuration: 15})
	tr.Wait()
}

func TestDeliveryOutlivesCanceledContext(t *testing.T) {
	var deliveryErr error
	reporter := mocks.NewMockEventReporter(t)
	reporter.EXPECT().
		ReportEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.Event) error {
			deliveryErr = ctx.Err()
			return nil
		}).Once()

	tr := New(reporter, nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tr.TrackImpression(ctx, domain.AdRecord{ID: "ad-1"})
	tr.Wait()

	assert.NoError(t, deliveryErr)
}

func TestMultiReporterJoinsErrors(t *testing.T) {
	ok := mocks.NewMockEventReporter(t)
	ok.EXPECT().ReportEvent(mock.Anything, mock.Anything).Return(nil).Once()
	failing := mocks.NewMockEventReporter(t)
	failing.EXPECT().ReportEvent(mock.Anything, mock.Anything).Return(errors.New("boom")).Once()
	last := mocks.NewMockEventReporter(t)
	last.EXPECT().ReportEvent(mock.Anything, mock.Anything).Return(nil).Once()

	err := MultiReporter{ok, failing, last}.ReportEvent(context.Background(), domain.Event{ID: "e"})
	assert.EqualError(t, err, "boom")
}
