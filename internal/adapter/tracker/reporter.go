package tracker

import (
	"context"
	"errors"

	"adchain/internal/core/domain"
	"adchain/internal/core/port"
)

// MultiReporter forwards each event to every reporter in order. A failing
// reporter does not stop the others; their errors are joined.
type MultiReporter []port.EventReporter

func (m MultiReporter) ReportEvent(ctx context.Context, event domain.Event) error {
	var errs []error
	for _, r := range m {
		if err := r.ReportEvent(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
