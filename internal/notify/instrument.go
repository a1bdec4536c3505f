package notify

import (
	"context"
	"log/slog"

	"regdesk/internal/registration/models"
	"regdesk/pkg/requestcontext"
)

// Instrument wraps a sink with delivery metrics and logging. The wrapped
// error still propagates so Multi can report it; swallowing happens at the
// workflow edge.
func Instrument(sink string, n Notifier, metrics *Metrics, logger *slog.Logger) Notifier {
	return &instrumented{sink: sink, next: n, metrics: metrics, logger: logger}
}

type instrumented struct {
	sink    string
	next    Notifier
	metrics *Metrics
	logger  *slog.Logger
}

func (i *instrumented) RegistrationSubmitted(ctx context.Context, rec *models.Record) error {
	if err := i.next.RegistrationSubmitted(ctx, rec); err != nil {
		i.metrics.IncFailure(i.sink)
		i.logger.WarnContext(ctx, "notification delivery failed",
			"sink", i.sink,
			"registration_id", rec.ID,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return err
	}
	i.metrics.IncSent(i.sink)
	return nil
}
