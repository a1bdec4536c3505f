// Package notify delivers best-effort notifications when a new proof
// submission lands. Delivery failures never surface to the submitting
// request; they are logged and counted so operators can detect degraded
// delivery without affecting the request path.
package notify

import (
	"context"

	"regdesk/internal/registration/models"
)

// Notifier is a sink for workflow events.
type Notifier interface {
	RegistrationSubmitted(ctx context.Context, rec *models.Record) error
}

// Noop discards all notifications. Used when no sink is configured.
type Noop struct{}

func (Noop) RegistrationSubmitted(context.Context, *models.Record) error { return nil }

// Multi fans an event out to several sinks, returning the first error after
// attempting all of them.
type Multi []Notifier

func (m Multi) RegistrationSubmitted(ctx context.Context, rec *models.Record) error {
	var firstErr error
	for _, n := range m {
		if err := n.RegistrationSubmitted(ctx, rec); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
