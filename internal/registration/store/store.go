// Package store persists the registration log and the whitelist. The two
// collections live in one store because the workflow's mutations span both:
// validating a registration also whitelists its email, and that has to be
// atomic.
package store

import (
	"context"

	"github.com/google/uuid"

	"regdesk/internal/registration/models"
)

// Store is implemented by the in-memory store (development, unit tests) and
// the PostgreSQL store (production). Emails passed in are expected to be
// normalized already; implementations still compare case-insensitively.
//
// Error contract: lookups return sentinel.ErrNotFound for missing entities;
// Validate returns sentinel.ErrInvalidState for non-PENDING records;
// AddToWhitelist returns sentinel.ErrAlreadyUsed for duplicate emails.
type Store interface {
	// LatestByEmail returns the registration record that determines the
	// email's current status: latest SubmittedAt, ties broken by highest Seq.
	LatestByEmail(ctx context.Context, email string) (*models.Record, error)

	// Append inserts a new record and assigns its Seq.
	Append(ctx context.Context, rec *models.Record) error

	// AppendIfUnregistered inserts rec only if the email has no record yet.
	// The check and the insert happen atomically; it reports whether the
	// record was inserted.
	AppendIfUnregistered(ctx context.Context, rec *models.Record) (bool, error)

	// Validate transitions the record to VALIDATED and adds its user to the
	// whitelist if absent, atomically. Returns the updated record.
	Validate(ctx context.Context, id uuid.UUID) (*models.Record, error)

	// ListRegistrations returns all records newest-first.
	ListRegistrations(ctx context.Context) ([]*models.Record, error)

	// FindWhitelisted looks up a whitelist entry by email.
	FindWhitelisted(ctx context.Context, email string) (*models.WhitelistEntry, error)

	// AddToWhitelist inserts an entry; duplicate emails are rejected.
	AddToWhitelist(ctx context.Context, entry models.WhitelistEntry) error
}
