// Package service implements the registration workflow: status resolution
// over the registration log and whitelist, proof submission, and admin
// validation.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"regdesk/internal/notify"
	regmetrics "regdesk/internal/registration/metrics"
	"regdesk/internal/registration/models"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/email"
	"regdesk/pkg/platform/sentinel"
	"regdesk/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,ProofStorage

// Store is the persistence this service needs; see the store package for the
// error contract.
type Store interface {
	LatestByEmail(ctx context.Context, email string) (*models.Record, error)
	Append(ctx context.Context, rec *models.Record) error
	AppendIfUnregistered(ctx context.Context, rec *models.Record) (bool, error)
	Validate(ctx context.Context, id uuid.UUID) (*models.Record, error)
	ListRegistrations(ctx context.Context) ([]*models.Record, error)
	FindWhitelisted(ctx context.Context, email string) (*models.WhitelistEntry, error)
	AddToWhitelist(ctx context.Context, entry models.WhitelistEntry) error
}

// ProofStorage validates and persists uploaded proof files.
type ProofStorage interface {
	Save(data []byte) (ref string, err error)
}

// Service orchestrates the registration workflow.
type Service struct {
	store    Store
	proofs   ProofStorage
	notifier notify.Notifier
	metrics  *regmetrics.Metrics
	logger   *slog.Logger
}

func New(store Store, proofs ProofStorage, notifier notify.Notifier, logger *slog.Logger, metrics *regmetrics.Metrics) *Service {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Service{
		store:    store,
		proofs:   proofs,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Resolve determines an email's current access status. The latest log record
// wins; the whitelist is the coarser fallback consulted only when no record
// exists, and membership there implies pre-approval.
func (s *Service) Resolve(ctx context.Context, addr string) (models.Resolution, error) {
	res, _, err := s.resolve(ctx, addr)
	return res, err
}

// resolve additionally reports whether the resolution came from a log
// record, which is what Check's reconciliation keys on.
func (s *Service) resolve(ctx context.Context, addr string) (models.Resolution, bool, error) {
	addr = email.Normalize(addr)
	if !email.Valid(addr) {
		return models.Resolution{}, false, dErrors.New(dErrors.CodeBadRequest, "a valid email is required")
	}

	rec, err := s.store.LatestByEmail(ctx, addr)
	switch {
	case err == nil:
		user := rec.User
		return models.Resolution{Exists: true, Status: rec.Status, User: &user}, true, nil
	case !errors.Is(err, sentinel.ErrNotFound):
		return models.Resolution{}, false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read registrations")
	}

	entry, err := s.store.FindWhitelisted(ctx, addr)
	switch {
	case err == nil:
		user := entry.User()
		return models.Resolution{Exists: true, Status: models.StatusValidated, User: &user}, false, nil
	case errors.Is(err, sentinel.ErrNotFound):
		return models.Resolution{Exists: false}, false, nil
	default:
		return models.Resolution{}, false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read whitelist")
	}
}

// Check is the workflow entry point. On top of Resolve it reconciles legacy
// whitelist users into the log: an email known only to the whitelist gets a
// durable FREE_ACCESS record dated now, exactly once no matter how often
// Check runs.
func (s *Service) Check(ctx context.Context, addr string) (models.Resolution, error) {
	res, fromLog, err := s.resolve(ctx, addr)
	if err != nil || !res.Exists || fromLog {
		return res, err
	}

	rec, err := models.NewRecord(*res.User, models.StatusFreeAccess, requestcontext.Now(ctx))
	if err != nil {
		return models.Resolution{}, err
	}
	created, err := s.store.AppendIfUnregistered(ctx, rec)
	if err != nil {
		return models.Resolution{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record free access")
	}
	if created {
		s.metrics.IncFreeAccessGrant()
		s.logger.InfoContext(ctx, "granted free access to whitelisted user",
			"registration_id", rec.ID,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return res, nil
}

// SubmitProofInput carries one proof submission. Name fields are optional.
type SubmitProofInput struct {
	LastName  string
	FirstName string
	Email     string
	Type      string
	File      []byte
}

// SubmitProof validates the upload, stores the file, and appends a PENDING
// record. The admin notification is fire-and-forget: its failure is counted
// and logged by the sink instrumentation but never fails the submission.
func (s *Service) SubmitProof(ctx context.Context, in SubmitProofInput) (*models.Record, error) {
	regType, err := models.ParseType(in.Type)
	if err != nil {
		s.metrics.IncRejected("invalid_input")
		return nil, err
	}

	user := models.User{LastName: in.LastName, FirstName: in.FirstName, Email: in.Email}
	rec, err := models.NewRecord(user, models.StatusPending, requestcontext.Now(ctx))
	if err != nil {
		s.metrics.IncRejected("invalid_input")
		return nil, err
	}
	rec.Type = regType

	ref, err := s.proofs.Save(in.File)
	if err != nil {
		switch {
		case dErrors.HasCode(err, dErrors.CodePayloadTooLarge):
			s.metrics.IncRejected("too_large")
		case dErrors.HasCode(err, dErrors.CodeUnsupportedMedia):
			s.metrics.IncRejected("media_type")
		default:
			s.metrics.IncRejected("invalid_input")
		}
		return nil, err
	}
	rec.ProofRef = ref

	if err := s.store.Append(ctx, rec); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record submission")
	}
	s.metrics.IncSubmission(string(rec.Type))

	// Best-effort: a dead mail server must not block registrations.
	_ = s.notifier.RegistrationSubmitted(ctx, rec)

	return rec, nil
}

// Validate is the admin action transitioning a PENDING record to VALIDATED
// and whitelisting its email for future events.
func (s *Service) Validate(ctx context.Context, id string) (*models.Record, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "registration not found")
	}

	rec, err := s.store.Validate(ctx, recordID)
	switch {
	case err == nil:
		s.metrics.IncValidation()
		s.logger.InfoContext(ctx, "registration validated",
			"registration_id", rec.ID,
			"request_id", requestcontext.RequestID(ctx),
		)
		return rec, nil
	case errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.New(dErrors.CodeNotFound, "registration not found")
	case errors.Is(err, sentinel.ErrInvalidState):
		return nil, dErrors.New(dErrors.CodeConflict, "registration is not pending")
	default:
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to validate registration")
	}
}

// List returns every registration record, newest first.
func (s *Service) List(ctx context.Context) ([]*models.Record, error) {
	records, err := s.store.ListRegistrations(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list registrations")
	}
	return records, nil
}
