// Package handler exposes the registration workflow over HTTP: the public
// check and proof-submission endpoints plus the admin listing and validation
// endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"regdesk/internal/registration/models"
	"regdesk/internal/registration/service"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/httputil"
	"regdesk/pkg/requestcontext"
)

// Service defines the registration operations this handler exposes.
type Service interface {
	Check(ctx context.Context, email string) (models.Resolution, error)
	SubmitProof(ctx context.Context, in service.SubmitProofInput) (*models.Record, error)
	Validate(ctx context.Context, id string) (*models.Record, error)
	List(ctx context.Context) ([]*models.Record, error)
}

// Handler wires registration endpoints to the registration service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a registration handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public registration endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/check-user", h.HandleCheckUser)
	r.Post("/send-receipt", h.HandleSendReceipt)
}

// RegisterAdmin mounts the admin registration endpoints; the caller is
// responsible for guarding the group with the admin session middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/registrations", h.HandleListRegistrations)
	r.Post("/validate/{id}", h.HandleValidate)
}

// HandleCheckUser handles POST /check-user requests.
func (h *Handler) HandleCheckUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	var req checkUserRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	res, err := h.service.Check(ctx, req.Email)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "check-user failed",
				"request_id", requestID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, res)
}

// HandleSendReceipt handles POST /send-receipt multipart submissions.
func (h *Handler) HandleSendReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	in, err := parseSubmitForm(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rec, err := h.service.SubmitProof(ctx, in)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "proof submission failed",
				"request_id", requestID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "proof submitted",
		"request_id", requestID,
		"registration_id", rec.ID,
		"type", rec.Type,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, submitResponse{
		Success: true,
		Message: "receipt received, pending validation",
		ID:      rec.ID.String(),
	})
}

// HandleListRegistrations handles GET /admin/registrations requests.
func (h *Handler) HandleListRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "listing registrations failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if records == nil {
		records = []*models.Record{}
	}

	httputil.WriteJSON(w, http.StatusOK, records)
}

// HandleValidate handles POST /admin/validate/{id} requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	id := chi.URLParam(r, "id")

	rec, err := h.service.Validate(ctx, id)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "validation failed",
				"request_id", requestID,
				"registration_id", id,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, validateResponse{
		Success:      true,
		Registration: rec,
	})
}
