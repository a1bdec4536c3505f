// Package handler exposes event settings over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"regdesk/internal/settings/service"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/httputil"
	"regdesk/pkg/requestcontext"
)

// Service defines the settings operations this handler exposes.
type Service interface {
	Get(ctx context.Context) (service.Settings, error)
	SetMeetLink(ctx context.Context, link string) (service.Settings, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public settings endpoint.
func (h *Handler) Register(r chi.Router) {
	r.Get("/settings", h.HandleGetSettings)
}

// RegisterAdmin mounts the admin settings endpoint; the caller guards the
// group with the admin session middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/settings", h.HandleUpdateSettings)
}

// HandleGetSettings handles GET /settings requests.
func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := h.service.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reading settings failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, settings)
}

type updateSettingsRequest struct {
	MeetLink string `json:"meetLink"`
}

type updateSettingsResponse struct {
	Success  bool             `json:"success"`
	Settings service.Settings `json:"settings"`
}

// HandleUpdateSettings handles POST /admin/settings requests.
func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req updateSettingsRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	settings, err := h.service.SetMeetLink(ctx, req.MeetLink)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "updating settings failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, updateSettingsResponse{
		Success:  true,
		Settings: settings,
	})
}
