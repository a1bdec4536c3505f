// Package handler exposes the admin gate over HTTP: login and logout.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"regdesk/internal/admin/service"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/httputil"
	"regdesk/pkg/requestcontext"
)

// Service defines the admin gate operations this handler exposes.
type Service interface {
	Login(ctx context.Context, password string) (service.Session, error)
	Logout(ctx context.Context, jti string) error
}

// Handler wires the admin session endpoints to the admin gate.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the login endpoint; logout needs the session middleware,
// so it registers separately via RegisterAuthenticated.
func (h *Handler) Register(r chi.Router) {
	r.Post("/admin/login", h.HandleLogin)
}

// RegisterAuthenticated mounts the endpoints that require a live session.
func (h *Handler) RegisterAuthenticated(r chi.Router) {
	r.Post("/logout", h.HandleLogout)
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// HandleLogin handles POST /admin/login requests.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	session, err := h.service.Login(ctx, req.Password)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "admin login failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, loginResponse{
		Success:   true,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// HandleLogout handles POST /admin/logout requests. The session middleware
// put the token's jti on the context.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.service.Logout(ctx, requestcontext.AdminJTI(ctx)); err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "admin logout failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
