// Package httptransport composes the HTTP surface: middleware chain, the
// /api route tree, static proof serving, and operational endpoints.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminhandler "regdesk/internal/admin/handler"
	"regdesk/internal/platform/middleware"
	reghandler "regdesk/internal/registration/handler"
	settingshandler "regdesk/internal/settings/handler"
)

// Deps are the wired handlers and cross-cutting pieces the router mounts.
type Deps struct {
	Logger *slog.Logger

	Registrations *reghandler.Handler
	Admin         *adminhandler.Handler
	Settings      *settingshandler.Handler

	Sessions middleware.SessionValidator

	// UploadDir is served under /uploads so validated receipts stay
	// reachable from the dashboard.
	UploadDir string

	// MountMetrics exposes /metrics on this router; leave false when a
	// separate metrics listener is configured.
	MountMetrics bool
}

// NewRouter builds the full application router.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(d.Logger))

	r.Route("/api", func(api chi.Router) {
		api.Group(d.Registrations.Register)
		api.Group(d.Admin.Register)
		api.Group(d.Settings.Register)

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireAdmin(d.Sessions, d.Logger))
			d.Registrations.RegisterAdmin(admin)
			d.Settings.RegisterAdmin(admin)
			d.Admin.RegisterAuthenticated(admin)
		})
	})

	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(d.UploadDir))))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if d.MountMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}
