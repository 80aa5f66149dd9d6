package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/careportal/careportal/internal/api/middleware"
	"github.com/careportal/careportal/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger               *logging.Logger
	DoctorsHandler       *DoctorsHandler
	AppointmentsHandler  *AppointmentsHandler
	NotificationsHandler *NotificationsHandler
	WishlistHandler      *WishlistHandler
	AssistantHandler     *AssistantHandler
	MetricsHandler       http.Handler
	CORSAllowedOrigins   []string
}

// NewRouter creates a Chi router with all routes configured.
func NewRouter(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.DoctorsHandler != nil {
		r.Route("/doctors", func(r chi.Router) {
			r.Get("/", cfg.DoctorsHandler.List)
			r.Get("/{id}", cfg.DoctorsHandler.Get)
		})
	}

	if cfg.AppointmentsHandler != nil {
		r.Route("/appointments", func(r chi.Router) {
			r.Get("/", cfg.AppointmentsHandler.List)
			r.Post("/", cfg.AppointmentsHandler.Create)
			r.Patch("/{id}/status", cfg.AppointmentsHandler.UpdateStatus)
			r.Patch("/{id}/schedule", cfg.AppointmentsHandler.Reschedule)
		})
	}

	if cfg.NotificationsHandler != nil {
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", cfg.NotificationsHandler.List)
			r.Post("/read-all", cfg.NotificationsHandler.MarkAllRead)
			r.Delete("/", cfg.NotificationsHandler.ClearAll)
		})
	}

	if cfg.WishlistHandler != nil {
		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", cfg.WishlistHandler.List)
			r.Get("/{doctorID}", cfg.WishlistHandler.Contains)
			r.Post("/{doctorID}/toggle", cfg.WishlistHandler.Toggle)
		})
	}

	if cfg.AssistantHandler != nil {
		r.Route("/assistant", func(r chi.Router) {
			r.Post("/faq", cfg.AssistantHandler.FAQ)
			r.Post("/recommend", cfg.AssistantHandler.Recommend)
		})
	}

	return r
}
