package api

import (
	"dhl-location-service/internal/api/handlers"
	"dhl-location-service/internal/ports"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Options tunes the search and admin routes.
type Options struct {
	SearchTimeout   time.Duration
	SearchRateLimit float64
	SearchRateBurst int
	// AdminToken guards /admin when non-empty.
	AdminToken string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(finder ports.LocationFinder, settings ports.SettingsStore, opts Options, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}

	locations := &handlers.LocationHandler{Finder: finder, Timeout: opts.SearchTimeout}
	page := &handlers.SearchPage{Locations: locations}
	settingsHandler := &handlers.SettingsHandler{Store: settings}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID(log))
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.Health)

	r.Group(func(r chi.Router) {
		if opts.SearchRateLimit > 0 {
			burst := opts.SearchRateBurst
			if burst <= 0 {
				burst = 1
			}
			r.Use(rateLimit(rate.NewLimiter(rate.Limit(opts.SearchRateLimit), burst)))
		}
		r.Get("/", page.Show)
		r.Get("/api/locations", locations.List)
	})

	r.Route("/admin", func(r chi.Router) {
		if opts.AdminToken != "" {
			r.Use(adminAuth(opts.AdminToken))
		}
		r.Get("/settings", settingsHandler.Get)
		r.Put("/settings", settingsHandler.Put)
	})

	return r
}
