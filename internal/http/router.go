package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sportsbase/internal/http/handlers"
	"sportsbase/internal/http/middleware"
	"sportsbase/internal/metrics"
)

// RouterConfig carries the handlers and cross-cutting dependencies for NewRouter.
type RouterConfig struct {
	Handler     *handlers.Handler
	Admin       *handlers.AdminHandler
	Logger      *slog.Logger
	Recorder    *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(cfg.Logger, cfg.Recorder))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	h := cfg.Handler
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/leagues", h.Leagues)

		r.Route("/setup", func(r chi.Router) {
			r.Get("/", h.Setup)
			r.Post("/leagues", h.SubmitLeagues)
			r.Post("/leagues/{leagueID}/toggle", h.ToggleLeague)
			r.Post("/teams", h.SubmitTeams)
			r.Post("/teams/{leagueID}/{teamID}/toggle", h.ToggleTeam)
			r.Post("/back", h.Back)
		})

		r.Get("/dashboard", h.Dashboard)
		r.Post("/dashboard/refresh", h.Refresh)
		r.Post("/preferences/edit", h.EditPreferences)
	})

	if cfg.Admin != nil {
		r.Post("/admin/cache/invalidate", cfg.Admin.InvalidateCache)
	}
	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
}
