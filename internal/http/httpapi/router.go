package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/middleware"
)

// NewRouter assembles the HTTP API.
func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.Languages(middleware.ParseLanguageTags(cfg.TranscriptLanguages)),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/auth", func(r chi.Router) {
		r.Post("/signup", app.AuthSignup)
		r.Post("/login", app.AuthLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(app.JWTSecret))

		r.Get("/v1/me", app.Me)

		r.Route("/v1/transcripts", func(r chi.Router) {
			r.Post("/", app.TranscriptsFetch)
			r.Get("/", app.TranscriptsList)
			r.Get("/export", app.TranscriptsExport)
		})

		r.Post("/v1/chat", app.ChatAsk)
		r.Get("/v1/stats/summary", app.StatsSummary)
	})

	return r
}
