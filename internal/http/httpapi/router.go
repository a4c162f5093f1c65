package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"heritage-server/internal/http/handlers"
	"heritage-server/internal/infra"
	"heritage-server/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Logger(log),
		chimw.Recoverer,
		middleware.CORS,
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.OptionalIdentity(cfg.JWTSecret),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/architecture/search", app.TempleSearch)
		r.Post("/festivals/search", app.FestivalSearch)
		r.Post("/holy-books/search", app.HolyBookSearch)
		r.Post("/museums/search", app.MuseumSearch)
		r.Post("/ayurveda/recommendations", app.AyurvedaRecommendations)
		r.Post("/sanskrit/translate", app.SanskritTranslate)
		r.Get("/history", app.History)
	})

	return r
}
