package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/api/middleware"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/api/shared"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/metrics"
)

// RouterDeps holds the handlers and middleware the router wires together.
type RouterDeps struct {
	Studio *StudioHandler
	Images *ImageHandler
	// Auth is optional; when nil the /api routes are open. Image reads are
	// never authenticated.
	Auth   *middleware.AuthMiddleware
	Logger *slog.Logger
}

// NewRouter builds the HTTP routing tree.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Trace(deps.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		// Open even with auth configured: image URLs are embedded in <img>
		// tags, and stored image IDs are random v4 UUIDs.
		r.Get("/images/{id}", deps.Images.GetImage)

		r.Group(func(r chi.Router) {
			if deps.Auth != nil {
				r.Use(deps.Auth.Authenticate)
			}

			r.Post("/generate", deps.Studio.Generate)

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", deps.Studio.CreateSession)
				r.Get("/{id}", deps.Studio.GetSession)
				r.Post("/{id}/generate", deps.Studio.GenerateInSession)
				r.Post("/{id}/images", deps.Studio.GenerateSessionImages)
			})
		})
	})

	return r
}
