package server

import (
	"net/http"

	"reel-backend/internal/handlers"
	customMiddleware "reel-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
	User    *handlers.UserHandler
	Draft   *handlers.DraftHandler
}

// NewRouter wires every route of the service.
func NewRouter(h Handlers, jwtSecret string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"reel-backend"}`))
	})

	// Message drafting is called by the extension from any page, POST only.
	r.Route("/api/gen", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"POST"},
			AllowedHeaders: []string{"Content-Type"},
		}))
		r.MethodNotAllowed(h.Draft.MethodNotAllowed)
		r.Post("/", h.Draft.Generate)
	})

	// Dashboard-facing routes
	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}))
		r.Use(customMiddleware.Authenticate(jwtSecret))

		// Sign-in
		r.Post("/auth/request", h.Auth.RequestLogin)
		r.Get("/auth/verify", h.Auth.VerifyToken)

		// Identity is optional here; the handler reports a missing user itself.
		r.Route("/api/create-profile", func(r chi.Router) {
			r.MethodNotAllowed(h.Profile.MethodNotAllowed)
			r.Post("/", h.Profile.CreateProfile)
		})

		r.Group(func(r chi.Router) {
			r.Use(customMiddleware.RequireAuth)

			r.Get("/user/status", h.User.GetStatus)
			r.Put("/user/bio", h.User.SaveBio)
			r.Patch("/user/first-message", h.User.CompleteFirstMessage)
		})
	})

	return r
}
