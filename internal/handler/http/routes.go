package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// Permissive CORS so collaborating programs can call the service from
	// anywhere; credentials stay off because auth is bearer-token only.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/health", h.health)
		r.Post("/ping", h.ping)
		r.Post("/users", h.createUser)
		r.Get("/users/{userID}", h.publicProfile)
		r.Post("/login", h.login)
		r.Get("/validate", h.validate)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/me", h.me)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
