package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.frontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withUser)

	// routes without authentication
	router.Group(func(r chi.Router) {
		r.Get("/current-user", h.currentUser)
		r.Get("/posts", h.listReviews)
		r.Get("/notes", h.listNotes)
		r.Get("/health", h.health)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
	})

	// routes requiring an authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.requireUser)
		r.Post("/add/", h.addContribution)
	})

	return router
}
