package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/health", h.health)

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/signup", h.signUp)
			r.Post("/auth/login", h.login)
		})

		// routes protected by bearer token
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/user/{id}", h.getUser)

			r.Route("/document", func(r chi.Router) {
				r.Post("/upload", h.uploadDocument)
				r.Get("/{userId}", h.listDocuments)
				r.Get("/doc/{id}", h.getDocument)
				r.Delete("/doc/{id}", h.deleteDocument)
			})

			r.Post("/user/{userId}/profile", h.uploadProfileImage)
			r.Get("/user/{userId}/profile", h.getProfileImage)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
