package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public surface: banner, auth, one router per entity,
// and the guarded upload endpoint.
func setupRoutes(r chi.Router, handlers *routeHandlers, guard authMiddleware) {
	r.Get("/", handlers.index.banner())
	r.Get("/users", handlers.index.usersPlaceholder())

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", handlers.auth.register())
		r.Post("/login", handlers.auth.login())
	})

	mountResource(r, "/api/projects", handlers.projects, guard)
	mountResource(r, "/api/blogs", handlers.blogs, guard)
	mountResource(r, "/api/skills", handlers.skills, guard)
	mountResource(r, "/api/achievements", handlers.achievements, guard)
	mountResource(r, "/api/contacts", handlers.contacts, guard)

	r.Group(func(r chi.Router) {
		r.Use(guard.authenticate)
		r.Post("/api/upload", handlers.upload.upload())
	})

	r.NotFound(handlers.index.notFound())
}

// mountResource wires the uniform CRUD routes for one entity. Reads are
// public; mutations go through the access guard.
func mountResource[T any, PT resourcePtr[T]](r chi.Router, pattern string, h *resourceHandler[T, PT], guard authMiddleware) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", h.list())
		r.Get("/{id}", h.get())

		r.Group(func(r chi.Router) {
			r.Use(guard.authenticate)
			r.Post("/", h.create())
			r.Put("/{id}", h.update())
			r.Delete("/{id}", h.delete())
		})
	})
}
