package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type indexHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newIndexHandler() indexHandler {
	logger := log.With().Str("handlerName", "indexHandler").Logger()

	return indexHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// banner returns the service banner with the endpoint map.
func (h indexHandler) banner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Portfolio Backend API",
			"version": "1.0.0",
			"status":  "Running",
			"endpoints": map[string]string{
				"auth":         "/api/auth",
				"projects":     "/api/projects",
				"blogs":        "/api/blogs",
				"skills":       "/api/skills",
				"achievements": "/api/achievements",
				"contacts":     "/api/contacts",
				"upload":       "/api/upload",
			},
		})
	}
}

// usersPlaceholder reserves the /users route for future user management.
func (h indexHandler) usersPlaceholder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Users endpoint - not implemented",
		})
	}
}

// notFound is the catch-all for unmatched routes.
func (h indexHandler) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusNotFound, map[string]string{
			"message": "Route not found",
		})
	}
}
