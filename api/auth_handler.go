package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"

	"portfolio-backend/errs"
	"portfolio-backend/models"
	"portfolio-backend/security"
)

// userStore is the storage surface the auth handler needs.
type userStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Add(ctx context.Context, user *models.User) error
}

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	users     userStore
	tokens    *security.TokenService
}

func newAuthHandler(users userStore, tokens *security.TokenService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		users:     users,
		tokens:    tokens,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresIn string    `json:"expiresIn"`
	User      loginUser `json:"user"`
}

// register creates the admin user. Intended for one-time setup.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Username == "" || req.Password == "" {
			h.responder.WriteMsg(w, http.StatusBadRequest, "Username and password are required")
			return
		}

		existing, err := h.users.FindByUsername(r.Context(), req.Username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if existing != nil {
			h.responder.WriteMsg(w, http.StatusBadRequest, "User already exists")
			return
		}

		hash, err := security.HashPassword(req.Password)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to hash password")
			h.responder.WriteMsg(w, http.StatusInternalServerError, "Server error")
			return
		}

		user := &models.User{
			ID:           bson.NewObjectID(),
			Username:     req.Username,
			PasswordHash: hash,
		}
		if err := h.users.Add(r.Context(), user); err != nil {
			if errs.IsAlreadyExists(err) {
				h.responder.WriteMsg(w, http.StatusBadRequest, "User already exists")
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteMsg(w, http.StatusCreated, "User registered successfully")
	}
}

// login verifies credentials and issues a bearer token. Unknown usernames and
// wrong passwords return the identical response to prevent user enumeration.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Username == "" || req.Password == "" {
			h.responder.WriteMsg(w, http.StatusBadRequest, "Username and password are required")
			return
		}

		user, err := h.users.FindByUsername(r.Context(), req.Username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if user == nil || !security.CheckPasswordHash(req.Password, user.PasswordHash) {
			h.responder.WriteMsg(w, http.StatusBadRequest, "Invalid credentials")
			return
		}

		token, err := h.tokens.Issue(user.ID.Hex())
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign token")
			h.responder.WriteMsg(w, http.StatusInternalServerError, "Server error")
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, loginResponse{
			Token:     token,
			ExpiresIn: formatTTL(h.tokens.TTL()),
			User:      loginUser{ID: user.ID.Hex(), Username: user.Username},
		})
	}
}

// formatTTL renders whole-hour lifetimes as "5h" rather than "5h0m0s".
func formatTTL(d time.Duration) string {
	if d%time.Hour == 0 {
		return fmt.Sprintf("%dh", int(d/time.Hour))
	}
	return d.String()
}
