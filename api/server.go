package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"portfolio-backend/config"
	"portfolio-backend/database"
	"portfolio-backend/media"
	"portfolio-backend/security"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(cfg *config.Config, db *database.Database, uploader media.Uploader) (Server, error) {
	address := fmt.Sprintf("0.0.0.0:%s", cfg.Port)

	startupTime := time.Now()

	router := newRouter(cfg, db, uploader)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return Server{server, startupTime}, nil
}

func newRouter(cfg *config.Config, db *database.Database, uploader media.Uploader) *chi.Mux {
	chiRouter := chi.NewRouter()
	chiRouter.Use(RecoverPanics(!cfg.IsProduction()))
	chiRouter.Use(ColoredHTTPLoggingMiddleware)
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AcceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	tokens := security.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	handlers := initializeHandlers(db, tokens, uploader)
	guard := newAuthMiddleware(tokens)

	setupRoutes(chiRouter, handlers, guard)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
