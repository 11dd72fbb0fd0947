package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/security"
)

type authMiddleware struct {
	responder Responder
	tokens    *security.TokenService
}

func newAuthMiddleware(tokens *security.TokenService) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		tokens:    tokens,
	}
}

// authenticate guards mutation routes. It resolves the bearer token to a user
// ID and attaches it to the request context, or short-circuits with a 401.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := m.tokens.Verify(tokenString)
		if err != nil {
			if errors.Is(err, security.ErrTokenExpired) {
				m.responder.WriteMsg(w, http.StatusUnauthorized, "Token has expired")
				return
			}
			m.responder.WriteMsg(w, http.StatusUnauthorized, "Token is not valid")
			return
		}

		updatedCtx := ctxWithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(updatedCtx))
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

// RecoverPanics converts handler panics into a JSON 500. The stack is only
// included in the body outside production mode.
func RecoverPanics(includeStack bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			srw := &statusResponseWriter{ResponseWriter: w, status: 200}

			defer func() {
				if rec := recover(); rec != nil {
					stack := string(debug.Stack())
					log.Error().
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Interface("panic", rec).
						Str("stack", stack).
						Msg("Recovered from panic")

					if !srw.wroteHeader {
						body := map[string]any{"message": fmt.Sprintf("%v", rec)}
						if includeStack {
							body["stack"] = stack
						}
						srw.Header().Set("Content-Type", "application/json; charset=utf-8")
						srw.WriteHeader(http.StatusInternalServerError)
						json.NewEncoder(srw).Encode(body)
					}
				}
			}()

			next.ServeHTTP(srw, r)

			// Log 500s that weren't panics (e.g. manually set by handlers)
			if srw.status == http.StatusInternalServerError {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("500 error response")
			}
		})
	}
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
