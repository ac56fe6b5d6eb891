package handler

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/adubrov/boiler-parts/internal/core/domain"
	"github.com/adubrov/boiler-parts/internal/port"
)

const sessionCookieName = "session_id"

type contextKey struct{}

var sessionContextKey contextKey

// AuthGuard rejects requests without a valid session cookie before they reach
// the handlers, and makes the resolved identity available on the request
// context.
type AuthGuard struct {
	sessions port.SessionStore
}

func NewAuthGuard(sessions port.SessionStore) *AuthGuard {
	return &AuthGuard{sessions: sessions}
}

func (g *AuthGuard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "authentication required"})
			return
		}

		session, err := g.sessions.Get(r.Context(), cookie.Value)
		if errors.Is(err, port.ErrSessionNotFound) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "session expired"})
			return
		}
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFromContext(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(sessionContextKey).(*domain.Session)
	return session
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL.Path,
			"remoteAddr": r.RemoteAddr,
		}).Info("got a new request")
		next.ServeHTTP(w, r)
	})
}
