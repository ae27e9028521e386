package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
	"github.com/rocketscienceinc/jeopardy-backend/internal/pkg"
)

const (
	authCookieName    = "auth_token"
	sessionCookieName = "player_session"

	sessionTTL = 30 * 24 * time.Hour
)

type ctxKey int

const ctxKeyPlayer ctxKey = iota

type tokenParser interface {
	ParseToken(token string) (*entity.Player, error)
}

func newStructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// optionalAuth resolves the player from a valid token, or else from the guest
// session cookie, creating one when missing.
func optionalAuth(auth tokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerOrCookie(r); token != "" {
				if player, err := auth.ParseToken(token); err == nil {
					next.ServeHTTP(w, r.WithContext(withPlayer(r.Context(), player)))
					return
				}
			}

			player := entity.NewGuestPlayer(guestSession(w, r))
			next.ServeHTTP(w, r.WithContext(withPlayer(r.Context(), player)))
		})
	}
}

func requireAuth(auth tokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerOrCookie(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, apperror.ErrUnauthorized.Error())
				return
			}

			player, err := auth.ParseToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(withPlayer(r.Context(), player)))
		})
	}
}

func bearerOrCookie(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := r.Cookie(authCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

func guestSession(w http.ResponseWriter, r *http.Request) string {
	// Only ids minted by GenerateNewSessionID are accepted.
	if cookie, err := r.Cookie(sessionCookieName); err == nil && pkg.IsGuestSessionID(cookie.Value) {
		return cookie.Value
	}

	id := pkg.GenerateNewSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

func withPlayer(ctx context.Context, player *entity.Player) context.Context {
	return context.WithValue(ctx, ctxKeyPlayer, player)
}

// PlayerFrom returns the player resolved by the auth middleware.
func PlayerFrom(r *http.Request) *entity.Player {
	player, _ := r.Context().Value(ctxKeyPlayer).(*entity.Player)
	return player
}
