package httpapi

import (
	"context"
	"net/http"
	"time"

	"das-foods/internal/domain"

	"github.com/rs/zerolog/log"
)

const SessionCookieName = "das_session"

type contextKey int

const (
	sessionKey contextKey = iota
	accountKey
)

// SessionFrom returns the session token attached by the session middleware.
func SessionFrom(ctx context.Context) string {
	token, _ := ctx.Value(sessionKey).(string)
	return token
}

// AccountFrom returns the signed-in account, or nil for anonymous visitors.
func AccountFrom(ctx context.Context) *domain.Account {
	account, _ := ctx.Value(accountKey).(*domain.Account)
	return account
}

func (h *Handler) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			token = cookie.Value
		}

		sess, account, ok := h.Sessions.Resolve(token)
		if !ok {
			started := h.Sessions.Start()
			sess = &started
			setSessionCookie(w, started.Token)
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess.Token)
		if account != nil {
			ctx = context.WithValue(ctx, accountKey, account)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func hasRole(account *domain.Account, roles []domain.Role) bool {
	if account == nil {
		return false
	}
	for _, role := range roles {
		if account.Role == role {
			return true
		}
	}
	return false
}

// requireRole guards API endpoints: 401 when signed out, 403 for other roles.
func requireRole(next http.HandlerFunc, roles ...domain.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := AccountFrom(r.Context())
		if account == nil {
			writeError(w, http.StatusUnauthorized, "sign in required")
			return
		}
		if !hasRole(account, roles) {
			writeError(w, http.StatusForbidden, "you do not have access to this resource")
			return
		}
		next(w, r)
	}
}

// requireView guards page routes by sending visitors without the role to /login.
func requireView(next http.HandlerFunc, roles ...domain.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !hasRole(AccountFrom(r.Context()), roles) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
