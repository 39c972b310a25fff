package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jrammler/storefront/internal/entity"
	"github.com/jrammler/storefront/internal/i18n"
)

const sessionCookieName = "session_token"

const requestIDHeader = "X-Request-ID"

type requestIDContextKey struct{}

type accountContextKey struct{}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

// accountFromContext returns the signed in account, or nil.
func accountFromContext(ctx context.Context) *entity.Account {
	account, _ := ctx.Value(accountContextKey{}).(*entity.Account)
	return account
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestContext tags the request with an id, the reader's language and
// the signed in account, then logs the outcome.
func (s *Server) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDContextKey{}, requestID)
		ctx = i18n.WithPrinter(ctx, i18n.Printer(i18n.ResolveTag(r)))
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			account, err := s.service.AuthService.GetSessionUser(ctx, cookie.Value)
			if err == nil {
				ctx = context.WithValue(ctx, accountContextKey{}, &account)
			}
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		slog.InfoContext(ctx, "Request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// requireAccount sends visitors without a session to the login modal.
func requireAccount(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if accountFromContext(r.Context()) == nil {
			http.Redirect(w, r, "/?modal=login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
