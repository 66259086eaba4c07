package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"zoo/internal/auth"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/platform/httputil"
	"zoo/pkg/requestcontext"
)

// Authenticator resolves a session token to its principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Principal, error)
}

// RequireAdminSession admits requests carrying "Authorization: Bearer <token>"
// for a live administrator session.
func RequireAdminSession(authenticator Authenticator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized ops request - missing token",
					"path", r.URL.Path,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing or invalid Authorization header"))
				return
			}
			p, err := authenticator.Authenticate(ctx, token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized ops request - invalid session",
					"path", r.URL.Path,
					"request_id", requestcontext.RequestID(ctx),
					"error", err,
				)
				httputil.WriteError(w, err)
				return
			}
			if !p.IsAdmin() {
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "administrator role required"))
				return
			}
			ctx = requestcontext.WithActor(ctx, p.EmployeeID, p.Role)
			ctx = requestcontext.WithSessionID(ctx, p.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
