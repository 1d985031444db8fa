package middleware

import (
	"net/http"
	"strings"

	"github.com/bengkelpos/backend/api/responses"
	"github.com/bengkelpos/backend/internal/sessions"
	pkgerrors "github.com/bengkelpos/backend/pkg/errors"
	"github.com/bengkelpos/backend/pkg/logger"
)

// Auth validates a bearer session token and seeds the request context with
// the operator identity.
func Auth(checker sessions.Checker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only "Bearer <token>" is accepted; anything else never
			// reaches the session store.
			raw := r.Header.Get("Authorization")
			if !strings.HasPrefix(raw, "Bearer ") {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "No authorization token provided"))
				return
			}
			token := strings.TrimSpace(raw[7:])
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "No authorization token provided"))
				return
			}

			if checker == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session checker unavailable"))
				return
			}

			identity, err := checker.Validate(r.Context(), token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := WithUsername(r.Context(), identity.Username)
			ctx = WithFullName(ctx, identity.FullName)

			if logg != nil {
				ctx = logg.WithUsername(ctx, identity.Username)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
