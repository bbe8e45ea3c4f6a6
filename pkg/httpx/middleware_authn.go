package httpx

import (
	"context"
	"net/http"

	"github.com/scrob-fm/scrob/pkg/slogx"
)

// AuthenticateFunc resolves a raw Authorization header value into a
// principal. Implementations must fail uniformly for missing, malformed,
// unknown and revoked credentials.
type AuthenticateFunc func(ctx context.Context, authorization string) (Principal, error)

// AuthnMiddleware gates a handler behind bearer authentication. Every
// failure is a 401 with an RFC 6750 challenge; the cause is logged, not
// surfaced.
func AuthnMiddleware(authenticate AuthenticateFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			principal, err := authenticate(ctx, r.Header.Get("Authorization"))
			if err != nil {
				log.Warn("bearer authentication failed", "err", err)
				writeBearerError(w)
				return
			}

			ctx = ContextWithPrincipal(ctx, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects authenticated principals without the admin flag.
// Must sit inside AuthnMiddleware in the chain.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				writeBearerError(w)
				return
			}
			if !p.IsAdmin {
				WriteError(w, http.StatusForbidden, "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-compliant error response for bearer auth. Deliberately does
// not distinguish missing, malformed, unknown and revoked tokens.
func writeBearerError(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteError(w, http.StatusUnauthorized, "unauthorized")
}
