package httpx

import "context"

// Principal is the authenticated identity attached to a request after
// bearer resolution succeeds.
type Principal struct {
	ID       string
	Username string
	IsAdmin  bool
}

type ctxKey string

const ctxKeyPrincipal ctxKey = "principal"

// ContextWithPrincipal returns ctx carrying the authenticated principal.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal, p)
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKeyPrincipal).(Principal)
	return p, ok
}
