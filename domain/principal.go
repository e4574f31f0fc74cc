package domain

import "context"

// Principal is the authenticated caller taken from the access token
type Principal struct {
	UserID   string
	RoleName string
}

type principalKey struct{}

// WithPrincipal stores p in ctx for the use cases behind the auth middleware
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller stored by WithPrincipal
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok && p.UserID != ""
}
