package auth

import (
	"context"
	"time"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal identifies the authenticated caller of a request
type Principal struct {
	Subject   string
	TokenID   string
	ExpiresAt time.Time
}

// WithPrincipal stores the principal in the context
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext returns the principal stored by the auth middleware
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok && p != nil
}
