package context

import (
	"context"

	"krisefikser/internal/domain/entity"
)

// KeyPrincipal is the key for storing the authenticated principal in context.
const KeyPrincipal ContextKey = "principal"

// Principal is the authenticated identity attached to a request after the
// access token has been verified. Roles come from the token claims, so
// authorization checks do not hit the database.
type Principal struct {
	Email string
	Roles entity.Roles
}

// HasRole reports whether the principal carries the given role.
func (p *Principal) HasRole(role entity.Role) bool {
	return p.Roles.Contains(role)
}

// WithPrincipal returns a new context with the principal.
func WithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// PrincipalFromContext extracts the principal from context.Context.
// Returns false when the request is unauthenticated.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(KeyPrincipal).(*Principal)
	if !ok || principal == nil {
		return nil, false
	}

	return principal, true
}
