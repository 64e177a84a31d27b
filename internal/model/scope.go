package model

import "context"

// Role is the caller's role carried in the access token.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Scope is the authenticated caller of a request.
type Scope struct {
	UserID string
	Role   Role
	IsDemo bool
}

// IsAdmin reports whether the caller may use admin-only routes.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// EffectiveUserID is the identity the advisor may act on. Demo callers
// have none.
func (s Scope) EffectiveUserID() string {
	if s.IsDemo {
		return ""
	}
	return s.UserID
}

type scopeKey struct{}

// SetScopeToContext attaches the authenticated caller to ctx.
func SetScopeToContext(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFromContext returns the caller stored by SetScopeToContext.
func ScopeFromContext(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(Scope)
	return s, ok
}
