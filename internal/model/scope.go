package model

import (
	"context"

	"smart-todo/pkg/scope"
)

// Scope identifies the authenticated caller of a use case.
type Scope struct {
	UserID               string
	Email                string
	ProviderToken        string
	ProviderRefreshToken string
}

// NewScope builds a Scope from a verified session payload.
func NewScope(p scope.Payload) Scope {
	return Scope{
		UserID: p.UserID,
		Email:  p.Email,
	}
}

type scopeCtxKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the Scope stored by the auth middleware.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok && sc.UserID != ""
}
