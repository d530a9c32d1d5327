package tenancy

import (
	"context"
)

type scopeKey struct{}

type scope struct {
	tenantID   string
	restricted bool
}

// WithTenant returns a context whose queries are restricted to the given
// tenant. The returned context governs the dynamic extent it is passed
// through; the caller's own context keeps the prior scope, so "releasing"
// a scope is simply returning to the caller's context. This holds across
// nesting, goroutine handoff and cancellation.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope{tenantID: tenantID, restricted: true})
}

// WithoutTenant returns a context with an explicitly unrestricted scope.
// It shadows any tenant established by an enclosing WithTenant, which is
// how administrative code paths opt out of row filtering.
func WithoutTenant(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope{})
}

// FromContext reports the tenant governing ctx. ok is false when the scope
// is unrestricted, either because no scope was ever established or because
// WithoutTenant was applied.
func FromContext(ctx context.Context) (tenantID string, ok bool) {
	s, present := ctx.Value(scopeKey{}).(scope)
	if !present || !s.restricted {
		return "", false
	}
	return s.tenantID, true
}
