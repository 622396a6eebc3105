package ctxdata

import (
	"context"

	"github.com/Franco-15/classroom-backend/internal/domain"
)

type traceIDKey struct{}
type principalKey struct{}

var (
	traceIDKeyInstance   = traceIDKey{}
	principalKeyInstance = principalKey{}
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKeyInstance)
	traceID, ok := v.(string)
	return traceID, ok
}

func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKeyInstance, p)
}

// GetPrincipal returns the authenticated principal, if any. Handlers behind
// the auth middleware may assume ok; optional-auth paths must check it.
func GetPrincipal(ctx context.Context) (domain.Principal, bool) {
	v := ctx.Value(principalKeyInstance)
	p, ok := v.(domain.Principal)
	return p, ok
}
