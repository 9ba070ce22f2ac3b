package http

import (
	"context"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/domain"
)

type ctxKey struct{}

func contextWithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// userFromContext returns the authenticated user placed there by the
// session middleware. ok is false for anonymous requests.
func userFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxKey{}).(domain.User)
	return u, ok
}
