package api

import (
	"context"
)

type ctxKey string

const routeKey ctxKey = "clientRoute"

// WithRoute records the view route that initiated the request. The 401
// handler uses it as the post-login return target.
func WithRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, routeKey, route)
}

// RouteFrom returns the initiating route, or "/" when none was attached.
func RouteFrom(ctx context.Context) string {
	if r, ok := ctx.Value(routeKey).(string); ok && r != "" {
		return r
	}
	return "/"
}
