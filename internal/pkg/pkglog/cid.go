package pkglog

import "context"

type correlationIDContextKey struct{}

// GetCorrelationID returns the request trace identifier stored in the context.
//
// Middleware sets this early in the request lifecycle. The result is "" when
// no identifier was assigned, which callers treat as a valid, empty value.
func GetCorrelationID(ctx context.Context) string {
	cid, _ := ctx.Value(correlationIDContextKey{}).(string)
	return cid
}

// SetCorrelationID stores a request trace identifier into the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDContextKey{}, cid)
}
