package inbound

import (
	"context"

	"github.com/shandysiswandi/tradewind/internal/pkg/pkglog"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkgtrace"
)

// ErrorViewModel is the model of the error page.
type ErrorViewModel struct {
	// RequestID is nil when no identifier was resolved.
	RequestID *string
}

// NewErrorViewModel returns a model carrying requestID, which may be empty.
func NewErrorViewModel(requestID string) ErrorViewModel {
	return ErrorViewModel{RequestID: &requestID}
}

// ShowRequestID reports whether the page should display the request id. Only
// a nil or zero-length id is hidden; whitespace is shown as-is.
func (m ErrorViewModel) ShowRequestID() bool {
	return m.RequestID != nil && *m.RequestID != ""
}

// RequestIDValue returns the request id, or "" when it is nil.
func (m ErrorViewModel) RequestIDValue() string {
	if m.RequestID == nil {
		return ""
	}
	return *m.RequestID
}

// RequestContext is what a request exposes for resolving its identifier.
type RequestContext struct {
	// Activity is the ambient operation trace, if one is active.
	Activity *pkgtrace.Activity
	// TraceIdentifier is the request's own identifier; it may be empty.
	TraceIdentifier string
}

// RequestContextFrom reads the request context populated by the router
// middleware.
func RequestContextFrom(ctx context.Context) RequestContext {
	act, _ := pkgtrace.FromContext(ctx)
	return RequestContext{
		Activity:        act,
		TraceIdentifier: pkglog.GetCorrelationID(ctx),
	}
}

// RequestID prefers the ambient activity id and falls back to the request's
// own identifier.
func (rc RequestContext) RequestID() string {
	if rc.Activity != nil {
		return rc.Activity.ID()
	}
	return rc.TraceIdentifier
}
