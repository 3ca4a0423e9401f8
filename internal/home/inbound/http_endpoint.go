package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/tradewind/internal/home/view"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkglog"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkgrouter"
)

// Logger records diagnostic messages. *slog.Logger satisfies it.
type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
}

// HTTPEndpoint serves the home pages.
type HTTPEndpoint struct {
	log Logger
}

// NewHTTPEndpoint returns the endpoint. A nil log discards messages.
func NewHTTPEndpoint(log Logger) *HTTPEndpoint {
	if log == nil {
		log = pkglog.Discard()
	}
	return &HTTPEndpoint{log: log}
}

func (h *HTTPEndpoint) Index(context.Context, *http.Request) (pkgrouter.View, error) {
	return pkgrouter.View{Name: view.PageIndex}, nil
}

func (h *HTTPEndpoint) Privacy(context.Context, *http.Request) (pkgrouter.View, error) {
	return pkgrouter.View{Name: view.PagePrivacy}, nil
}

func (h *HTTPEndpoint) Error(ctx context.Context, _ *http.Request) (pkgrouter.View, error) {
	return h.ErrorFor(ctx, RequestContextFrom(ctx)), nil
}

// ErrorFor builds the error page for an explicit request context.
func (h *HTTPEndpoint) ErrorFor(ctx context.Context, rc RequestContext) pkgrouter.View {
	model := NewErrorViewModel(rc.RequestID())

	h.log.InfoContext(ctx, "rendering error page",
		"request_id", model.RequestIDValue(),
		"from_activity", rc.Activity != nil,
		"status", pkgrouter.FailureStatus(ctx),
	)

	return pkgrouter.View{Name: view.PageError, Model: model}
}
