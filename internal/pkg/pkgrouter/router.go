package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkgerror"
)

// Handler is the JSON-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr        *httprouter.Router
	mws       []Middleware
	errorPage http.Handler
}

// Option customizes NewRouter.
type Option func(*options)

type options struct {
	rootActivity bool
}

// WithRootActivity starts a new activity for requests that arrive without a
// traceparent header. Requests carrying a valid traceparent always get a
// child activity.
func WithRootActivity(enabled bool) Option {
	return func(o *options) {
		o.rootActivity = enabled
	}
}

// NewRouter builds the default application router with standard middleware.
//
// uuid assigns the request trace identifier when the caller sent none.
func NewRouter(uuid Generator, opts ...Option) *Router {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ro := &Router{
		hr: &httprouter.Router{
			RedirectTrailingSlash:  true,
			RedirectFixedPath:      true,
			HandleMethodNotAllowed: true,
			HandleOPTIONS:          true,
			SaveMatchedRoutePath:   true,
		},
	}
	ro.mws = []Middleware{
		middlewareCorrelationID(uuid),
		middlewareActivity(o.rootActivity),
		middlewareRecoverer(ro),
		middlewareLogging,
	}

	ro.hr.NotFound = Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ro.fail(w, r, pkgerror.NewNotFound(), wantsHTML(r))
	}), ro.mws...)
	ro.hr.MethodNotAllowed = Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ro.fail(w, r, pkgerror.NewMethodNotAllowed(), wantsHTML(r))
	}), ro.mws...)

	ro.GET("/health", func(context.Context, *http.Request) (any, error) {
		return messageResponse{Message: "server is running well"}, nil
	})

	return ro
}

// GET registers a JSON endpoint.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.hr.Handler(http.MethodGet, path, Chain(http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(re.Context(), re)
		if err != nil {
			r.fail(w, re, err, false)
			return
		}
		writeJSON(w, resp, http.StatusOK)
	}), r.chain(mws)...))
}

// Handle registers a raw http.Handler with the router.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(h, r.chain(mws)...))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

func (r *Router) chain(mws []Middleware) []Middleware {
	all := make([]Middleware, 0, len(r.mws)+len(mws))
	all = append(all, r.mws...)
	return append(all, mws...)
}

// fail reports err to the client. HTML failures are re-rendered through the
// registered error page with the mapped status code; everything else gets the
// JSON envelope.
func (r *Router) fail(w http.ResponseWriter, req *http.Request, err error, html bool) {
	ctx := req.Context()
	status := pkgerror.StatusCode(err)

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "status", status, "error", err)
	} else {
		slog.WarnContext(ctx, "request rejected", "status", status, "error", err)
	}

	if html && r.errorPage != nil {
		if _, rendering := statusFromContext(ctx); rendering {
			http.Error(w, http.StatusText(status), status)
			return
		}
		r.errorPage.ServeHTTP(w, req.WithContext(withStatus(ctx, status)))
		return
	}

	msg := "Internal server error"
	var gerr *pkgerror.Error
	if errors.As(err, &gerr) && gerr.Msg() != "" {
		msg = gerr.Msg()
	}
	writeJSON(w, messageResponse{Message: msg}, status)
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
	}
}
