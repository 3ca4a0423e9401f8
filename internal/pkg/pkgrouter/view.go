package pkgrouter

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/shandysiswandi/tradewind/internal/pkg/pkgerror"
)

// View is a render instruction: the page to render and its optional model.
type View struct {
	Name  string
	Model any
	// Status overrides the response status. Zero keeps the status chosen for
	// the request so far (200, or the failure status on the error page).
	Status int
}

// ViewHandler is the page-style handler used by this router.
type ViewHandler func(ctx context.Context, r *http.Request) (View, error)

// Renderer turns a view name and model into HTML.
type Renderer interface {
	Render(w io.Writer, name string, model any) error
}

// VIEW registers a GET page.
func (r *Router) VIEW(path string, rd Renderer, h ViewHandler, mws ...Middleware) {
	r.hr.Handler(http.MethodGet, path, Chain(r.view(rd, h), r.chain(mws)...))
}

// ErrorPage registers the page used to report failures, both as a regular
// GET route at path and as the target failed HTML requests are re-rendered
// through. Route middleware in mws applies in both cases.
func (r *Router) ErrorPage(path string, rd Renderer, h ViewHandler, mws ...Middleware) {
	r.errorPage = Chain(r.view(rd, h), mws...)
	r.VIEW(path, rd, h, mws...)
}

func (r *Router) view(rd Renderer, h ViewHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		v, err := h(ctx, req)
		if err != nil {
			r.fail(w, req, err, true)
			return
		}

		var buf bytes.Buffer
		if err := rd.Render(&buf, v.Name, v.Model); err != nil {
			r.fail(w, req, pkgerror.NewServer(err), true)
			return
		}

		status := v.Status
		if status == 0 {
			status = http.StatusOK
			if s, ok := statusFromContext(ctx); ok {
				status = s
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = buf.WriteTo(w)
	})
}

type statusContextKey struct{}

func withStatus(ctx context.Context, status int) context.Context {
	return context.WithValue(ctx, statusContextKey{}, status)
}

// statusFromContext reports the failure status when the request is being
// re-rendered through the error page.
func statusFromContext(ctx context.Context) (int, bool) {
	s, ok := ctx.Value(statusContextKey{}).(int)
	return s, ok
}

// FailureStatus returns the status code of the failure that routed this
// request to the error page, or 0 for a direct request.
func FailureStatus(ctx context.Context) int {
	s, _ := statusFromContext(ctx)
	return s
}
