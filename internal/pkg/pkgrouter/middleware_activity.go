package pkgrouter

import (
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/tradewind/internal/pkg/pkgtrace"
)

func middlewareActivity(root bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var act *pkgtrace.Activity

			if header := r.Header.Get(pkgtrace.HeaderTraceparent); header != "" {
				parent, err := pkgtrace.ParseTraceparent(header)
				if err != nil {
					slog.DebugContext(r.Context(), "ignoring traceparent", "value", header, "error", err)
				} else {
					act = pkgtrace.Child(parent)
				}
			}
			if act == nil && root {
				act = pkgtrace.Start()
			}

			if act != nil {
				r = r.WithContext(pkgtrace.WithActivity(r.Context(), act))
			}

			next.ServeHTTP(w, r)
		})
	}
}
