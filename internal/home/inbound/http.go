package inbound

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/shandysiswandi/tradewind/internal/pkg/pkgrouter"
)

// RegisterHTTPEndpoint mounts the home pages and their static assets.
func RegisterHTTPEndpoint(r *pkgrouter.Router, rd pkgrouter.Renderer, static fs.FS, end *HTTPEndpoint) {
	r.VIEW("/", rd, end.Index)
	r.VIEW("/Home", rd, end.Index)
	r.VIEW("/Home/Index", rd, end.Index)

	r.VIEW("/Home/Privacy", rd, end.Privacy)
	r.VIEW("/Privacy", rd, end.Privacy)

	r.ErrorPage("/Home/Error", rd, end.Error, pkgrouter.NoCache.Middleware())
	r.VIEW("/Error", rd, end.Error, pkgrouter.NoCache.Middleware())

	assets := pkgrouter.ResponseCache{Duration: time.Hour, Location: pkgrouter.CacheLocationAny}
	r.Handle(http.MethodGet, "/css/*filepath", http.FileServerFS(static), assets.Middleware())
}
