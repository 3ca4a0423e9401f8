package pkgrouter

import (
	"net/http"
	"strconv"
	"time"
)

// CacheLocation says which caches may store a response.
type CacheLocation int

const (
	CacheLocationAny    CacheLocation = iota // Shared and private caches.
	CacheLocationClient                      // Only the client's private cache.
	CacheLocationNone                        // No cache may serve it without revalidation.
)

// ResponseCache describes the caching policy of a route.
type ResponseCache struct {
	Duration     time.Duration
	Location     CacheLocation
	NoStore      bool
	VaryByHeader string
}

// NoCache is the policy for responses that must never be stored.
var NoCache = ResponseCache{Location: CacheLocationNone, NoStore: true}

// Headers returns the Cache-Control and Pragma values for the policy. Pragma
// is empty unless the location is none.
func (c ResponseCache) Headers() (cacheControl, pragma string) {
	if c.Location == CacheLocationNone {
		pragma = "no-cache"
	}

	if c.NoStore {
		if c.Location == CacheLocationNone {
			return "no-store,no-cache", pragma
		}
		return "no-store", pragma
	}

	var prefix string
	switch c.Location {
	case CacheLocationClient:
		prefix = "private,"
	case CacheLocationNone:
		prefix = "no-cache,"
	default:
		prefix = "public,"
	}

	return prefix + "max-age=" + strconv.Itoa(int(c.Duration/time.Second)), pragma
}

// Middleware applies the policy before the handler runs.
func (c ResponseCache) Middleware() Middleware {
	cacheControl, pragma := c.Headers()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Cache-Control", cacheControl)
			if pragma != "" {
				h.Set("Pragma", pragma)
			}
			if c.VaryByHeader != "" {
				h.Set("Vary", c.VaryByHeader)
			}
			next.ServeHTTP(w, r)
		})
	}
}
