// Package pkgrouter wraps HTTP routing and common middleware used by the site.
//
// It provides a small router abstraction over httprouter for two kinds of
// routes: JSON endpoints and server-rendered pages. Shared concerns live in
// middleware: panic recovery, request trace identifiers, ambient activities
// from W3C traceparent headers, request logging and per-route cache policy.
// Failed page requests are re-rendered through a registered error page.
package pkgrouter
