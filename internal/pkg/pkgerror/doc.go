// Package pkgerror defines shared error types and sentinel errors.
//
// Handlers return these errors and the router maps them to HTTP status codes,
// either as a JSON envelope or by re-rendering the error page.
package pkgerror
