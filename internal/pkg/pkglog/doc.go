// Package pkglog contains logging helpers used across the application.
//
// It is built around slog and keeps logs consistent by:
//   - Initializing a JSON handler with stable keys.
//   - Attaching the request trace identifier and, when an activity is
//     present, its trace and span ids to each log record.
package pkglog
