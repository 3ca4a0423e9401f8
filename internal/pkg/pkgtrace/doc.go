// Package pkgtrace models the ambient operation trace (an "activity") that may
// accompany a request.
//
// An Activity follows the W3C Trace Context layout: a 16-byte trace id shared
// by every operation in a trace and an 8-byte span id for this operation. It
// travels explicitly in a context.Context; nothing here reads process-wide
// state.
package pkgtrace
