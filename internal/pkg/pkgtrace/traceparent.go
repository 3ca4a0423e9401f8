package pkgtrace

import (
	"errors"
	"strconv"
	"strings"
)

// HeaderTraceparent carries the caller's trace context.
const HeaderTraceparent = "traceparent"

var (
	// ErrInvalidTraceparent is returned for header values that do not follow
	// the W3C trace context format.
	ErrInvalidTraceparent = errors.New("invalid traceparent")
)

// ParseTraceparent parses a W3C traceparent header value into the remote
// parent activity.
//
// Versions other than 00 are accepted when the first four fields parse, as
// the format requires; version ff is always invalid.
func ParseTraceparent(v string) (*Activity, error) {
	v = strings.TrimSpace(v)
	parts := strings.Split(v, "-")
	if len(parts) < 4 {
		return nil, ErrInvalidTraceparent
	}

	version, traceID, spanID, flags := parts[0], parts[1], parts[2], parts[3]
	if !isLowerHex(version, 2) || version == "ff" {
		return nil, ErrInvalidTraceparent
	}
	if version == traceVersion && len(parts) != 4 {
		return nil, ErrInvalidTraceparent
	}
	if !isLowerHex(traceID, 32) || isZero(traceID) {
		return nil, ErrInvalidTraceparent
	}
	if !isLowerHex(spanID, 16) || isZero(spanID) {
		return nil, ErrInvalidTraceparent
	}
	if !isLowerHex(flags, 2) {
		return nil, ErrInvalidTraceparent
	}

	f, err := strconv.ParseUint(flags, 16, 8)
	if err != nil {
		return nil, ErrInvalidTraceparent
	}

	return &Activity{
		TraceID: traceID,
		SpanID:  spanID,
		Flags:   byte(f),
	}, nil
}

func isLowerHex(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func isZero(s string) bool {
	return strings.Trim(s, "0") == ""
}
