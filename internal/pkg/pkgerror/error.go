package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates that the requested page or resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrMethodNotAllowed indicates the route exists but not for the request method.
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	TypeServer     Type = iota // Server-side errors (rendering, encoding, panics).
	TypeBusiness               // Expected conditions surfaced to the visitor.
	TypeValidation             // Malformed request input.
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to HTTP status codes.
type Code int

const (
	CodeInternal         Code = iota // Internal or unspecified error.
	CodeInvalidInput                 // Request input could not be used.
	CodeNotFound                     // No route or resource.
	CodeMethodNotAllowed             // Route exists for other methods only.
)

func (c Code) String() string {
	switch c {
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	case CodeMethodNotAllowed:
		return "ERROR_CODE_METHOD_NOT_ALLOWED"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error carrying a visitor-facing message, a type and a
// stable code. It may wrap an underlying error.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	switch e.errType {
	case TypeValidation:
		return "Validation violation"
	case TypeBusiness:
		return "Logical business not meet with requirement"
	default:
		return "Internal error"
	}
}

// String returns a verbose representation of the error for logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.err,
	)
}

// Msg returns the visitor-facing message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func new(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer creates a server-type error wrapping err.
func NewServer(err error) error {
	return new(err, "Internal server error", TypeServer, CodeInternal)
}

// NewBusiness creates a business-type error with the specified message and code.
func NewBusiness(msg string, code Code) error {
	return new(nil, msg, TypeBusiness, code)
}

// NewNotFound creates the error returned for unknown routes.
func NewNotFound() error {
	return new(ErrNotFound, "endpoint not found", TypeBusiness, CodeNotFound)
}

// NewMethodNotAllowed creates the error returned when a route exists for
// other methods only.
func NewMethodNotAllowed() error {
	return new(ErrMethodNotAllowed, "method not allowed", TypeBusiness, CodeMethodNotAllowed)
}

// NewInvalidInput creates a validation error wrapping err.
func NewInvalidInput(err error) error {
	return new(err, "validation error", TypeValidation, CodeInvalidInput)
}

// StatusCode returns the HTTP status for any error, defaulting to 500 for
// errors that are not *Error.
func StatusCode(err error) int {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.StatusCode()
	}
	return http.StatusInternalServerError
}
