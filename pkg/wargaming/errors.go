package wargaming

import (
	"errors"
	"fmt"
	"net/http"
	"syscall"
)

// Error kinds. Use errors.Is against these to branch on the kind of failure and
// errors.As with *Error to get at the details.
var (
	// ErrTransport is a network or TLS level failure, no response was received.
	ErrTransport = errors.New("transport error")
	// ErrFormat means the response body is not a JSON envelope.
	ErrFormat = errors.New("wrong response format")
	// ErrApplication is a `status: "error"` envelope returned by the API.
	ErrApplication = errors.New("application error")
	// ErrNotFound means the envelope carried no known status, usually a wrong server
	// or namespace.
	ErrNotFound = errors.New("wrong server or namespace")
	// ErrConfig is returned eagerly when constructing servers and clients.
	ErrConfig = errors.New("invalid configuration")
)

// Error is returned by all client operations.
type Error struct {
	// Kind is one of the Err* kinds declared in this package.
	Kind error
	// Code is the error code: the API error code for application errors, 502/404 for
	// format and not found errors and the errno, when known, for transport errors.
	Code int
	// Message is human readable. Application errors are translated with TranslateError.
	Message string
	// ServerCode is the raw API error message, eg: REQUEST_LIMIT_EXCEEDED.
	ServerCode string
	// Field and Value are set by the API for parameter validation errors.
	Field     string
	Value     string
	Namespace string
	// Err is the underlying cause, if any.
	Err error
}

func newError(kind error, code int, message string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: cause}
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

func transportError(cause error) *Error {
	code := 0

	var errno syscall.Errno
	if errors.As(cause, &errno) {
		code = int(errno)
	}

	return newError(ErrTransport, code, cause.Error(), cause)
}

func formatError(cause error) *Error {
	return newError(ErrFormat, http.StatusBadGateway, "Wrong response format.", cause)
}

func notFoundError(namespace string) *Error {
	err := newError(ErrNotFound, http.StatusNotFound, "You set wrong server or namespace.", nil)
	err.Namespace = namespace

	return err
}

func applicationError(namespace string, body envelopeError) *Error {
	value := ""
	if body.Value != nil {
		value = fmt.Sprint(body.Value)
	}

	return &Error{
		Kind:       ErrApplication,
		Code:       body.Code,
		Message:    TranslateError(body.Message, namespace),
		ServerCode: body.Message,
		Field:      body.Field,
		Value:      value,
		Namespace:  namespace,
	}
}

// Code extracts the error code of err, or 0 when err is not an *Error.
func Code(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}

	return 0
}
