// Package apperr defines the error taxonomy shared by adapters, services and
// handlers. Handlers translate these into HTTP responses via Status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ValidationError reports every offending field at once so the client can
// highlight all of them in a single round trip.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

// NotFoundError marks a missing gencode, sheet row, drive file or folder.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// UpstreamError wraps a third-party store or API failure. The original cause
// is preserved for the `details` field of the 500 response body.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// AuthorizationError marks an action the actor's group or approval level may
// not perform.
type AuthorizationError struct {
	Action string
}

func (e *AuthorizationError) Error() string {
	return "not authorized to perform " + e.Action
}

// Validation builds a ValidationError from the offending field names.
func Validation(fields ...string) error {
	return &ValidationError{Fields: fields}
}

// NotFound builds a NotFoundError.
func NotFound(resource, key string) error {
	return &NotFoundError{Resource: resource, Key: key}
}

// Upstream wraps err as an UpstreamError for operation op.
func Upstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

// Unauthorized builds an AuthorizationError for the given action.
func Unauthorized(action string) error {
	return &AuthorizationError{Action: action}
}

// Status maps an error to its HTTP status code. Unknown errors are treated
// as upstream failures.
func Status(err error) int {
	var (
		ve *ValidationError
		nf *NotFoundError
		ae *AuthorizationError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ae):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
