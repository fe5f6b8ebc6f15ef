package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const (
	CodeValidation         = "validation_failed"
	CodeNotFound           = "not_found"
	CodeForbidden          = "forbidden"
	CodeUnauthorized       = "unauthorized"
	CodeConflict           = "invalid_transition"
	CodeAggregationFailed  = "aggregation_failed"
	CodeAggregationTimeout = "aggregation_timeout"
	CodeInternal           = "internal_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
	// Fields lists every offending input field for validation failures.
	Fields    []string
	Retryable bool
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func BadRequest(code string, err error) *Error {
	return New(http.StatusBadRequest, code, err)
}

// Validation reports all missing or malformed fields at once.
func Validation(fields ...string) *Error {
	sorted := append([]string(nil), fields...)
	sort.Strings(sorted)
	return &Error{
		Status: http.StatusBadRequest,
		Code:   CodeValidation,
		Err:    fmt.Errorf("invalid or missing fields: %s", strings.Join(sorted, ", ")),
		Fields: sorted,
	}
}

func NotFound(what string) *Error {
	return New(http.StatusNotFound, CodeNotFound, fmt.Errorf("%s not found", what))
}

func Forbidden(msg string) *Error {
	return New(http.StatusForbidden, CodeForbidden, errors.New(msg))
}

func Unauthorized(msg string) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, errors.New(msg))
}

func Conflict(msg string) *Error {
	return New(http.StatusConflict, CodeConflict, errors.New(msg))
}

func AggregationFailure(err error) *Error {
	return New(http.StatusInternalServerError, CodeAggregationFailed, fmt.Errorf("analytics aggregation failed: %w", err))
}

func AggregationTimeout(err error) *Error {
	e := New(http.StatusServiceUnavailable, CodeAggregationTimeout, fmt.Errorf("analytics aggregation timed out: %w", err))
	e.Retryable = true
	return e
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae, true
	}
	return nil, false
}

// HasCode reports whether err carries the given api error code.
func HasCode(err error, code string) bool {
	ae, ok := As(err)
	return ok && ae.Code == code
}
