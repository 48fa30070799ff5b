package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"orderflow/internal/pkg/errs"
)

// ErrorResponse is the JSON envelope for every error returned by the API.
type ErrorResponse struct {
	Timestamp   time.Time    `json:"timestamp"`
	Status      int          `json:"status"`
	Error       string       `json:"error"`
	Message     string       `json:"message"`
	Path        string       `json:"path"`
	FieldErrors []FieldError `json:"fieldErrors,omitempty"`
}

// FieldError points a validation message at the offending request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeError maps a use case error to an HTTP response. Not-found errors map
// to 404, validation and business rule errors to 400, everything else to 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"
	var fieldErrors []FieldError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrBusinessRuleViolation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = "validation failed"
		fieldErrors = collectFieldErrors(err)
	}

	return ctx.JSON(status, ErrorResponse{
		Timestamp:   time.Now().UTC(),
		Status:      status,
		Error:       http.StatusText(status),
		Message:     message,
		Path:        ctx.Request().URL.Path,
		FieldErrors: fieldErrors,
	})
}

// writeBadRequest reports a malformed request that never reached validation,
// such as an unparsable body or path parameter.
func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusBadRequest,
		Error:     http.StatusText(http.StatusBadRequest),
		Message:   message,
		Path:      ctx.Request().URL.Path,
	})
}

// collectFieldErrors flattens joined validation errors into per-field
// messages. Commands validate all fields with errors.Join, so one response
// can report every bad field at once.
func collectFieldErrors(err error) []FieldError {
	fieldErrors := make([]FieldError, 0)

	var visit func(error)
	visit = func(current error) {
		if current == nil {
			return
		}

		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				visit(inner)
			}
			return
		}

		var required *errs.ValueIsRequiredError
		if errors.As(current, &required) {
			fieldErrors = append(fieldErrors, FieldError{Field: required.ParamName, Message: "is required"})
			return
		}

		var invalid *errs.ValueIsInvalidError
		if errors.As(current, &invalid) {
			fieldErrors = append(fieldErrors, FieldError{Field: invalid.ParamName, Message: "is invalid"})
			return
		}

		var outOfRange *errs.ValueIsOutOfRangeError
		if errors.As(current, &outOfRange) {
			fieldErrors = append(fieldErrors, FieldError{Field: outOfRange.ParamName, Message: "is out of range"})
		}
	}
	visit(err)

	return fieldErrors
}
