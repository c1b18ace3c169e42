package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
	"github.com/Deepika-Sisodia/quote-verse/internal/platform/logging"
)

// MapDomainError maps a domain error to an HTTP status and error body.
// Unknown errors become 500 with a generic message so internals never
// leak to clients.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsInvalidID(err):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeInvalidID, err.Error())

	case domain.IsInvalidQuery(err):
		resp := NewErrorResponse(ErrorCodeInvalidQuery, err.Error())

		var queryErr *domain.InvalidQueryError
		if errors.As(err, &queryErr) {
			resp.Error.Details = map[string]string{
				queryErr.Param: queryErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsUnauthorized(err):
		return http.StatusUnauthorized, NewErrorResponse(ErrorCodeUnauthorized, err.Error())

	case domain.IsForbidden(err):
		return http.StatusForbidden, NewErrorResponse(ErrorCodeForbidden, err.Error())

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, err.Error())

	default:
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal, "an internal error occurred")
	}
}

// HandleError writes the mapped error response, tagging it with the
// trace ID and logging internal errors in full.
func HandleError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)

	errResp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("internal error",
			"error", err.Error(),
			"trace_id", errResp.TraceID,
		)
	}

	c.JSON(status, errResp)
}

// HandleBindingError writes a 400 response for a failed bind, with
// field-level details when the failure came from struct validation.
func HandleBindingError(c *gin.Context, err error) {
	if IsValidationError(err) {
		errResp := NewErrorResponseWithDetails(
			ErrorCodeValidation,
			"request validation failed",
			ValidationErrors(err),
		)
		errResp.TraceID = GetTraceID(c)

		c.JSON(http.StatusBadRequest, errResp)

		return
	}

	errResp := NewErrorResponse(ErrorCodeBadRequest, "invalid request body")
	errResp.TraceID = GetTraceID(c)

	c.JSON(http.StatusBadRequest, errResp)
}

// GetTraceID returns the current OpenTelemetry trace ID, or empty.
func GetTraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}
