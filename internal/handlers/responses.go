package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"household-ledger/internal/errors"
	"household-ledger/internal/models"
	"household-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// Handlers report failures only through SendError, SendValidationError,
// SendServiceError and SendSystemError so every error body has the same
// shape and carries the request trace ID.

const (
	// TraceIDContextKey is the echo context key holding the request trace ID
	TraceIDContextKey = "trace_id"
	// UserIDContextKey is the echo context key holding the verified caller
	UserIDContextKey = "user_id"
)

// SuccessResponse wraps successful payloads
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is the standardized error body
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError writes the error body for code
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError writes a VALIDATION_001 body listing the failed fields
func SendValidationError(c echo.Context, fieldErrors map[string]string) error {
	errorResponse := errors.NewValidationError(fieldErrors, getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// SendSystemError hides err behind a SYSTEM_001 body and logs it
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.Error("Request failed",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", internalErr,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError maps an error returned by the ledger services to its API
// error code
func SendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrInvalidArgument):
		return SendError(c, invalidArgumentCode(err), errors.WithDetails(err.Error()))

	case stderrors.Is(err, services.ErrUnauthenticated):
		return SendError(c, errors.AuthMissingToken)

	case stderrors.Is(err, services.ErrBackendUnavailable):
		traceID := getTraceID(c)
		errorResponse, internalErr := errors.WrapUnavailableError(err, traceID)
		slog.Error("Ledger store unavailable",
			"trace_id", traceID,
			"path", c.Request().URL.Path,
			"error", internalErr,
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)

	default:
		return SendSystemError(c, err)
	}
}

func invalidArgumentCode(err error) errors.ErrorCode {
	switch {
	case stderrors.Is(err, models.ErrInvalidMonth):
		return errors.ValidationInvalidMonth
	case stderrors.Is(err, models.ErrEmptyWindow):
		return errors.LedgerEmptyWindow
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return errors.LedgerInvalidType
	case stderrors.Is(err, models.ErrMissingUserID):
		return errors.LedgerMissingOwner
	default:
		return errors.ValidationGeneral
	}
}
