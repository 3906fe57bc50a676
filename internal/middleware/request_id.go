package middleware

import (
	"household-ledger/internal/handlers"
	"household-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceIDHeader is the header name for the trace ID
const TraceIDHeader = "X-Trace-ID"

// RequestID assigns each request a trace ID, reusing the caller's when one is
// supplied. The ID is echoed in the response header, stored on the Echo
// context and attached to the request context for service-level logging.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(handlers.TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(services.WithTraceID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID or "" when none was assigned
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(handlers.TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
