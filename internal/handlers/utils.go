package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"household-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when no verified caller is attached to the request
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns the caller set by the auth middleware
func getUserIDFromContext(c echo.Context) (string, error) {
	userID, ok := c.Get(UserIDContextKey).(string)
	if !ok || userID == "" {
		return "", ErrUnauthorized
	}
	return userID, nil
}

// optionalUserID returns the caller or "" for anonymous requests
func optionalUserID(c echo.Context) string {
	userID, _ := getUserIDFromContext(c)
	return userID
}

// queryInt parses an integer query parameter. A missing parameter yields
// defaultValue; a malformed one is an error.
func queryInt(c echo.Context, name string, defaultValue int) (int, error) {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return value, nil
}

// parseCalendarDate reads a YYYY-MM-DD value as midnight in loc
func parseCalendarDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, strings.TrimSpace(value), loc)
}

// currentYearMonth returns today's year and month in loc
func currentYearMonth(loc *time.Location) (int, int) {
	now := time.Now().In(loc)
	return now.Year(), int(now.Month())
}

func sendQueryError(c echo.Context, err error) error {
	return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
}

func getClientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}
