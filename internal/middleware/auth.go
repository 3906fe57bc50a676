package middleware

import (
	stderrors "errors"

	"household-ledger/internal/errors"
	"household-ledger/internal/handlers"
	"household-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// UserEmailContextKey holds the email claim of the authenticated caller
const UserEmailContextKey = "user_email"

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's identity on the context
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}
			if code, ok := authenticate(c, tokenService, authHeader); !ok {
				return handlers.SendError(c, code)
			}
			return next(c)
		}
	}
}

// OptionalAuth lets anonymous requests through. A token that is present but
// invalid is still rejected.
func OptionalAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}
			if code, ok := authenticate(c, tokenService, authHeader); !ok {
				return handlers.SendError(c, code)
			}
			return next(c)
		}
	}
}

func authenticate(c echo.Context, tokenService services.TokenServiceInterface, authHeader string) (errors.ErrorCode, bool) {
	token, err := tokenService.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return errors.AuthInvalidTokenFormat, false
	}

	claims, err := tokenService.ValidateAccessToken(token)
	if err != nil {
		if stderrors.Is(err, services.ErrExpiredToken) {
			return errors.AuthExpiredToken, false
		}
		return errors.AuthInvalidToken, false
	}

	c.Set(handlers.UserIDContextKey, claims.UserID)
	c.Set(UserEmailContextKey, claims.Email)
	return "", true
}
