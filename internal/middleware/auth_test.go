package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"household-ledger/internal/config"
	"household-ledger/internal/errors"
	"household-ledger/internal/handlers"
	"household-ledger/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService = s.newTokenService(24 * time.Hour)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) newTokenService(duration time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: duration,
	})
}

// run invokes mw with an optional Authorization header and reports whether the
// downstream handler was reached
func (s *AuthMiddlewareSuite) run(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	reached := false
	handler := mw(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.Require().NoError(handler(c))
	return rec, c, reached
}

func (s *AuthMiddlewareSuite) assertCode(rec *httptest.ResponseRecorder, code errors.ErrorCode) {
	s.Equal(http.StatusUnauthorized, rec.Code)

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(code), body.Error.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token, _, err := s.tokenService.GenerateAccessToken("firebase-uid-123", "ana@example.com")
	s.Require().NoError(err)

	rec, c, reached := s.run(RequireAuth(s.tokenService), "Bearer "+token)

	s.True(reached)
	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("firebase-uid-123", c.Get(handlers.UserIDContextKey))
	s.Equal("ana@example.com", c.Get(UserEmailContextKey))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingHeader() {
	rec, _, reached := s.run(RequireAuth(s.tokenService), "")

	s.False(reached)
	s.assertCode(rec, errors.AuthMissingToken)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_BadFormat() {
	for _, header := range []string{"Token abc", "Bearer", "Basic dXNlcjpwYXNz"} {
		rec, _, reached := s.run(RequireAuth(s.tokenService), header)

		s.False(reached, header)
		s.assertCode(rec, errors.AuthInvalidTokenFormat)
	}
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidToken() {
	rec, _, reached := s.run(RequireAuth(s.tokenService), "Bearer not.a.jwt")

	s.False(reached)
	s.assertCode(rec, errors.AuthInvalidToken)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenFromAnotherKey() {
	token, _, err := s.newTokenService(time.Hour).GenerateAccessToken("firebase-uid-123", "")
	s.Require().NoError(err)

	rec, _, reached := s.run(RequireAuth(s.tokenService), "Bearer "+token)

	s.False(reached)
	s.assertCode(rec, errors.AuthInvalidToken)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	shortLived := s.newTokenService(time.Millisecond)
	token, _, err := shortLived.GenerateAccessToken("firebase-uid-123", "")
	s.Require().NoError(err)

	time.Sleep(10 * time.Millisecond)

	rec, _, reached := s.run(RequireAuth(shortLived), "Bearer "+token)

	s.False(reached)
	s.assertCode(rec, errors.AuthExpiredToken)
}

func (s *AuthMiddlewareSuite) TestOptionalAuth_Anonymous() {
	rec, c, reached := s.run(OptionalAuth(s.tokenService), "")

	s.True(reached)
	s.Equal(http.StatusNoContent, rec.Code)
	s.Nil(c.Get(handlers.UserIDContextKey))
}

func (s *AuthMiddlewareSuite) TestOptionalAuth_ValidToken() {
	token, _, err := s.tokenService.GenerateAccessToken("firebase-uid-123", "")
	s.Require().NoError(err)

	_, c, reached := s.run(OptionalAuth(s.tokenService), "Bearer "+token)

	s.True(reached)
	s.Equal("firebase-uid-123", c.Get(handlers.UserIDContextKey))
}

func (s *AuthMiddlewareSuite) TestOptionalAuth_InvalidTokenIsRejected() {
	rec, _, reached := s.run(OptionalAuth(s.tokenService), "Bearer garbage")

	s.False(reached)
	s.assertCode(rec, errors.AuthInvalidToken)
}
