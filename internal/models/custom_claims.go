package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the claims carried by ledger access tokens. UserID
// is the opaque identity issued by the upstream authenticator.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}
