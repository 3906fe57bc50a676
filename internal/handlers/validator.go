package handlers

import (
	"household-ledger/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator adapts the ledger validator to echo.Validator
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator returns the echo validator used by all handlers
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements echo.Validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
