package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"household-ledger/internal/dto"
	"household-ledger/internal/errors"
	"household-ledger/internal/models"
	"household-ledger/internal/services"
	"household-ledger/internal/validation"

	"github.com/labstack/echo/v4"
)

// DevHandler serves development-only helpers. Routes are registered only
// when the server runs in the development environment.
type DevHandler struct {
	transactions services.TransactionServiceInterface
	tokens       services.TokenServiceInterface
	newGenerator func(seed uint64) services.SampleDataGeneratorInterface
	loc          *time.Location
}

// NewDevHandler creates a development handler
func NewDevHandler(
	transactions services.TransactionServiceInterface,
	tokens services.TokenServiceInterface,
	loc *time.Location,
) *DevHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &DevHandler{
		transactions: transactions,
		tokens:       tokens,
		newGenerator: services.NewSampleDataGenerator,
		loc:          loc,
	}
}

// IssueToken signs an access token for any user ID so the API can be used
// locally without an external identity provider.
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req dto.DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, validation.FieldErrors(err))
	}

	token, expiresAt, err := h.tokens.GenerateAccessToken(req.UserID, req.Email)
	if err != nil {
		return SendSystemError(c, err)
	}

	slog.Info("Issued development token",
		"trace_id", getTraceID(c),
		"user_id", req.UserID,
		"client_ip", getClientIP(c),
	)

	return c.JSON(http.StatusOK, dto.DevTokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}

// GenerateSampleData seeds the caller's ledger with realistic entries for a
// month, or for the whole year when month is 0.
//
// Method: POST /api/v1/dev/sample-data
// Authentication: Required
// Environment: Development only
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SampleDataRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, validation.FieldErrors(err))
	}

	seed := req.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	generator := h.newGenerator(seed)

	var entries []models.CreateTransactionParams
	if req.Month == 0 {
		entries = generator.GenerateYear(userID, req.Year, h.loc)
	} else {
		entries = generator.GenerateMonth(userID, req.Year, req.Month, h.loc)
	}

	ctx := c.Request().Context()
	created := 0
	for _, entry := range entries {
		if _, err := h.transactions.Create(ctx, entry); err != nil {
			slog.Warn("Sample data generation stopped",
				"trace_id", getTraceID(c),
				"user_id", userID,
				"created", created,
				"error", err,
			)
			return SendServiceError(c, err)
		}
		created++
	}

	return c.JSON(http.StatusCreated, dto.SampleDataResponse{
		UserID:  userID,
		Created: created,
	})
}
