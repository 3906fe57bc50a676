package handlers

import (
	"fmt"
	"net/http"
	"time"

	"household-ledger/internal/dto"
	"household-ledger/internal/errors"
	"household-ledger/internal/models"
	"household-ledger/internal/services"
	"household-ledger/internal/validation"

	"github.com/labstack/echo/v4"
)

// TransactionHandler serves ledger entry endpoints
type TransactionHandler struct {
	transactions services.TransactionServiceInterface
	loc          *time.Location
}

// NewTransactionHandler creates a transaction handler. Dates in requests and
// responses are calendar days in loc.
func NewTransactionHandler(transactions services.TransactionServiceInterface, loc *time.Location) *TransactionHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &TransactionHandler{
		transactions: transactions,
		loc:          loc,
	}
}

// CreateTransaction records a new income or expense entry for the caller
// @Summary Create transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Entry"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Ledger storage unavailable"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		if fieldErrors := validation.FieldErrors(err); fieldErrors != nil {
			return SendValidationError(c, fieldErrors)
		}
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	date, err := parseCalendarDate(req.Date, h.loc)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("date: must be a date in YYYY-MM-DD format"))
	}

	created, err := h.transactions.Create(c.Request().Context(), models.CreateTransactionParams{
		UserID:   userID,
		Type:     req.Type,
		Amount:   req.Amount,
		Category: req.Category,
		Memo:     req.Memo,
		Date:     date,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(*created, h.loc))
}

// ListTransactions returns the caller's entries for one window, oldest first.
// The window is start_date/end_date (end exclusive) when both are given,
// otherwise year and month, otherwise the whole year; with no parameters the
// current month is listed.
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param year query int false "Calendar year"
// @Param month query int false "Calendar month 1-12"
// @Param start_date query string false "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string false "Exclusive end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid window"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Ledger storage unavailable"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.ListTransactionsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("year and month must be integers"))
	}

	start, end, err := h.resolveWindow(&query)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	ctx := c.Request().Context()
	var transactions []models.Transaction
	switch {
	case !start.IsZero():
		transactions, err = h.transactions.FetchByRange(ctx, userID, start, end)
	case query.Month != 0:
		transactions, err = h.transactions.FetchByMonth(ctx, userID, query.Year, query.Month)
		if err == nil {
			window, _ := models.MonthWindow(userID, query.Year, query.Month, h.loc)
			start, end = window.Start, window.End
		}
	default:
		transactions, err = h.transactions.FetchByYear(ctx, userID, query.Year)
		if err == nil {
			window := models.YearWindow(userID, query.Year, h.loc)
			start, end = window.Start, window.End
		}
	}
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		StartDate:    start.In(h.loc).Format(time.DateOnly),
		EndDate:      end.In(h.loc).Format(time.DateOnly),
		Transactions: dto.NewTransactionResponses(transactions, h.loc),
		Totals:       dto.NewPeriodTotalsResponse(models.NewPeriodTotals(transactions)),
	})
}

// resolveWindow fills in defaults and parses an explicit date range. A zero
// start means the year/month fields select the window.
func (h *TransactionHandler) resolveWindow(query *dto.ListTransactionsQuery) (time.Time, time.Time, error) {
	if query.StartDate != "" || query.EndDate != "" {
		if query.StartDate == "" || query.EndDate == "" {
			return time.Time{}, time.Time{}, fmt.Errorf("start_date and end_date must be given together")
		}
		start, err := parseCalendarDate(query.StartDate, h.loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("start_date: must be a date in YYYY-MM-DD format")
		}
		end, err := parseCalendarDate(query.EndDate, h.loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end_date: must be a date in YYYY-MM-DD format")
		}
		return start, end, nil
	}

	if query.Year == 0 {
		year, month := currentYearMonth(h.loc)
		query.Year = year
		if query.Month == 0 {
			query.Month = month
		}
	}
	return time.Time{}, time.Time{}, nil
}
