package handlers

import (
	"net/http"
	"time"

	"household-ledger/internal/dto"
	"household-ledger/internal/errors"
	"household-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// SummaryHandler serves the month and year aggregation endpoints
type SummaryHandler struct {
	summaries services.SummaryServiceInterface
	loc       *time.Location
}

// NewSummaryHandler creates a summary handler
func NewSummaryHandler(summaries services.SummaryServiceInterface, loc *time.Location) *SummaryHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &SummaryHandler{
		summaries: summaries,
		loc:       loc,
	}
}

// GetYearlySummary returns twelve monthly buckets and year totals. Anonymous
// callers receive an all-zero year unless strict identity is configured.
// @Summary Yearly summary
// @Tags Summaries
// @Produce json
// @Param year query int false "Calendar year, defaults to the current year"
// @Success 200 {object} dto.YearlySummaryResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid year"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Strict identity and no caller"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Ledger storage unavailable"
// @Router /summary/yearly [get]
func (h *SummaryHandler) GetYearlySummary(c echo.Context) error {
	currentYear, _ := currentYearMonth(h.loc)
	year, err := queryInt(c, "year", currentYear)
	if err != nil {
		return sendQueryError(c, err)
	}

	summary, err := h.summaries.YearlyReport(c.Request().Context(), optionalUserID(c), year)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewYearlySummaryResponse(summary))
}

// GetMonthlyReport returns one month's entries with totals and a category
// breakdown
// @Summary Monthly report
// @Tags Summaries
// @Security BearerAuth
// @Produce json
// @Param year query int false "Calendar year, defaults to the current year"
// @Param month query int false "Calendar month 1-12, defaults to the current month"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Month out of range"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Ledger storage unavailable"
// @Router /summary/monthly [get]
func (h *SummaryHandler) GetMonthlyReport(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	currentYear, currentMonth := currentYearMonth(h.loc)
	year, err := queryInt(c, "year", currentYear)
	if err != nil {
		return sendQueryError(c, err)
	}
	month, err := queryInt(c, "month", currentMonth)
	if err != nil {
		return sendQueryError(c, err)
	}

	report, err := h.summaries.MonthlyReport(c.Request().Context(), userID, year, month)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMonthlyReportResponse(report, h.loc))
}
