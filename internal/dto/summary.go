package dto

import (
	"time"

	"household-ledger/internal/models"
)

// MonthlySummaryResponse is one of the twelve buckets of a yearly summary
type MonthlySummaryResponse struct {
	Month   int    `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// YearlySummaryResponse is the body of GET /api/v1/summary/yearly
type YearlySummaryResponse struct {
	Year         int                      `json:"year"`
	Months       []MonthlySummaryResponse `json:"months"`
	TotalIncome  string                   `json:"total_income"`
	TotalExpense string                   `json:"total_expense"`
	TotalBalance string                   `json:"total_balance"`
}

// CategoryTotalResponse is one row of a month's category breakdown
type CategoryTotalResponse struct {
	Category         string `json:"category"`
	Type             string `json:"type"`
	TransactionCount int64  `json:"transaction_count"`
	TotalAmount      string `json:"total_amount"`
}

// MonthlyReportResponse is the body of GET /api/v1/summary/monthly
type MonthlyReportResponse struct {
	Year         int                     `json:"year"`
	Month        int                     `json:"month"`
	StartDate    string                  `json:"start_date"`
	EndDate      string                  `json:"end_date"`
	Income       string                  `json:"income"`
	Expense      string                  `json:"expense"`
	Balance      string                  `json:"balance"`
	IncomeCount  int                     `json:"income_count"`
	ExpenseCount int                     `json:"expense_count"`
	Transactions []TransactionResponse   `json:"transactions"`
	Categories   []CategoryTotalResponse `json:"categories"`
}

// SampleDataRequest is the body of POST /api/v1/dev/sample-data.
// Month 0 seeds the whole year.
type SampleDataRequest struct {
	Year  int    `json:"year" validate:"required,gte=1970,lte=9999"`
	Month int    `json:"month" validate:"gte=0,lte=12"`
	Seed  uint64 `json:"seed"`
}

// SampleDataResponse reports how many entries were seeded
type SampleDataResponse struct {
	UserID  string `json:"user_id"`
	Created int    `json:"created"`
}

// DevTokenRequest is the body of POST /api/v1/dev/token
type DevTokenRequest struct {
	UserID string `json:"user_id" validate:"required,max=128"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
}

// DevTokenResponse carries a signed access token
type DevTokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// NewYearlySummaryResponse renders a yearly summary
func NewYearlySummaryResponse(summary *models.YearlySummary) YearlySummaryResponse {
	months := make([]MonthlySummaryResponse, 0, len(summary.Months))
	for _, m := range summary.Months {
		months = append(months, MonthlySummaryResponse{
			Month:   m.Month,
			Income:  m.Income.StringFixed(2),
			Expense: m.Expense.StringFixed(2),
			Balance: m.Balance.StringFixed(2),
		})
	}

	return YearlySummaryResponse{
		Year:         summary.Year,
		Months:       months,
		TotalIncome:  summary.TotalIncome.StringFixed(2),
		TotalExpense: summary.TotalExpense.StringFixed(2),
		TotalBalance: summary.TotalBalance.StringFixed(2),
	}
}

// NewMonthlyReportResponse renders a month report. EndDate is the last day
// inside the window, not the exclusive bound.
func NewMonthlyReportResponse(report *models.MonthlyReport, loc *time.Location) MonthlyReportResponse {
	categories := make([]CategoryTotalResponse, 0, len(report.Categories))
	for _, c := range report.Categories {
		categories = append(categories, CategoryTotalResponse{
			Category:         c.Category,
			Type:             c.Type,
			TransactionCount: c.TransactionCount,
			TotalAmount:      c.TotalAmount.StringFixed(2),
		})
	}

	return MonthlyReportResponse{
		Year:         report.Year,
		Month:        report.Month,
		StartDate:    report.StartDate.In(loc).Format(time.DateOnly),
		EndDate:      report.EndDate.In(loc).AddDate(0, 0, -1).Format(time.DateOnly),
		Income:       report.Totals.Income.StringFixed(2),
		Expense:      report.Totals.Expense.StringFixed(2),
		Balance:      report.Totals.Balance.StringFixed(2),
		IncomeCount:  report.Totals.IncomeCount,
		ExpenseCount: report.Totals.ExpenseCount,
		Transactions: NewTransactionResponses(report.Transactions, loc),
		Categories:   categories,
	}
}
