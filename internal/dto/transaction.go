package dto

import (
	"time"

	"household-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the body of POST /api/v1/transactions.
// Amount accepts either a JSON number or a decimal string.
type CreateTransactionRequest struct {
	Type     string          `json:"type" validate:"required,transaction_type"`
	Amount   decimal.Decimal `json:"amount" validate:"positive_amount"`
	Category string          `json:"category" validate:"required,max=50"`
	Memo     *string         `json:"memo,omitempty" validate:"omitempty,max=500"`
	Date     string          `json:"date" validate:"required,calendar_date"`
}

// ListTransactionsQuery selects the window of GET /api/v1/transactions.
// Either year and month, year alone, or start_date and end_date.
type ListTransactionsQuery struct {
	Year      int    `query:"year"`
	Month     int    `query:"month"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// TransactionResponse is the wire form of a ledger entry
type TransactionResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Memo      string    `json:"memo"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// PeriodTotalsResponse mirrors models.PeriodTotals with string amounts
type PeriodTotalsResponse struct {
	Income           string `json:"income"`
	Expense          string `json:"expense"`
	Balance          string `json:"balance"`
	TransactionCount int    `json:"transaction_count"`
}

// ListTransactionsResponse is the body of GET /api/v1/transactions
type ListTransactionsResponse struct {
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	Transactions []TransactionResponse `json:"transactions"`
	Totals       PeriodTotalsResponse  `json:"totals"`
}

// NewTransactionResponse renders t with its date as a calendar day in loc
func NewTransactionResponse(t models.Transaction, loc *time.Location) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Type:      t.Type,
		Amount:    t.Amount.StringFixed(2),
		Category:  t.Category,
		Memo:      t.Memo,
		Date:      t.Date.In(loc).Format(time.DateOnly),
		CreatedAt: t.CreatedAt,
	}
}

// NewTransactionResponses maps a slice, never returning nil
func NewTransactionResponses(transactions []models.Transaction, loc *time.Location) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, NewTransactionResponse(t, loc))
	}
	return out
}

// NewPeriodTotalsResponse renders totals with two decimal places
func NewPeriodTotalsResponse(totals models.PeriodTotals) PeriodTotalsResponse {
	return PeriodTotalsResponse{
		Income:           totals.Income.StringFixed(2),
		Expense:          totals.Expense.StringFixed(2),
		Balance:          totals.Balance.StringFixed(2),
		TransactionCount: totals.TransactionCount,
	}
}
