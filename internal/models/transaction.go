package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrMissingUserID          = errors.New("user ID is required")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrMissingTransactionDate = errors.New("transaction date is required")
)

// Transaction is a single income or expense entry in a user's ledger.
// Records are append-only: there is no update or delete path.
type Transaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string          `gorm:"type:varchar(128);not null;index:idx_transactions_user_date,priority:1" json:"user_id"`
	Type      string          `gorm:"type:varchar(10);not null" json:"type"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category  string          `gorm:"type:varchar(50);not null" json:"category"`
	Memo      string          `gorm:"type:text;not null" json:"memo"`
	Date      time.Time       `gorm:"not null;index:idx_transactions_user_date,priority:2" json:"date"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	return t.PrepareForCreate()
}

// PrepareForCreate assigns the store-side fields every backend sets on insert.
// CreatedAt is always stamped here so callers cannot backdate it.
func (t *Transaction) PrepareForCreate() error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now().UTC()
	t.Date = t.Date.UTC()

	return t.Validate()
}

// Validate checks the structural fields the ledger relies on. Amount sign and
// category content are checked at the API boundary, not here.
func (t *Transaction) Validate() error {
	if t.UserID == "" {
		return ErrMissingUserID
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Date.IsZero() {
		return ErrMissingTransactionDate
	}

	return nil
}

// IsIncome reports whether the transaction adds to the balance. Any other type
// is aggregated as an expense.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// CreateTransactionParams carries the caller-supplied fields of a new entry.
type CreateTransactionParams struct {
	UserID   string
	Type     string
	Amount   decimal.Decimal
	Category string
	Memo     *string
	Date     time.Time
}

// NewTransaction builds an unsaved transaction from params. A nil memo becomes
// the empty string and the date is truncated to its calendar day in loc.
func NewTransaction(params CreateTransactionParams, loc *time.Location) *Transaction {
	memo := ""
	if params.Memo != nil {
		memo = *params.Memo
	}

	return &Transaction{
		UserID:   params.UserID,
		Type:     params.Type,
		Amount:   params.Amount,
		Category: params.Category,
		Memo:     memo,
		Date:     CalendarDay(params.Date, loc),
	}
}

// CalendarDay returns midnight of t's calendar day as observed in loc.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// Common household categories used for sample data and suggestions
var SampleExpenseCategories = []string{
	"Groceries",
	"Rent",
	"Utilities",
	"Transport",
	"Dining",
	"Health",
	"Entertainment",
	"Clothing",
	"Education",
	"Gifts",
}

var SampleIncomeCategories = []string{
	"Salary",
	"Bonus",
	"Freelance",
	"Interest",
	"Refund",
}
