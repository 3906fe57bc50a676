package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary holds the income and expense totals for one calendar month.
// Balance always equals Income minus Expense.
type MonthlySummary struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// NewMonthlySummary returns a zeroed bucket for month.
func NewMonthlySummary(month int) MonthlySummary {
	return MonthlySummary{
		Month:   month,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Balance: decimal.Zero,
	}
}

// Add accumulates a transaction into the bucket.
func (s *MonthlySummary) Add(t Transaction) {
	if t.IsIncome() {
		s.Income = s.Income.Add(t.Amount)
	} else {
		s.Expense = s.Expense.Add(t.Amount)
	}
	s.Balance = s.Income.Sub(s.Expense)
}

// EmptyYear returns twelve zeroed buckets for months 1 through 12.
func EmptyYear() []MonthlySummary {
	months := make([]MonthlySummary, 12)
	for i := range months {
		months[i] = NewMonthlySummary(i + 1)
	}
	return months
}

// YearlySummary is the year view: twelve monthly buckets plus year totals.
type YearlySummary struct {
	Year         int              `json:"year"`
	Months       []MonthlySummary `json:"months"`
	TotalIncome  decimal.Decimal  `json:"total_income"`
	TotalExpense decimal.Decimal  `json:"total_expense"`
	TotalBalance decimal.Decimal  `json:"total_balance"`
}

// NewYearlySummary totals the given months.
func NewYearlySummary(year int, months []MonthlySummary) *YearlySummary {
	summary := &YearlySummary{
		Year:         year,
		Months:       months,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, m := range months {
		summary.TotalIncome = summary.TotalIncome.Add(m.Income)
		summary.TotalExpense = summary.TotalExpense.Add(m.Expense)
	}
	summary.TotalBalance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary
}

// PeriodTotals summarizes a list of transactions.
type PeriodTotals struct {
	Income           decimal.Decimal `json:"income"`
	Expense          decimal.Decimal `json:"expense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transaction_count"`
	IncomeCount      int             `json:"income_count"`
	ExpenseCount     int             `json:"expense_count"`
}

// NewPeriodTotals folds transactions into income, expense and balance totals.
func NewPeriodTotals(transactions []Transaction) PeriodTotals {
	totals := PeriodTotals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, t := range transactions {
		if t.IsIncome() {
			totals.Income = totals.Income.Add(t.Amount)
			totals.IncomeCount++
		} else {
			totals.Expense = totals.Expense.Add(t.Amount)
			totals.ExpenseCount++
		}
	}
	totals.TransactionCount = len(transactions)
	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals
}

// CategoryTotal contains aggregated transaction data by category and type
type CategoryTotal struct {
	Category         string          `json:"category"`
	Type             string          `json:"type"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}

// MonthlyReport is the month view: the ordered entries plus their totals.
type MonthlyReport struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	Transactions []Transaction   `json:"transactions"`
	Totals       PeriodTotals    `json:"totals"`
	Categories   []CategoryTotal `json:"categories"`
}
