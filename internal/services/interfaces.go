package services

import (
	"context"
	"time"

	"household-ledger/internal/models"
)

// TransactionServiceInterface records ledger entries and answers range queries
type TransactionServiceInterface interface {
	// Create stores a new entry for userID. Calls are not idempotent.
	Create(ctx context.Context, params models.CreateTransactionParams) (*models.Transaction, error)
	// FetchByRange returns userID's entries dated in [start, end), ordered by date
	FetchByRange(ctx context.Context, userID string, start, end time.Time) ([]models.Transaction, error)
	// FetchByMonth returns the entries of one calendar month
	FetchByMonth(ctx context.Context, userID string, year, month int) ([]models.Transaction, error)
	// FetchByYear returns the entries of one calendar year
	FetchByYear(ctx context.Context, userID string, year int) ([]models.Transaction, error)
}

// SummaryServiceInterface aggregates ledger entries into per-period totals
type SummaryServiceInterface interface {
	// SummarizeYear returns exactly twelve monthly buckets, January first
	SummarizeYear(ctx context.Context, userID string, year int) ([]models.MonthlySummary, error)
	// YearlyReport adds year totals to the twelve monthly buckets
	YearlyReport(ctx context.Context, userID string, year int) (*models.YearlySummary, error)
	// MonthlyReport lists one month's entries with totals and a category breakdown
	MonthlyReport(ctx context.Context, userID string, year, month int) (*models.MonthlyReport, error)
}

// TokenServiceInterface issues and verifies identity tokens
type TokenServiceInterface interface {
	GenerateAccessToken(userID, email string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// SampleDataGeneratorInterface produces realistic household entries for
// development seeding
type SampleDataGeneratorInterface interface {
	GenerateYear(userID string, year int, loc *time.Location) []models.CreateTransactionParams
	GenerateMonth(userID string, year, month int, loc *time.Location) []models.CreateTransactionParams
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// LedgerLoggerInterface emits structured ledger events
type LedgerLoggerInterface interface {
	LogTransactionCreated(ctx context.Context, transaction *models.Transaction)
	LogRangeQueried(ctx context.Context, query models.RangeQuery, resultCount int, duration time.Duration)
	LogSummaryGenerated(ctx context.Context, userID string, year, month int, duration time.Duration)
	LogStoreFailure(ctx context.Context, operation, userID string, err error)
	LogAnonymousSummary(ctx context.Context, year int)
}
