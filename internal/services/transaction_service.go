package services

import (
	"context"
	"time"

	"household-ledger/internal/models"
	"household-ledger/internal/repositories"
)

const (
	windowRange = "range"
	windowMonth = "month"
	windowYear  = "year"
)

type transactionService struct {
	repo    repositories.TransactionRepositoryInterface
	loc     *time.Location
	metrics MetricsRecorderInterface
	logger  LedgerLoggerInterface
}

// NewTransactionService creates the ledger entry service. Calendar windows and
// entry dates are interpreted in loc.
func NewTransactionService(
	repo repositories.TransactionRepositoryInterface,
	loc *time.Location,
	metrics MetricsRecorderInterface,
	logger LedgerLoggerInterface,
) TransactionServiceInterface {
	if loc == nil {
		loc = time.UTC
	}
	return &transactionService{
		repo:    repo,
		loc:     loc,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *transactionService) Create(ctx context.Context, params models.CreateTransactionParams) (*models.Transaction, error) {
	if params.UserID == "" {
		return nil, invalidArgument(models.ErrMissingUserID)
	}
	if !models.IsValidTransactionType(params.Type) {
		return nil, invalidArgument(models.ErrInvalidTransactionType)
	}
	if params.Date.IsZero() {
		return nil, invalidArgument(models.ErrMissingTransactionDate)
	}

	transaction := models.NewTransaction(params, s.loc)

	if err := s.repo.Create(ctx, transaction); err != nil {
		s.recordStoreFailure(ctx, "create", params.UserID, err)
		return nil, backendUnavailable(err)
	}

	s.metrics.IncrementCounter(MetricTransactionCreated, map[string]string{"type": transaction.Type})
	s.logger.LogTransactionCreated(ctx, transaction)

	return transaction, nil
}

func (s *transactionService) FetchByRange(ctx context.Context, userID string, start, end time.Time) ([]models.Transaction, error) {
	return s.fetch(ctx, models.NewRangeQuery(userID, start, end), windowRange)
}

func (s *transactionService) FetchByMonth(ctx context.Context, userID string, year, month int) ([]models.Transaction, error) {
	if userID == "" {
		return nil, invalidArgument(models.ErrMissingUserID)
	}

	query, err := models.MonthWindow(userID, year, month, s.loc)
	if err != nil {
		return nil, invalidArgument(err)
	}
	return s.fetch(ctx, query, windowMonth)
}

func (s *transactionService) FetchByYear(ctx context.Context, userID string, year int) ([]models.Transaction, error) {
	return s.fetch(ctx, models.YearWindow(userID, year, s.loc), windowYear)
}

func (s *transactionService) fetch(ctx context.Context, query models.RangeQuery, window string) ([]models.Transaction, error) {
	if err := query.Validate(); err != nil {
		return nil, invalidArgument(err)
	}

	started := time.Now()
	transactions, err := s.repo.FindByRange(ctx, query)
	if err != nil {
		s.metrics.IncrementCounter(MetricRangeQuery, map[string]string{"window": window, "status": "failed"})
		s.recordStoreFailure(ctx, "find_by_range", query.UserID, err)
		return nil, backendUnavailable(err)
	}
	elapsed := time.Since(started)

	s.metrics.IncrementCounter(MetricRangeQuery, map[string]string{"window": window, "status": "success"})
	s.metrics.RecordProcessingTime(MetricQueryDuration, elapsed)
	s.metrics.RecordGauge(MetricQueryResultSize, float64(len(transactions)), nil)
	s.logger.LogRangeQueried(ctx, query, len(transactions), elapsed)

	return transactions, nil
}

func (s *transactionService) recordStoreFailure(ctx context.Context, operation, userID string, err error) {
	s.metrics.IncrementCounter(MetricStoreFailure, map[string]string{"operation": operation})
	s.logger.LogStoreFailure(ctx, operation, userID, err)
}
