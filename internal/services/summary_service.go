package services

import (
	"context"
	"time"

	"household-ledger/internal/models"
	"household-ledger/internal/repositories"
)

// SummaryOptions tunes the summary service.
type SummaryOptions struct {
	Location *time.Location
	// StrictIdentity rejects anonymous year summaries with ErrUnauthenticated
	// instead of returning twelve zeroed months.
	StrictIdentity bool
}

type summaryService struct {
	transactions   TransactionServiceInterface
	repo           repositories.TransactionRepositoryInterface
	loc            *time.Location
	strictIdentity bool
	metrics        MetricsRecorderInterface
	logger         LedgerLoggerInterface
}

func NewSummaryService(
	transactions TransactionServiceInterface,
	repo repositories.TransactionRepositoryInterface,
	opts SummaryOptions,
	metrics MetricsRecorderInterface,
	logger LedgerLoggerInterface,
) SummaryServiceInterface {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &summaryService{
		transactions:   transactions,
		repo:           repo,
		loc:            loc,
		strictIdentity: opts.StrictIdentity,
		metrics:        metrics,
		logger:         logger,
	}
}

func (s *summaryService) SummarizeYear(ctx context.Context, userID string, year int) ([]models.MonthlySummary, error) {
	if userID == "" {
		if s.strictIdentity {
			return nil, ErrUnauthenticated
		}
		s.logger.LogAnonymousSummary(ctx, year)
		return models.EmptyYear(), nil
	}

	started := time.Now()
	transactions, err := s.transactions.FetchByYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	months := bucketByMonth(transactions, s.loc)

	elapsed := time.Since(started)
	s.metrics.RecordProcessingTime(MetricSummaryDuration, elapsed)
	s.logger.LogSummaryGenerated(ctx, userID, year, 0, elapsed)

	return months, nil
}

func (s *summaryService) YearlyReport(ctx context.Context, userID string, year int) (*models.YearlySummary, error) {
	months, err := s.SummarizeYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	return models.NewYearlySummary(year, months), nil
}

func (s *summaryService) MonthlyReport(ctx context.Context, userID string, year, month int) (*models.MonthlyReport, error) {
	if userID == "" {
		if s.strictIdentity {
			return nil, ErrUnauthenticated
		}
		return nil, invalidArgument(models.ErrMissingUserID)
	}

	query, err := models.MonthWindow(userID, year, month, s.loc)
	if err != nil {
		return nil, invalidArgument(err)
	}

	started := time.Now()
	transactions, err := s.transactions.FetchByMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.SumByCategory(ctx, query)
	if err != nil {
		s.metrics.IncrementCounter(MetricStoreFailure, map[string]string{"operation": "sum_by_category"})
		s.logger.LogStoreFailure(ctx, "sum_by_category", userID, err)
		return nil, backendUnavailable(err)
	}

	elapsed := time.Since(started)
	s.metrics.RecordProcessingTime(MetricSummaryDuration, elapsed)
	s.logger.LogSummaryGenerated(ctx, userID, year, month, elapsed)

	return &models.MonthlyReport{
		Year:         year,
		Month:        month,
		StartDate:    query.Start,
		EndDate:      query.End,
		Transactions: transactions,
		Totals:       models.NewPeriodTotals(transactions),
		Categories:   categories,
	}, nil
}

// bucketByMonth folds transactions into twelve monthly buckets using the
// calendar month of each entry's date in loc. Entries whose month index falls
// outside 1..12 are skipped.
func bucketByMonth(transactions []models.Transaction, loc *time.Location) []models.MonthlySummary {
	months := models.EmptyYear()
	for _, t := range transactions {
		idx := int(t.Date.In(loc).Month()) - 1
		if idx < 0 || idx >= len(months) {
			continue
		}
		months[idx].Add(t)
	}
	return months
}
