package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"household-ledger/internal/models"
	"household-ledger/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockTransactionRepositoryInterface
	service  SummaryServiceInterface
	ctx      context.Context
}

func (s *SummaryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.service = s.newService(time.UTC, false)
	s.ctx = context.Background()
}

func (s *SummaryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSummaryServiceSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}

func (s *SummaryServiceTestSuite) newService(loc *time.Location, strict bool) SummaryServiceInterface {
	metrics := newTestMetrics()
	logger := newTestLogger()
	transactions := NewTransactionService(s.mockRepo, loc, metrics, logger)
	return NewSummaryService(transactions, s.mockRepo, SummaryOptions{Location: loc, StrictIdentity: strict}, metrics, logger)
}

func entry(txType, amount string, date time.Time) models.Transaction {
	return models.Transaction{
		UserID: "user-1",
		Type:   txType,
		Amount: decimal.RequireFromString(amount),
		Date:   date,
	}
}

func (s *SummaryServiceTestSuite) expectYear(userID string, year int, rows []models.Transaction) {
	s.mockRepo.EXPECT().FindByRange(gomock.Any(), models.YearWindow(userID, year, time.UTC)).Return(rows, nil)
}

func (s *SummaryServiceTestSuite) assertMonth(m models.MonthlySummary, month int, income, expense, balance int64) {
	s.Equal(month, m.Month)
	s.True(m.Income.Equal(decimal.NewFromInt(income)), "month %d income %s", month, m.Income)
	s.True(m.Expense.Equal(decimal.NewFromInt(expense)), "month %d expense %s", month, m.Expense)
	s.True(m.Balance.Equal(decimal.NewFromInt(balance)), "month %d balance %s", month, m.Balance)
}

func (s *SummaryServiceTestSuite) TestSummarizeYear_WorkedExample() {
	s.expectYear("user-1", 2024, []models.Transaction{
		entry(models.TransactionTypeIncome, "3000", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		entry(models.TransactionTypeExpense, "1200", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
		entry(models.TransactionTypeExpense, "500", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)),
	})

	months, err := s.service.SummarizeYear(s.ctx, "user-1", 2024)
	s.Require().NoError(err)
	s.Require().Len(months, 12)

	for i, m := range months {
		switch m.Month {
		case 3:
			s.assertMonth(m, 3, 3000, 1200, 1800)
		case 7:
			s.assertMonth(m, 7, 0, 500, -500)
		default:
			s.assertMonth(m, i+1, 0, 0, 0)
		}
	}
}

func (s *SummaryServiceTestSuite) TestSummarizeYear_NoTransactions() {
	s.expectYear("user-1", 2023, []models.Transaction{})

	months, err := s.service.SummarizeYear(s.ctx, "user-1", 2023)
	s.Require().NoError(err)
	s.Require().Len(months, 12)
	for i, m := range months {
		s.assertMonth(m, i+1, 0, 0, 0)
	}
}

func (s *SummaryServiceTestSuite) TestSummarizeYear_AnonymousReturnsZeroedYear() {
	months, err := s.service.SummarizeYear(s.ctx, "", 2024)
	s.NoError(err)
	s.Require().Len(months, 12)
	for i, m := range months {
		s.assertMonth(m, i+1, 0, 0, 0)
	}
}

func (s *SummaryServiceTestSuite) TestSummarizeYear_StrictIdentityRejectsAnonymous() {
	service := s.newService(time.UTC, true)

	months, err := service.SummarizeYear(s.ctx, "", 2024)
	s.ErrorIs(err, ErrUnauthenticated)
	s.Nil(months)
}

func (s *SummaryServiceTestSuite) TestSummarizeYear_UnknownTypeCountsAsExpense() {
	s.expectYear("user-1", 2024, []models.Transaction{
		entry("refund", "80", time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)),
	})

	months, err := s.service.SummarizeYear(s.ctx, "user-1", 2024)
	s.Require().NoError(err)
	s.assertMonth(months[1], 2, 0, 80, -80)
}

func (s *SummaryServiceTestSuite) TestSummarizeYear_BucketsInLedgerZone() {
	rome, err := time.LoadLocation("Europe/Rome")
	s.Require().NoError(err)
	service := s.newService(rome, false)

	s.mockRepo.EXPECT().FindByRange(gomock.Any(), models.YearWindow("user-1", 2024, rome)).Return([]models.Transaction{
		// 1 March 00:00 in Rome is still 29 February in UTC.
		entry(models.TransactionTypeExpense, "10", time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)),
	}, nil)

	months, err := service.SummarizeYear(s.ctx, "user-1", 2024)
	s.Require().NoError(err)
	s.assertMonth(months[1], 2, 0, 0, 0)
	s.assertMonth(months[2], 3, 0, 10, -10)
}

func (s *SummaryServiceTestSuite) TestSummarizeYear_BalanceIdentity() {
	faker := gofakeit.New(2024)
	rows := make([]models.Transaction, 0, 200)
	for i := 0; i < 200; i++ {
		txType := faker.RandomString([]string{models.TransactionTypeIncome, models.TransactionTypeExpense})
		amount := decimal.NewFromFloat(faker.Float64Range(0.01, 5000)).Round(2)
		date := time.Date(2024, time.Month(faker.IntRange(1, 12)), faker.IntRange(1, 28), 0, 0, 0, 0, time.UTC)
		rows = append(rows, models.Transaction{UserID: "user-1", Type: txType, Amount: amount, Date: date})
	}
	s.expectYear("user-1", 2024, rows)

	months, err := s.service.SummarizeYear(s.ctx, "user-1", 2024)
	s.Require().NoError(err)

	totalIncome, totalExpense := decimal.Zero, decimal.Zero
	for i, m := range months {
		s.Equal(i+1, m.Month)
		s.True(m.Balance.Equal(m.Income.Sub(m.Expense)))
		totalIncome = totalIncome.Add(m.Income)
		totalExpense = totalExpense.Add(m.Expense)
	}

	wantIncome, wantExpense := decimal.Zero, decimal.Zero
	for _, r := range rows {
		if r.Type == models.TransactionTypeIncome {
			wantIncome = wantIncome.Add(r.Amount)
		} else {
			wantExpense = wantExpense.Add(r.Amount)
		}
	}
	s.True(totalIncome.Equal(wantIncome))
	s.True(totalExpense.Equal(wantExpense))
}

func (s *SummaryServiceTestSuite) TestSummarizeYear_StoreFailure() {
	storeErr := errors.New("unavailable")
	s.mockRepo.EXPECT().FindByRange(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	months, err := s.service.SummarizeYear(s.ctx, "user-1", 2024)
	s.ErrorIs(err, ErrBackendUnavailable)
	s.Nil(months)
}

func (s *SummaryServiceTestSuite) TestYearlyReport_Totals() {
	s.expectYear("user-1", 2024, []models.Transaction{
		entry(models.TransactionTypeIncome, "3000", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		entry(models.TransactionTypeExpense, "1200", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
		entry(models.TransactionTypeExpense, "500", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)),
	})

	report, err := s.service.YearlyReport(s.ctx, "user-1", 2024)
	s.Require().NoError(err)
	s.Equal(2024, report.Year)
	s.Len(report.Months, 12)
	s.True(report.TotalIncome.Equal(decimal.NewFromInt(3000)))
	s.True(report.TotalExpense.Equal(decimal.NewFromInt(1700)))
	s.True(report.TotalBalance.Equal(decimal.NewFromInt(1300)))
}

func (s *SummaryServiceTestSuite) TestYearlyReport_Anonymous() {
	report, err := s.service.YearlyReport(s.ctx, "", 2024)
	s.Require().NoError(err)
	s.Len(report.Months, 12)
	s.True(report.TotalBalance.IsZero())
}

func (s *SummaryServiceTestSuite) TestMonthlyReport() {
	window, err := models.MonthWindow("user-1", 2024, 3, time.UTC)
	s.Require().NoError(err)

	rows := []models.Transaction{
		entry(models.TransactionTypeIncome, "3000", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		entry(models.TransactionTypeExpense, "1200", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
		entry(models.TransactionTypeExpense, "35.50", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)),
	}
	categories := []models.CategoryTotal{
		{Category: "Rent", Type: models.TransactionTypeExpense, TransactionCount: 1, TotalAmount: decimal.NewFromInt(1200)},
	}

	s.mockRepo.EXPECT().FindByRange(gomock.Any(), window).Return(rows, nil)
	s.mockRepo.EXPECT().SumByCategory(gomock.Any(), window).Return(categories, nil)

	report, err := s.service.MonthlyReport(s.ctx, "user-1", 2024, 3)
	s.Require().NoError(err)

	s.Equal(2024, report.Year)
	s.Equal(3, report.Month)
	s.Equal(window.Start, report.StartDate)
	s.Equal(window.End, report.EndDate)
	s.Equal(rows, report.Transactions)
	s.Equal(categories, report.Categories)
	s.Equal(3, report.Totals.TransactionCount)
	s.Equal(1, report.Totals.IncomeCount)
	s.Equal(2, report.Totals.ExpenseCount)
	s.True(report.Totals.Income.Equal(decimal.NewFromInt(3000)))
	s.True(report.Totals.Expense.Equal(decimal.RequireFromString("1235.50")))
	s.True(report.Totals.Balance.Equal(decimal.RequireFromString("1764.50")))
}

func (s *SummaryServiceTestSuite) TestMonthlyReport_InvalidMonth() {
	_, err := s.service.MonthlyReport(s.ctx, "user-1", 2024, 13)
	s.ErrorIs(err, ErrInvalidArgument)
}

func (s *SummaryServiceTestSuite) TestMonthlyReport_MissingUser() {
	_, err := s.service.MonthlyReport(s.ctx, "", 2024, 3)
	s.ErrorIs(err, ErrInvalidArgument)

	_, err = s.newService(time.UTC, true).MonthlyReport(s.ctx, "", 2024, 3)
	s.ErrorIs(err, ErrUnauthenticated)
}

func (s *SummaryServiceTestSuite) TestMonthlyReport_CategoryFailure() {
	storeErr := errors.New("aggregate failed")
	s.mockRepo.EXPECT().FindByRange(gomock.Any(), gomock.Any()).Return([]models.Transaction{}, nil)
	s.mockRepo.EXPECT().SumByCategory(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	report, err := s.service.MonthlyReport(s.ctx, "user-1", 2024, 3)
	s.ErrorIs(err, ErrBackendUnavailable)
	s.ErrorIs(err, storeErr)
	s.Nil(report)
}
