package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"household-ledger/internal/models"
	"household-ledger/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func newTestMetrics() MetricsRecorderInterface {
	return NewPrometheusMetrics(prometheus.NewRegistry())
}

func newTestLogger() LedgerLoggerInterface {
	return NewLedgerLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type TransactionServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockTransactionRepositoryInterface
	service  TransactionServiceInterface
	ctx      context.Context
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.service = NewTransactionService(s.mockRepo, time.UTC, newTestMetrics(), newTestLogger())
	s.ctx = context.Background()
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) validParams() models.CreateTransactionParams {
	return models.CreateTransactionParams{
		UserID:   "user-1",
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.RequireFromString("42.10"),
		Category: "Groceries",
		Date:     time.Date(2024, 3, 10, 17, 45, 0, 0, time.UTC),
	}
}

func (s *TransactionServiceTestSuite) TestCreate_Success() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *models.Transaction) error {
			s.Equal("user-1", tx.UserID)
			s.Equal(models.TransactionTypeExpense, tx.Type)
			s.Equal("Groceries", tx.Category)
			s.Equal("", tx.Memo)
			s.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), tx.Date)
			tx.ID = uuid.New()
			tx.CreatedAt = time.Now()
			return nil
		})

	created, err := s.service.Create(s.ctx, s.validParams())
	s.NoError(err)
	s.Require().NotNil(created)
	s.NotEqual(uuid.Nil, created.ID)
	s.True(created.Amount.Equal(decimal.RequireFromString("42.10")))
}

func (s *TransactionServiceTestSuite) TestCreate_KeepsMemo() {
	memo := "farmers market"
	params := s.validParams()
	params.Memo = &memo

	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *models.Transaction) error {
			s.Equal("farmers market", tx.Memo)
			return nil
		})

	_, err := s.service.Create(s.ctx, params)
	s.NoError(err)
}

func (s *TransactionServiceTestSuite) TestCreate_MissingUser() {
	params := s.validParams()
	params.UserID = ""

	created, err := s.service.Create(s.ctx, params)
	s.ErrorIs(err, ErrInvalidArgument)
	s.ErrorIs(err, models.ErrMissingUserID)
	s.Nil(created)
}

func (s *TransactionServiceTestSuite) TestCreate_InvalidType() {
	params := s.validParams()
	params.Type = "transfer"

	_, err := s.service.Create(s.ctx, params)
	s.ErrorIs(err, ErrInvalidArgument)
}

func (s *TransactionServiceTestSuite) TestCreate_MissingDate() {
	params := s.validParams()
	params.Date = time.Time{}

	_, err := s.service.Create(s.ctx, params)
	s.ErrorIs(err, ErrInvalidArgument)
}

func (s *TransactionServiceTestSuite) TestCreate_AmountSignNotEnforced() {
	params := s.validParams()
	params.Amount = decimal.NewFromInt(-5)

	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.service.Create(s.ctx, params)
	s.NoError(err)
}

func (s *TransactionServiceTestSuite) TestCreate_StoreFailureIsNotRetried() {
	storeErr := errors.New("connection refused")
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(storeErr).Times(1)

	created, err := s.service.Create(s.ctx, s.validParams())
	s.ErrorIs(err, ErrBackendUnavailable)
	s.ErrorIs(err, storeErr)
	s.Nil(created)
}

func (s *TransactionServiceTestSuite) TestCreate_IsNotIdempotent() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *models.Transaction) error {
			tx.ID = uuid.New()
			return nil
		}).Times(2)

	first, err := s.service.Create(s.ctx, s.validParams())
	s.Require().NoError(err)
	second, err := s.service.Create(s.ctx, s.validParams())
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)
}

func (s *TransactionServiceTestSuite) TestCreate_NormalizesDateInLedgerZone() {
	rome, err := time.LoadLocation("Europe/Rome")
	s.Require().NoError(err)
	service := NewTransactionService(s.mockRepo, rome, newTestMetrics(), newTestLogger())

	params := s.validParams()
	params.Date = time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC)

	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *models.Transaction) error {
			s.Equal(time.Date(2024, 3, 6, 0, 0, 0, 0, rome), tx.Date)
			return nil
		})

	_, err = service.Create(s.ctx, params)
	s.NoError(err)
}

func (s *TransactionServiceTestSuite) TestFetchByMonth_Window() {
	expected := models.RangeQuery{
		UserID: "user-1",
		Start:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	rows := []models.Transaction{{ID: uuid.New(), UserID: "user-1"}}

	s.mockRepo.EXPECT().FindByRange(gomock.Any(), expected).Return(rows, nil)

	found, err := s.service.FetchByMonth(s.ctx, "user-1", 2024, 3)
	s.NoError(err)
	s.Equal(rows, found)
}

func (s *TransactionServiceTestSuite) TestFetchByMonth_DecemberRollsOver() {
	expected := models.RangeQuery{
		UserID: "user-1",
		Start:  time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.mockRepo.EXPECT().FindByRange(gomock.Any(), expected).Return([]models.Transaction{}, nil)

	found, err := s.service.FetchByMonth(s.ctx, "user-1", 2024, 12)
	s.NoError(err)
	s.Empty(found)
}

func (s *TransactionServiceTestSuite) TestFetchByMonth_InvalidMonth() {
	for _, month := range []int{0, 13, -1} {
		_, err := s.service.FetchByMonth(s.ctx, "user-1", 2024, month)
		s.ErrorIs(err, ErrInvalidArgument, "month %d", month)
		s.ErrorIs(err, models.ErrInvalidMonth)
	}
}

func (s *TransactionServiceTestSuite) TestFetchByMonth_MissingUser() {
	_, err := s.service.FetchByMonth(s.ctx, "", 2024, 3)
	s.ErrorIs(err, ErrInvalidArgument)
}

func (s *TransactionServiceTestSuite) TestFetchByYear_Window() {
	expected := models.RangeQuery{
		UserID: "user-1",
		Start:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.mockRepo.EXPECT().FindByRange(gomock.Any(), expected).Return([]models.Transaction{}, nil)

	_, err := s.service.FetchByYear(s.ctx, "user-1", 2024)
	s.NoError(err)
}

func (s *TransactionServiceTestSuite) TestFetchByYear_MissingUser() {
	_, err := s.service.FetchByYear(s.ctx, "", 2024)
	s.ErrorIs(err, ErrInvalidArgument)
	s.ErrorIs(err, models.ErrMissingUserID)
}

func (s *TransactionServiceTestSuite) TestFetchByRange_EmptyWindow() {
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.service.FetchByRange(s.ctx, "user-1", at, at)
	s.ErrorIs(err, ErrInvalidArgument)
	s.ErrorIs(err, models.ErrEmptyWindow)
}

func (s *TransactionServiceTestSuite) TestFetchByRange_PassesWindowThrough() {
	start := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	s.mockRepo.EXPECT().FindByRange(gomock.Any(), models.RangeQuery{UserID: "user-1", Start: start, End: end}).
		Return([]models.Transaction{}, nil)

	_, err := s.service.FetchByRange(s.ctx, "user-1", start, end)
	s.NoError(err)
}

func (s *TransactionServiceTestSuite) TestFetch_StoreFailure() {
	storeErr := errors.New("i/o timeout")
	s.mockRepo.EXPECT().FindByRange(gomock.Any(), gomock.Any()).Return(nil, storeErr).Times(1)

	found, err := s.service.FetchByYear(s.ctx, "user-1", 2024)
	s.ErrorIs(err, ErrBackendUnavailable)
	s.ErrorIs(err, storeErr)
	s.Nil(found)
}
