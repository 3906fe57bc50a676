package repositories

import (
	"context"
	"fmt"

	"household-ledger/internal/models"

	"gorm.io/gorm"
)

const rangeOrder = "date ASC, created_at ASC, id ASC"

// transactionRepository implements TransactionRepositoryInterface on gorm
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create inserts a transaction. ID and CreatedAt are assigned by the model hook.
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// FindByRange returns the owner's transactions dated inside [Start, End)
func (r *transactionRepository) FindByRange(ctx context.Context, query models.RangeQuery) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := r.rangeScope(ctx, query).
		Order(rangeOrder).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by range: %w", err)
	}
	return transactions, nil
}

// SumByCategory totals the window per category and type
func (r *transactionRepository) SumByCategory(ctx context.Context, query models.RangeQuery) ([]models.CategoryTotal, error) {
	totals := []models.CategoryTotal{}
	if err := r.rangeScope(ctx, query).
		Select("category, type, COUNT(*) AS transaction_count, COALESCE(SUM(amount), 0) AS total_amount").
		Group("category, type").
		Order("type ASC, category ASC").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}
	return totals, nil
}

func (r *transactionRepository) rangeScope(ctx context.Context, query models.RangeQuery) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("user_id = ? AND date >= ? AND date < ?", query.UserID, query.Start.UTC(), query.End.UTC())
}
