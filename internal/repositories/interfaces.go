package repositories

import (
	"context"

	"household-ledger/internal/models"
)

// TransactionRepositoryInterface is the ledger's view of the backing store.
// Implementations must honour the RangeQuery window and ordering exactly and
// must not retry failed calls.
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	FindByRange(ctx context.Context, query models.RangeQuery) ([]models.Transaction, error)
	SumByCategory(ctx context.Context, query models.RangeQuery) ([]models.CategoryTotal, error)
}
