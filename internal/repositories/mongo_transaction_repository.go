package repositories

import (
	"context"
	"fmt"
	"time"

	"household-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// transactionDocument is the stored shape of a transaction in MongoDB.
// Amounts are Decimal128 so sums stay exact server-side.
type transactionDocument struct {
	ID        string          `bson:"_id"`
	UserID    string          `bson:"user_id"`
	Type      string          `bson:"type"`
	Amount    bson.Decimal128 `bson:"amount"`
	Category  string          `bson:"category"`
	Memo      string          `bson:"memo"`
	Date      time.Time       `bson:"date"`
	CreatedAt time.Time       `bson:"created_at"`
}

type categoryTotalDocument struct {
	Key struct {
		Category string `bson:"category"`
		Type     string `bson:"type"`
	} `bson:"_id"`
	TransactionCount int64           `bson:"transaction_count"`
	TotalAmount      bson.Decimal128 `bson:"total_amount"`
}

// mongoTransactionRepository implements TransactionRepositoryInterface on a
// MongoDB collection
type mongoTransactionRepository struct {
	collection *mongo.Collection
}

// NewMongoTransactionRepository creates a repository over collection
func NewMongoTransactionRepository(collection *mongo.Collection) TransactionRepositoryInterface {
	return &mongoTransactionRepository{
		collection: collection,
	}
}

// EnsureMongoIndexes creates the compound index backing range queries
func EnsureMongoIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    rangeSort(),
		Options: options.Index().SetName("user_date_created"),
	})
	if err != nil {
		return fmt.Errorf("failed to create transaction index: %w", err)
	}
	return nil
}

func (r *mongoTransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := transaction.PrepareForCreate(); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	doc, err := toDocument(transaction)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *mongoTransactionRepository) FindByRange(ctx context.Context, query models.RangeQuery) ([]models.Transaction, error) {
	opts := options.Find().SetSort(rangeSort())

	cursor, err := r.collection.Find(ctx, buildRangeFilter(query), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions by range: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []transactionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(docs))
	for _, doc := range docs {
		transaction, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

func (r *mongoTransactionRepository) SumByCategory(ctx context.Context, query models.RangeQuery) ([]models.CategoryTotal, error) {
	cursor, err := r.collection.Aggregate(ctx, buildCategoryPipeline(query))
	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []categoryTotalDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode category totals: %w", err)
	}

	totals := make([]models.CategoryTotal, 0, len(docs))
	for _, doc := range docs {
		amount, err := decimal.NewFromString(doc.TotalAmount.String())
		if err != nil {
			return nil, fmt.Errorf("invalid category total for %q: %w", doc.Key.Category, err)
		}
		totals = append(totals, models.CategoryTotal{
			Category:         doc.Key.Category,
			Type:             doc.Key.Type,
			TransactionCount: doc.TransactionCount,
			TotalAmount:      amount,
		})
	}
	return totals, nil
}

func buildRangeFilter(query models.RangeQuery) bson.D {
	return bson.D{
		{Key: "user_id", Value: query.UserID},
		{Key: "date", Value: bson.D{
			{Key: "$gte", Value: query.Start.UTC()},
			{Key: "$lt", Value: query.End.UTC()},
		}},
	}
}

func rangeSort() bson.D {
	return bson.D{
		{Key: "user_id", Value: 1},
		{Key: "date", Value: 1},
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	}
}

func buildCategoryPipeline(query models.RangeQuery) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: buildRangeFilter(query)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "category", Value: "$category"},
				{Key: "type", Value: "$type"},
			}},
			{Key: "transaction_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_amount", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_id.type", Value: 1},
			{Key: "_id.category", Value: 1},
		}}},
	}
}

func toDocument(t *models.Transaction) (transactionDocument, error) {
	amount, err := bson.ParseDecimal128(t.Amount.String())
	if err != nil {
		return transactionDocument{}, fmt.Errorf("invalid amount %s: %w", t.Amount, err)
	}

	return transactionDocument{
		ID:        t.ID.String(),
		UserID:    t.UserID,
		Type:      t.Type,
		Amount:    amount,
		Category:  t.Category,
		Memo:      t.Memo,
		Date:      t.Date.UTC(),
		CreatedAt: t.CreatedAt.UTC(),
	}, nil
}

func fromDocument(doc transactionDocument) (models.Transaction, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid transaction id %q: %w", doc.ID, err)
	}

	amount, err := decimal.NewFromString(doc.Amount.String())
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid amount on transaction %s: %w", doc.ID, err)
	}

	return models.Transaction{
		ID:        id,
		UserID:    doc.UserID,
		Type:      doc.Type,
		Amount:    amount,
		Category:  doc.Category,
		Memo:      doc.Memo,
		Date:      doc.Date.UTC(),
		CreatedAt: doc.CreatedAt.UTC(),
	}, nil
}
