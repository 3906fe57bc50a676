package database

import (
	"context"
	"fmt"
	"log/slog"

	"household-ledger/internal/config"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoStore holds the client and ledger collection of the document backend.
type MongoStore struct {
	Client     *mongo.Client
	Collection *mongo.Collection
}

// ConnectMongo opens a client against cfg.MongoURI and verifies it with a ping.
func ConnectMongo(ctx context.Context, cfg *config.DatabaseConfig) (*MongoStore, error) {
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI must be set when DB_DRIVER=mongo")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI).
		SetMaxPoolSize(uint64(cfg.MaxConnections))

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	slog.Info("Connected to MongoDB", "database", cfg.MongoDatabase, "collection", cfg.MongoCollection)

	return &MongoStore{
		Client:     client,
		Collection: client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection),
	}, nil
}

// HealthCheck pings the primary.
func (s *MongoStore) HealthCheck(ctx context.Context) error {
	return s.Client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}
