package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"task-tracker/pkg/logger"
)

type DatabaseConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Database owns the client and the database handle used by the repositories.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewDatabase(config DatabaseConfig) (*Database, error) {
	timeout := config.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(config.URI).
		SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("MongoDB connected", "database", config.Database)

	return &Database{
		client: client,
		db:     client.Database(config.Database),
	}, nil
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *Database) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes backs the dueDate sorts and the status ranking.
func (d *Database) EnsureIndexes(ctx context.Context, collection string) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "dueDate", Value: 1}}, Options: options.Index().SetName("dueDate_1")},
		{Keys: bson.D{{Key: "status", Value: 1}}, Options: options.Index().SetName("status_1")},
	}

	names, err := d.db.Collection(collection).Indexes().CreateMany(ctx, models)
	if err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
	}

	logger.Info("MongoDB indexes ready", "collection", collection, "indexes", names)
	return nil
}

func (d *Database) Close(ctx context.Context) error {
	if d.client == nil {
		return nil
	}
	if err := d.client.Disconnect(ctx); err != nil {
		return err
	}
	logger.Info("MongoDB connection closed")
	return nil
}
