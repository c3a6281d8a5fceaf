package database

import (
	"context"
	"log"

	"sensai_backend/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// InitDB connects to MongoDB and returns the configured database handle.
// An empty URL is not an error: the server still serves endpoints that do
// not touch the store, and repositories report "not configured" to callers.
// A failed startup ping is logged but the handle is kept, since the driver
// reconnects on later operations.
func InitDB(cfg *config.DatabaseConfig) (*mongo.Database, error) {
	if cfg.URL == "" {
		log.Println("DATABASE_URL not set, running without a document store")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Printf("MongoDB ping failed (will retry on first operation): %v", err)
	} else {
		log.Println("Database connection established")
	}

	return client.Database(cfg.DBName), nil
}
