package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"zoo/internal/platform/config"
)

// Client wraps the mongo client with the configured database.
type Client struct {
	*mongo.Client
	database string
}

// New connects to MongoDB and verifies the connection.
// Returns nil if the URI is empty (Mongo not configured).
func New(ctx context.Context, cfg config.MongoConfig) (*Client, error) {
	if cfg.URI == "" {
		return nil, nil
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Timeout > 0 {
		opts.SetTimeout(cfg.Timeout)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	return &Client{Client: client, database: cfg.Database}, nil
}

// Database returns the configured database handle.
func (c *Client) Database() *mongo.Database {
	return c.Client.Database(c.database)
}

// Health checks if the MongoDB connection is healthy.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx, readpref.Primary())
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	return c.Disconnect(ctx)
}
