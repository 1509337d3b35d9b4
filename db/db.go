package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const guildCollection = "guilds"

// Connect opens a mongo client and verifies the connection.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// GuildStore persists per-guild suggestion state. All suggestion mutations
// are field-path updates inside a single document per guild.
type GuildStore struct {
	guilds *mongo.Collection
	log    *zap.Logger
}

// NewGuildStore creates a store over the given database.
func NewGuildStore(database *mongo.Database, log *zap.Logger) *GuildStore {
	return &GuildStore{
		guilds: database.Collection(guildCollection),
		log:    log,
	}
}
