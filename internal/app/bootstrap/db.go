// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and verifies it with a ping.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		ETutorMongoClient:   client,
		ETutorMongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the queries depend on. All creations
// are idempotent; Mongo ignores an index that already exists.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.ETutorMongoDatabase

	indexes := map[string][]mongo.IndexModel{
		"profiles": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true),
			},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		"classes": {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		"lessons": {
			{Keys: bson.D{{Key: "class_id", Value: 1}}},
			{Keys: bson.D{{Key: "start_time", Value: -1}}},
		},
		"exams": {
			{Keys: bson.D{{Key: "class_id", Value: 1}}},
			{Keys: bson.D{{Key: "start_time", Value: 1}}},
		},
		"homeworks": {
			{Keys: bson.D{{Key: "class_id", Value: 1}}},
			{Keys: bson.D{{Key: "due_date", Value: -1}}},
		},
		"notifications": {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}

	logger.Info("database indexes ensured")
	return nil
}
