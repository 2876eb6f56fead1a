package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"offices/internal/migrations/mongo/validators"
	"offices/pkg/config"
)

var OfficesIndexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "status", Value: 1}}},
	{Keys: bson.D{{Key: "city", Value: 1}, {Key: "street", Value: 1}}},
	{Keys: bson.D{{Key: "registry_phone_number", Value: 1}}},
}

type collectionDef struct {
	Indexes   []mongo.IndexModel
	Validator bson.M
}

// RunMigration creates the offices collection with its schema validator and
// indexes. Safe to run repeatedly.
func RunMigration(ctx context.Context, cfg *config.Config) error {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	cfg.Log.Info("Running Mongo migrations", "database", cfg.MongoDatabaseName)

	collections := map[string]collectionDef{
		cfg.CollectionName: {
			Indexes:   OfficesIndexes,
			Validator: validators.OfficeValidator,
		},
	}

	for name, def := range collections {
		if err := ensureCollection(ctx, cfg, db, name, def.Validator); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", name, err)
		}
		if err := ensureIndexes(ctx, cfg, db, name, def.Indexes); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", name, err)
		}
	}

	cfg.Log.Info("All migrations applied successfully")
	return nil
}

func ensureCollection(ctx context.Context, cfg *config.Config, db *mongo.Database, name string, validator bson.M) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		cfg.Log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	cfg.Log.Info("Collection already exists, updating validator", "collection", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		cfg.Log.Warn("Failed updating validator", "collection", name, "error", err)
	}
	return nil
}

func ensureIndexes(ctx context.Context, cfg *config.Config, db *mongo.Database, name string, models []mongo.IndexModel) error {
	names, err := db.Collection(name).Indexes().CreateMany(ctx, models)
	if err != nil {
		return err
	}
	cfg.Log.Info("Ensured indexes", "collection", name, "indexes", names)
	return nil
}
