package migrations

import (
	"context"
	"fmt"

	"github.com/windoze95/cookiemice-api/internal/logger"
	"github.com/windoze95/cookiemice-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// RecipeLanguageIndex is the name of the index backing language-filtered lookups.
const RecipeLanguageIndex = "language_1_id_1"

// RecipeIndexModels lists the indexes the recipe collection needs. The SQL
// backends get the equivalent index from the gorm struct tags.
func RecipeIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "language", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName(RecipeLanguageIndex),
		},
	}
}

// EnsureRecipeIndexes creates the recipe collection indexes.
//
// This migration is idempotent: MongoDB ignores an index that already exists
// with the same keys and options.
func EnsureRecipeIndexes(ctx context.Context, database *mongo.Database) error {
	names, err := database.Collection(repository.RecipeCollection).Indexes().CreateMany(ctx, RecipeIndexModels())
	if err != nil {
		return fmt.Errorf("failed to create recipe indexes: %w", err)
	}

	logger.Get().Info("recipe indexes ensured", zap.Strings("indexes", names))
	return nil
}
