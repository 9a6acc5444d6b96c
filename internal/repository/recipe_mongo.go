package repository

import (
	"context"
	"errors"
	"time"

	"github.com/windoze95/cookiemice-api/internal/logger"
	"github.com/windoze95/cookiemice-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// RecipeCollection is the MongoDB collection holding recipe documents.
const RecipeCollection = "recipes"

// recipeDocument is the stored shape of a recipe. Field names match the
// documents written by earlier deployments of the catalog.
type recipeDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Ingredients  []string           `bson:"ingredients"`
	Instructions []string           `bson:"instructions"`
	PrepTime     *int               `bson:"prepTime,omitempty"`
	CookTime     *int               `bson:"cookTime,omitempty"`
	Servings     *int               `bson:"servings,omitempty"`
	Tags         []string           `bson:"tags"`
	Language     string             `bson:"language"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func newRecipeDocument(recipe *models.Recipe) recipeDocument {
	return recipeDocument{
		Title:        recipe.Title,
		Ingredients:  nonNil(recipe.Ingredients),
		Instructions: nonNil(recipe.Instructions),
		PrepTime:     recipe.PrepTime,
		CookTime:     recipe.CookTime,
		Servings:     recipe.Servings,
		Tags:         nonNil(recipe.Tags),
		Language:     string(recipe.Language),
		CreatedAt:    recipe.CreatedAt,
	}
}

func (d recipeDocument) toModel() models.Recipe {
	return models.Recipe{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Ingredients:  models.StringList(nonNil(d.Ingredients)),
		Instructions: models.StringList(nonNil(d.Instructions)),
		PrepTime:     d.PrepTime,
		CookTime:     d.CookTime,
		Servings:     d.Servings,
		Tags:         models.StringList(nonNil(d.Tags)),
		Language:     models.Language(d.Language),
		CreatedAt:    d.CreatedAt,
	}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// MongoRecipeRepository is a MongoDB-backed repository for interacting with recipes.
type MongoRecipeRepository struct {
	Collection *mongo.Collection
}

// NewMongoRecipeRepository creates a new MongoRecipeRepository on db's recipe collection.
func NewMongoRecipeRepository(db *mongo.Database) *MongoRecipeRepository {
	return &MongoRecipeRepository{Collection: db.Collection(RecipeCollection)}
}

// ListRecipes returns every recipe in natural order.
func (r *MongoRecipeRepository) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	return r.find(ctx, bson.M{}, options.Find())
}

// GetRecipeByID retrieves a recipe by its ObjectID hex string.
func (r *MongoRecipeRepository) GetRecipeByID(ctx context.Context, recipeID string) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(recipeID)
	if err != nil {
		return nil, ErrRecipeNotFound
	}

	var doc recipeDocument
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecipeNotFound
		}
		logger.Get().Error("error retrieving recipe", zap.String("recipe_id", recipeID), zap.Error(err))
		return nil, err
	}

	recipe := doc.toModel()
	return &recipe, nil
}

// CreateRecipe inserts a new recipe and sets its ID and CreatedAt.
func (r *MongoRecipeRepository) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	recipe.CreatedAt = time.Now().UTC()
	doc := newRecipeDocument(recipe)
	doc.ID = primitive.NewObjectID()

	if _, err := r.Collection.InsertOne(ctx, doc); err != nil {
		logger.Get().Error("error creating recipe", zap.Error(err))
		return err
	}

	recipe.ID = doc.ID.Hex()
	return nil
}

// UpdateRecipe replaces every mutable field of a recipe and returns the stored result.
func (r *MongoRecipeRepository) UpdateRecipe(ctx context.Context, recipeID string, recipe *models.Recipe) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(recipeID)
	if err != nil {
		return nil, ErrRecipeNotFound
	}

	// Optional fields are set to null rather than left untouched.
	update := bson.M{"$set": bson.M{
		"title":        recipe.Title,
		"ingredients":  nonNil(recipe.Ingredients),
		"instructions": nonNil(recipe.Instructions),
		"prepTime":     recipe.PrepTime,
		"cookTime":     recipe.CookTime,
		"servings":     recipe.Servings,
		"tags":         nonNil(recipe.Tags),
		"language":     string(recipe.Language),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc recipeDocument
	if err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecipeNotFound
		}
		logger.Get().Error("error updating recipe", zap.String("recipe_id", recipeID), zap.Error(err))
		return nil, err
	}

	updated := doc.toModel()
	return &updated, nil
}

// DeleteRecipe deletes a recipe.
func (r *MongoRecipeRepository) DeleteRecipe(ctx context.Context, recipeID string) error {
	oid, err := primitive.ObjectIDFromHex(recipeID)
	if err != nil {
		return ErrRecipeNotFound
	}

	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Get().Error("error deleting recipe", zap.String("recipe_id", recipeID), zap.Error(err))
		return err
	}
	if res.DeletedCount == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// FindRecipesByLanguage returns up to limit recipes written in language.
func (r *MongoRecipeRepository) FindRecipesByLanguage(ctx context.Context, language models.Language, limit int) ([]models.Recipe, error) {
	return r.find(ctx, bson.M{"language": string(language)}, options.Find().SetLimit(int64(limit)))
}

// ReplaceAll clears the collection and inserts the given batch.
func (r *MongoRecipeRepository) ReplaceAll(ctx context.Context, recipes []models.Recipe) error {
	if _, err := r.Collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(recipes) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(recipes))
	for i := range recipes {
		if recipes[i].CreatedAt.IsZero() {
			recipes[i].CreatedAt = now
		}
		doc := newRecipeDocument(&recipes[i])
		doc.ID = primitive.NewObjectID()
		recipes[i].ID = doc.ID.Hex()
		docs[i] = doc
	}

	_, err := r.Collection.InsertMany(ctx, docs)
	return err
}

func (r *MongoRecipeRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Recipe, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		logger.Get().Error("error querying recipes", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []recipeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	recipes := make([]models.Recipe, len(docs))
	for i, doc := range docs {
		recipes[i] = doc.toModel()
	}
	return recipes, nil
}
