package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"github.com/windoze95/cookiemice-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecipeRepository is a gorm-backed repository for interacting with recipes.
type RecipeRepository struct {
	DB *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository.
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{DB: db}
}

// ListRecipes returns every recipe in storage order.
func (r *RecipeRepository) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.DB.WithContext(ctx).Find(&recipes).Error; err != nil {
		logger.Get().Error("error listing recipes", zap.Error(err))
		return nil, err
	}
	return recipes, nil
}

// GetRecipeByID retrieves a recipe by its ID.
func (r *RecipeRepository) GetRecipeByID(ctx context.Context, recipeID string) (*models.Recipe, error) {
	if _, err := uuid.Parse(recipeID); err != nil {
		return nil, ErrRecipeNotFound
	}

	var recipe models.Recipe
	err := r.DB.WithContext(ctx).Where("id = ?", recipeID).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		logger.Get().Error("error retrieving recipe", zap.String("recipe_id", recipeID), zap.Error(err))
		return nil, err
	}

	return &recipe, nil
}

// CreateRecipe creates a new recipe. The ID and CreatedAt are assigned here.
func (r *RecipeRepository) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	recipe.ID = ""
	recipe.CreatedAt = time.Now().UTC()
	err := r.DB.WithContext(ctx).Create(recipe).Error
	if err != nil {
		logger.Get().Error("error creating recipe", zap.Error(err))
	}
	return err
}

// UpdateRecipe replaces every mutable field of a recipe and returns the stored result.
func (r *RecipeRepository) UpdateRecipe(ctx context.Context, recipeID string, recipe *models.Recipe) (*models.Recipe, error) {
	if _, err := uuid.Parse(recipeID); err != nil {
		return nil, ErrRecipeNotFound
	}

	var updated models.Recipe
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", recipeID).First(&updated).Error; err != nil {
			return err
		}

		// Select("*") writes zero values too, so absent optional fields are cleared.
		err := tx.Model(&models.Recipe{}).
			Where("id = ?", recipeID).
			Select("*").
			Omit("id", "created_at").
			Updates(&models.Recipe{
				Title:        recipe.Title,
				Ingredients:  recipe.Ingredients,
				Instructions: recipe.Instructions,
				PrepTime:     recipe.PrepTime,
				CookTime:     recipe.CookTime,
				Servings:     recipe.Servings,
				Tags:         recipe.Tags,
				Language:     recipe.Language,
			}).Error
		if err != nil {
			return err
		}

		return tx.Where("id = ?", recipeID).First(&updated).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		logger.Get().Error("error updating recipe", zap.String("recipe_id", recipeID), zap.Error(err))
		return nil, err
	}

	return &updated, nil
}

// DeleteRecipe deletes a recipe.
func (r *RecipeRepository) DeleteRecipe(ctx context.Context, recipeID string) error {
	if _, err := uuid.Parse(recipeID); err != nil {
		return ErrRecipeNotFound
	}

	result := r.DB.WithContext(ctx).Where("id = ?", recipeID).Delete(&models.Recipe{})
	if result.Error != nil {
		logger.Get().Error("error deleting recipe", zap.String("recipe_id", recipeID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// FindRecipesByLanguage returns up to limit recipes written in language.
func (r *RecipeRepository) FindRecipesByLanguage(ctx context.Context, language models.Language, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.DB.WithContext(ctx).
		Where("language = ?", language).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		logger.Get().Error("error finding recipes by language", zap.String("language", string(language)), zap.Error(err))
		return nil, err
	}
	return recipes, nil
}

// ReplaceAll deletes every recipe and inserts the given batch in one transaction.
func (r *RecipeRepository) ReplaceAll(ctx context.Context, recipes []models.Recipe) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Recipe{}).Error; err != nil {
			return err
		}
		if len(recipes) == 0 {
			return nil
		}
		for i := range recipes {
			recipes[i].ID = ""
		}
		return tx.Create(&recipes).Error
	})
}
