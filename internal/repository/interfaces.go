package repository

import (
	"context"

	"github.com/windoze95/cookiemice-api/internal/models"
)

// RecipeRepo is the interface for recipe repository operations.
// Unknown and malformed IDs both surface as NotFoundError.
type RecipeRepo interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipeByID(ctx context.Context, recipeID string) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *models.Recipe) error
	UpdateRecipe(ctx context.Context, recipeID string, recipe *models.Recipe) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID string) error
	FindRecipesByLanguage(ctx context.Context, language models.Language, limit int) ([]models.Recipe, error)
	ReplaceAll(ctx context.Context, recipes []models.Recipe) error
}
