package service

import (
	"context"
	"fmt"
	"time"

	"github.com/windoze95/cookiemice-api/internal/models"
	"github.com/windoze95/cookiemice-api/internal/repository"
)

// RecipeService is the business logic layer for recipe CRUD operations.
type RecipeService struct {
	Repo repository.RecipeRepo
}

// NewRecipeService is the constructor function for initializing a new RecipeService
func NewRecipeService(repo repository.RecipeRepo) *RecipeService {
	return &RecipeService{Repo: repo}
}

// ListRecipes returns every recipe in storage order.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.Repo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}

// GetRecipe returns the recipe with the given ID.
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID string) (*models.Recipe, error) {
	recipe, err := s.Repo.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

// CreateRecipe validates and stores a new recipe. The store assigns ID and CreatedAt.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	recipe.Normalize()
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	recipe.ID = ""
	recipe.CreatedAt = time.Time{}
	if err := s.Repo.CreateRecipe(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

// UpdateRecipe replaces every mutable field of an existing recipe.
func (s *RecipeService) UpdateRecipe(ctx context.Context, recipeID string, recipe *models.Recipe) (*models.Recipe, error) {
	recipe.Normalize()
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateRecipe(ctx, recipeID, recipe)
	if err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	return updated, nil
}

// DeleteRecipe removes a recipe.
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID string) error {
	if err := s.Repo.DeleteRecipe(ctx, recipeID); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}
