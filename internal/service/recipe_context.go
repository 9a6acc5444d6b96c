package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/windoze95/cookiemice-api/internal/models"
	"github.com/windoze95/cookiemice-api/internal/repository"
)

const (
	// recipeHintTrigger must appear in a question (any case) for a hint to be built.
	recipeHintTrigger = "recipe"
	recipeHintLimit   = 5
	recipeHintLabel   = "Available recipes: "
)

// RecipeContextSelector picks catalog recipes to mention in the generation prompt.
type RecipeContextSelector struct {
	Repo repository.RecipeRepo
}

// NewRecipeContextSelector creates a selector backed by repo.
func NewRecipeContextSelector(repo repository.RecipeRepo) *RecipeContextSelector {
	return &RecipeContextSelector{Repo: repo}
}

// BuildHint returns "Available recipes: a, b, c. " when the question mentions
// recipes and the catalog has some in language, and "" otherwise.
func (s *RecipeContextSelector) BuildHint(ctx context.Context, question string, language models.Language) (string, error) {
	if !strings.Contains(strings.ToLower(question), recipeHintTrigger) {
		return "", nil
	}
	if language == "" {
		language = models.DefaultLanguage
	}
	if !language.IsValid() {
		return "", nil
	}

	recipes, err := s.Repo.FindRecipesByLanguage(ctx, language, recipeHintLimit)
	if err != nil {
		return "", fmt.Errorf("failed to load recipe context: %w", err)
	}
	if len(recipes) == 0 {
		return "", nil
	}

	titles := make([]string, len(recipes))
	for i, r := range recipes {
		titles[i] = r.Title
	}
	return recipeHintLabel + strings.Join(titles, ", ") + ". ", nil
}
