package service

import (
	"context"
	"errors"
	"testing"

	"github.com/windoze95/cookiemice-api/internal/models"
	"github.com/windoze95/cookiemice-api/internal/repository"
	"github.com/windoze95/cookiemice-api/internal/testutil"
)

func TestCreateRecipe_AssignsIDAndTimestamp(t *testing.T) {
	repo := testutil.NewMockRecipeRepo()
	svc := NewRecipeService(repo)

	r := testutil.TestRecipe()
	r.Title = "  Tea  "
	created, err := svc.CreateRecipe(context.Background(), &r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be assigned")
	}
	if created.Title != "Tea" {
		t.Errorf("Title = %q, want 'Tea'", created.Title)
	}
	if len(repo.Recipes) != 1 {
		t.Errorf("stored %d recipes, want 1", len(repo.Recipes))
	}
}

func TestCreateRecipe_InvalidLanguage(t *testing.T) {
	repo := testutil.NewMockRecipeRepo()
	svc := NewRecipeService(repo)

	r := testutil.TestRecipe()
	r.Language = "French"
	_, err := svc.CreateRecipe(context.Background(), &r)

	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "language" {
		t.Errorf("Field = %q, want 'language'", vErr.Field)
	}
	if len(repo.Recipes) != 0 {
		t.Error("invalid recipe must not reach the store")
	}
}

func TestCreateRecipe_MissingTitle(t *testing.T) {
	svc := NewRecipeService(testutil.NewMockRecipeRepo())

	r := testutil.TestRecipe()
	r.Title = "   "
	_, err := svc.CreateRecipe(context.Background(), &r)

	var vErr *models.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "title" {
		t.Fatalf("expected title ValidationError, got %v", err)
	}
}

func TestGetRecipe_NotFound(t *testing.T) {
	svc := NewRecipeService(testutil.NewMockRecipeRepo())

	_, err := svc.GetRecipe(context.Background(), "does-not-exist")
	var nfErr repository.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdateRecipe_PreservesIdentity(t *testing.T) {
	repo := testutil.NewMockRecipeRepo()
	svc := NewRecipeService(repo)

	r := testutil.TestRecipe()
	created, err := svc.CreateRecipe(context.Background(), &r)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id, createdAt := created.ID, created.CreatedAt

	replacement := testutil.TestRecipe()
	replacement.Title = "Ginger Chai"
	replacement.Servings = nil
	updated, err := svc.UpdateRecipe(context.Background(), id, &replacement)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != id || !updated.CreatedAt.Equal(createdAt) {
		t.Error("update must preserve id and createdAt")
	}
	if updated.Title != "Ginger Chai" {
		t.Errorf("Title = %q, want 'Ginger Chai'", updated.Title)
	}
	if updated.Servings != nil {
		t.Error("absent servings should be cleared by a full replace")
	}
}

func TestDeleteRecipe_Twice(t *testing.T) {
	repo := testutil.NewMockRecipeRepo(testutil.TestRecipe())
	svc := NewRecipeService(repo)
	id := repo.Recipes[0].ID

	if err := svc.DeleteRecipe(context.Background(), id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	err := svc.DeleteRecipe(context.Background(), id)
	var nfErr repository.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError on second delete, got %v", err)
	}
}

func TestListRecipes_EmptyIsNotNil(t *testing.T) {
	svc := NewRecipeService(testutil.NewMockRecipeRepo())

	recipes, err := svc.ListRecipes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recipes == nil {
		t.Error("expected empty slice, got nil")
	}
}
