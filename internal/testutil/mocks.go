package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/windoze95/cookiemice-api/internal/ai"
	"github.com/windoze95/cookiemice-api/internal/audio"
	"github.com/windoze95/cookiemice-api/internal/models"
	"github.com/windoze95/cookiemice-api/internal/repository"
)

// --- MockTextProvider ---

// MockTextProvider is a mock implementation of ai.TextProvider.
type MockTextProvider struct {
	GenerateTextFunc func(ctx context.Context, prompt string) (string, error)

	// LastPrompt records the prompt of the most recent call.
	LastPrompt string
}

func (m *MockTextProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, prompt)
	}
	return "", fmt.Errorf("GenerateText not configured")
}

// MockModelLister is a MockTextProvider that can also list models.
type MockModelLister struct {
	MockTextProvider
	ListModelsFunc func(ctx context.Context) ([]ai.ModelInfo, error)
}

func (m *MockModelLister) ListModels(ctx context.Context) ([]ai.ModelInfo, error) {
	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx)
	}
	return nil, fmt.Errorf("ListModels not configured")
}

// --- MockSpeechProvider ---

// MockSpeechProvider is a mock implementation of ai.SpeechProvider.
type MockSpeechProvider struct {
	TranscribeFunc func(ctx context.Context, pcm *audio.PCM, languageCode string) (string, error)
	SynthesizeFunc func(ctx context.Context, text string, languageCode string) ([]byte, error)
}

func (m *MockSpeechProvider) Transcribe(ctx context.Context, pcm *audio.PCM, languageCode string) (string, error) {
	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, pcm, languageCode)
	}
	return "", fmt.Errorf("Transcribe not configured")
}

func (m *MockSpeechProvider) Synthesize(ctx context.Context, text string, languageCode string) ([]byte, error) {
	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, text, languageCode)
	}
	return nil, fmt.Errorf("Synthesize not configured")
}

// --- MockRecipeRepo ---

// MockRecipeRepo is an in-memory mock implementation of repository.RecipeRepo.
// Recipes are kept in insertion order.
type MockRecipeRepo struct {
	mu      sync.Mutex
	Recipes []models.Recipe

	// Error overrides: set these to force specific methods to return errors.
	ListRecipesErr           error
	GetRecipeByIDErr         error
	CreateRecipeErr          error
	UpdateRecipeErr          error
	DeleteRecipeErr          error
	FindRecipesByLanguageErr error

	// FindCalls counts FindRecipesByLanguage invocations.
	FindCalls int
}

// NewMockRecipeRepo creates a new MockRecipeRepo holding the given recipes.
func NewMockRecipeRepo(recipes ...models.Recipe) *MockRecipeRepo {
	m := &MockRecipeRepo{}
	for _, r := range recipes {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		m.Recipes = append(m.Recipes, r)
	}
	return m
}

func (m *MockRecipeRepo) indexOf(recipeID string) int {
	for i := range m.Recipes {
		if m.Recipes[i].ID == recipeID {
			return i
		}
	}
	return -1
}

func (m *MockRecipeRepo) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	if m.ListRecipesErr != nil {
		return nil, m.ListRecipesErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Recipe, len(m.Recipes))
	copy(out, m.Recipes)
	return out, nil
}

func (m *MockRecipeRepo) GetRecipeByID(ctx context.Context, recipeID string) (*models.Recipe, error) {
	if m.GetRecipeByIDErr != nil {
		return nil, m.GetRecipeByIDErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(recipeID)
	if i < 0 {
		return nil, repository.ErrRecipeNotFound
	}
	r := m.Recipes[i]
	return &r, nil
}

func (m *MockRecipeRepo) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	if m.CreateRecipeErr != nil {
		return m.CreateRecipeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	recipe.ID = uuid.NewString()
	recipe.CreatedAt = time.Now().UTC()
	m.Recipes = append(m.Recipes, *recipe)
	return nil
}

func (m *MockRecipeRepo) UpdateRecipe(ctx context.Context, recipeID string, recipe *models.Recipe) (*models.Recipe, error) {
	if m.UpdateRecipeErr != nil {
		return nil, m.UpdateRecipeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(recipeID)
	if i < 0 {
		return nil, repository.ErrRecipeNotFound
	}
	updated := *recipe
	updated.ID = m.Recipes[i].ID
	updated.CreatedAt = m.Recipes[i].CreatedAt
	m.Recipes[i] = updated
	return &updated, nil
}

func (m *MockRecipeRepo) DeleteRecipe(ctx context.Context, recipeID string) error {
	if m.DeleteRecipeErr != nil {
		return m.DeleteRecipeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(recipeID)
	if i < 0 {
		return repository.ErrRecipeNotFound
	}
	m.Recipes = append(m.Recipes[:i], m.Recipes[i+1:]...)
	return nil
}

func (m *MockRecipeRepo) FindRecipesByLanguage(ctx context.Context, language models.Language, limit int) ([]models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FindCalls++
	if m.FindRecipesByLanguageErr != nil {
		return nil, m.FindRecipesByLanguageErr
	}

	var out []models.Recipe
	for _, r := range m.Recipes {
		if len(out) >= limit {
			break
		}
		if r.Language == language {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockRecipeRepo) ReplaceAll(ctx context.Context, recipes []models.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Recipes = nil
	for _, r := range recipes {
		r.ID = uuid.NewString()
		r.CreatedAt = time.Now().UTC()
		m.Recipes = append(m.Recipes, r)
	}
	return nil
}
