// Package seed loads and exports the recipe catalog used to initialise a store.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/windoze95/cookiemice-api/internal/config"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"github.com/windoze95/cookiemice-api/internal/models"
	"github.com/windoze95/cookiemice-api/internal/repository"
	"github.com/windoze95/cookiemice-api/internal/s3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultSource is the catalog shipped with the repository.
const DefaultSource = "configs/seed_recipes.yaml"

// Catalog is the on-disk shape of a seed file.
type Catalog struct {
	Recipes []models.Recipe `json:"recipes" yaml:"recipes"`
}

// Read fetches source from the local filesystem or, for s3://bucket/key, from S3.
func Read(ctx context.Context, cfg *config.Config, source string) ([]byte, error) {
	if obj, ok := s3.ParseURL(source); ok {
		return s3.DownloadObject(ctx, cfg, obj)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return data, nil
}

// Parse decodes a catalog. Files ending in .json are JSON, everything else YAML.
// Every recipe is normalized and validated; stored IDs are discarded.
func Parse(source string, data []byte) ([]models.Recipe, error) {
	var catalog Catalog
	if isJSON(source) {
		if err := json.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("failed to parse seed JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
		}
	}

	for i := range catalog.Recipes {
		r := &catalog.Recipes[i]
		r.ID = ""
		r.Normalize()
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("recipe %d (%q): %w", i, r.Title, err)
		}
	}
	return catalog.Recipes, nil
}

// Load reads and parses source.
func Load(ctx context.Context, cfg *config.Config, source string) ([]models.Recipe, error) {
	data, err := Read(ctx, cfg, source)
	if err != nil {
		return nil, err
	}
	return Parse(source, data)
}

// Apply replaces the store's catalog with recipes.
func Apply(ctx context.Context, repo repository.RecipeRepo, recipes []models.Recipe) error {
	if err := repo.ReplaceAll(ctx, recipes); err != nil {
		return fmt.Errorf("failed to replace recipes: %w", err)
	}

	counts := make(map[models.Language]int)
	for _, r := range recipes {
		counts[r.Language]++
	}
	logger.Get().Info("seeded recipes",
		zap.Int("total", len(recipes)),
		zap.Int("english", counts[models.LanguageEnglish]),
		zap.Int("hindi", counts[models.LanguageHindi]),
		zap.Int("haryanvi", counts[models.LanguageHaryanvi]),
	)
	return nil
}

// Export writes the store's current catalog to dest in the seed file format.
func Export(ctx context.Context, cfg *config.Config, repo repository.RecipeRepo, dest string) error {
	recipes, err := repo.ListRecipes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}

	catalog := Catalog{Recipes: recipes}
	var (
		data        []byte
		contentType string
	)
	if isJSON(dest) {
		data, err = json.MarshalIndent(catalog, "", "  ")
		contentType = "application/json"
	} else {
		data, err = yaml.Marshal(catalog)
		contentType = "application/yaml"
	}
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if obj, ok := s3.ParseURL(dest); ok {
		location, err := s3.UploadObject(ctx, cfg, obj, data, contentType)
		if err != nil {
			return err
		}
		logger.Get().Info("exported recipes", zap.Int("total", len(recipes)), zap.String("location", location))
		return nil
	}

	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	logger.Get().Info("exported recipes", zap.Int("total", len(recipes)), zap.String("path", dest))
	return nil
}

func isJSON(source string) bool {
	return strings.EqualFold(filepath.Ext(source), ".json")
}
