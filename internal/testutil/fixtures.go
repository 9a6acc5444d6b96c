package testutil

import (
	"github.com/windoze95/cookiemice-api/internal/audio"
	"github.com/windoze95/cookiemice-api/internal/models"
)

func intPtr(v int) *int { return &v }

// TestRecipe creates a valid English recipe without an ID.
func TestRecipe() models.Recipe {
	return models.Recipe{
		Title:        "Masala Chai",
		Ingredients:  models.StringList{"2 cups water", "1 cup milk", "2 tsp tea leaves", "2 tsp sugar", "1 inch ginger"},
		Instructions: models.StringList{"Boil water with ginger", "Add tea leaves and simmer", "Add milk and sugar", "Strain and serve"},
		PrepTime:     intPtr(5),
		CookTime:     intPtr(10),
		Servings:     intPtr(2),
		Tags:         models.StringList{"beverage", "quick"},
		Language:     models.LanguageEnglish,
	}
}

// TestRecipes creates a small mixed-language catalog without IDs.
func TestRecipes() []models.Recipe {
	chai := TestRecipe()

	dal := TestRecipe()
	dal.Title = "Dal Tadka"
	dal.Tags = models.StringList{"main"}

	kheer := TestRecipe()
	kheer.Title = "खीर"
	kheer.Language = models.LanguageHindi

	raabdi := TestRecipe()
	raabdi.Title = "राबड़ी"
	raabdi.Language = models.LanguageHaryanvi

	return []models.Recipe{chai, dal, kheer, raabdi}
}

// TestPCM returns a short buffer of 16 kHz mono silence.
func TestPCM() *audio.PCM {
	return &audio.PCM{
		Data:       make([]byte, 3200),
		SampleRate: audio.RequiredSampleRate,
		Channels:   1,
	}
}

// TestWAV returns TestPCM wrapped in a RIFF/WAVE container.
func TestWAV() []byte {
	return audio.EncodeWAV(TestPCM())
}
