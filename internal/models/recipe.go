package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Language is the language a recipe is written in.
type Language string

// Language enum values.
const (
	LanguageEnglish  Language = "English"
	LanguageHindi    Language = "Hindi"
	LanguageHaryanvi Language = "Haryanvi"
)

// DefaultLanguage is used whenever a caller does not name a language.
const DefaultLanguage = LanguageEnglish

// Languages lists every supported recipe language in display order.
var Languages = []Language{LanguageEnglish, LanguageHindi, LanguageHaryanvi}

// IsValid reports whether l is one of the supported languages.
func (l Language) IsValid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// ResolveLanguage returns DefaultLanguage for an empty value and the trimmed value otherwise.
func ResolveLanguage(language string) Language {
	language = strings.TrimSpace(language)
	if language == "" {
		return DefaultLanguage
	}
	return Language(language)
}

// StringList is an ordered list of strings stored as a JSON text column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal string list value:", value))
	}

	var result []string
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*l = StringList(result)
	return nil
}

// Recipe is the model for a recipe in the catalog.
type Recipe struct {
	ID           string     `json:"id" yaml:"-" gorm:"type:varchar(36);primaryKey"`
	Title        string     `json:"title" yaml:"title" gorm:"not null"`
	Ingredients  StringList `json:"ingredients" yaml:"ingredients" gorm:"type:text"`
	Instructions StringList `json:"instructions" yaml:"instructions" gorm:"type:text"`
	PrepTime     *int       `json:"prepTime,omitempty" yaml:"prepTime,omitempty"`
	CookTime     *int       `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`
	Servings     *int       `json:"servings,omitempty" yaml:"servings,omitempty"`
	Tags         StringList `json:"tags" yaml:"tags" gorm:"type:text"`
	Language     Language   `json:"language" yaml:"language" gorm:"type:varchar(16);index;not null"`
	CreatedAt    time.Time  `json:"createdAt" yaml:"-"`
}

// BeforeCreate assigns the recipe ID when the SQL store creates a row.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// recipeRules holds the tag-driven checks; list and numeric rules live in Validate.
type recipeRules struct {
	Title    string `valid:"required~title is required"`
	Language string `valid:"required~language is required,in(English|Hindi|Haryanvi)~language must be one of English, Hindi, Haryanvi"`
}

// Validate checks the recipe's required fields and ranges.
func (r *Recipe) Validate() error {
	rules := recipeRules{
		Title:    strings.TrimSpace(r.Title),
		Language: string(r.Language),
	}
	if _, err := govalidator.ValidateStruct(rules); err != nil {
		for _, field := range []string{"Title", "Language"} {
			if msg := govalidator.ErrorByField(err, field); msg != "" {
				return &ValidationError{Field: strings.ToLower(field), Message: msg}
			}
		}
		return &ValidationError{Message: err.Error()}
	}

	for i, ingredient := range r.Ingredients {
		if strings.TrimSpace(ingredient) == "" {
			return &ValidationError{Field: "ingredients", Message: fmt.Sprintf("ingredients[%d] must not be empty", i)}
		}
	}
	for i, step := range r.Instructions {
		if strings.TrimSpace(step) == "" {
			return &ValidationError{Field: "instructions", Message: fmt.Sprintf("instructions[%d] must not be empty", i)}
		}
	}
	if r.PrepTime != nil && *r.PrepTime < 0 {
		return &ValidationError{Field: "prepTime", Message: "prepTime must not be negative"}
	}
	if r.CookTime != nil && *r.CookTime < 0 {
		return &ValidationError{Field: "cookTime", Message: "cookTime must not be negative"}
	}
	if r.Servings != nil && *r.Servings <= 0 {
		return &ValidationError{Field: "servings", Message: "servings must be positive"}
	}
	return nil
}

// Normalize trims the title and replaces nil lists with empty ones.
func (r *Recipe) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	if r.Ingredients == nil {
		r.Ingredients = StringList{}
	}
	if r.Instructions == nil {
		r.Instructions = StringList{}
	}
	if r.Tags == nil {
		r.Tags = StringList{}
	}
}
