package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Generation providers.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Speech providers.
const (
	SpeechGoogle = "google"
	SpeechOpenAI = "openai"
)

// Config holds the application configuration.
type Config struct {
	EnvVars EnvVars  `json:"env"`
	Prompts *Prompts `json:"-"`
}

// EnvVars holds environment variables required by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
type EnvVars struct {
	Port               string        `env:"PORT" envDefault:"3000"`
	DatabaseUrl        string        `env:"DATABASE_URL" envDefault:"mongodb://localhost:27017/cookiemice"`
	GenerationProvider string        `env:"GENERATION_PROVIDER" envDefault:"gemini"`
	GenerationModel    string        `env:"GENERATION_MODEL" optional:"true"`
	GoogleAPIKey       string        `env:"GOOGLE_API_KEY" optional:"true"`
	AnthropicAPIKey    string        `env:"ANTHROPIC_API_KEY" optional:"true"`
	OpenAIAPIKey       string        `env:"OPENAI_API_KEY" optional:"true"`
	AISoftDegrade      bool          `env:"AI_SOFT_DEGRADE" envDefault:"true" optional:"true"`
	SpeechProvider     string        `env:"SPEECH_PROVIDER" envDefault:"google"`
	GoogleCredentials  string        `env:"GOOGLE_APPLICATION_CREDENTIALS" optional:"true"`
	UploadDir          string        `env:"UPLOAD_DIR" envDefault:"uploads"`
	PromptsPath        string        `env:"PROMPTS_PATH" envDefault:"configs/prompts.yaml"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s" optional:"true"`
	RateLimitRPS       int           `env:"RATE_LIMIT_RPS" envDefault:"5" optional:"true"`
	CORSOrigins        []string      `env:"CORS_ORIGINS" envSeparator:"," optional:"true"`
	AWSRegion          string        `env:"AWS_REGION" optional:"true"`
	AWSAccessKeyID     string        `env:"AWS_ACCESS_KEY_ID" optional:"true"`
	AWSSecretAccessKey string        `env:"AWS_SECRET_ACCESS_KEY" optional:"true"`
}

// LoadConfig loads an optional .env file and parses environment variables
// into the Config struct. Variables already set in the environment win.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	return &config, nil
}

// CheckConfigEnvFields validates that all required EnvVars fields are set.
func (c *Config) CheckConfigEnvFields() error {
	return checkFieldsRecursive(reflect.ValueOf(c.EnvVars))
}

// Validate rejects provider names the application cannot construct.
func (c *Config) Validate() error {
	switch c.EnvVars.GenerationProvider {
	case ProviderGemini, ProviderAnthropic, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown GENERATION_PROVIDER %q", c.EnvVars.GenerationProvider)
	}
	switch c.EnvVars.SpeechProvider {
	case SpeechGoogle, SpeechOpenAI:
	default:
		return fmt.Errorf("unknown SPEECH_PROVIDER %q", c.EnvVars.SpeechProvider)
	}
	return nil
}

// GenerationAPIKey returns the credential of the configured generation provider.
func (c *Config) GenerationAPIKey() string {
	switch c.EnvVars.GenerationProvider {
	case ProviderAnthropic:
		return c.EnvVars.AnthropicAPIKey
	case ProviderOpenAI:
		return c.EnvVars.OpenAIAPIKey
	default:
		return c.EnvVars.GoogleAPIKey
	}
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if field.IsZero() {
			return fmt.Errorf("$%s must be set", fieldType.Tag.Get("env"))
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}
