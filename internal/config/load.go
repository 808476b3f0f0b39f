package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// STUDIO_LLM_GEMINI_API_KEY for llm.gemini_api_key.
const EnvPrefix = "STUDIO"

// Load configuration from environment variables and optionally config files.
// A .env file in the working directory is loaded first when present, then an
// optional config.yaml. Environment variables take precedence over values
// from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom behaves like Load but looks for .env and config.yaml in dir.
func LoadFrom(dir string) (*Config, error) {
	if err := godotenv.Load(dir + "/.env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("llm.backend", "rest")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.base_url", "https://generativelanguage.googleapis.com")

	v.SetDefault("images.endpoint", "https://clipdrop-api.co/text-to-image/v1")
	v.SetDefault("images.model", "stable-diffusion-xl")

	v.SetDefault("auth.token_lifetime_minutes", 60)

	v.SetDefault("sweeper.schedule", "0 */15 * * * *")
	v.SetDefault("sweeper.image_ttl", "24h")
	v.SetDefault("sweeper.session_ttl", "2h")
}

// bindEnvs registers keys without defaults so AutomaticEnv picks them up
// during Unmarshal.
func bindEnvs(v *viper.Viper) {
	for _, key := range []string{
		"llm.gemini_api_key",
		"images.api_key",
		"database.url",
		"auth.jwt_secret",
	} {
		_ = v.BindEnv(key)
	}
}
