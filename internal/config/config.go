package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
	Images   ImagesConfig   `mapstructure:"images"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Sweeper  SweeperConfig  `mapstructure:"sweeper"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains the text model settings. Backend selects between the
// plain REST client and the genai SDK client.
type LLMConfig struct {
	Backend      string `mapstructure:"backend"        validate:"required,oneof=rest sdk"`
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`
	BaseURL      string `mapstructure:"base_url"       validate:"required,url"`
}

// ImagesConfig contains the image service settings. The API key is optional
// at load time; image requests fail individually when it is missing.
type ImagesConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`
	Model    string `mapstructure:"model"    validate:"required"`
}

// DatabaseConfig selects the image store. An empty URL keeps images in
// memory.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// AuthConfig enables bearer token auth on the API when JWTSecret is set.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"omitempty,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
}

// SweeperConfig controls the background cleanup of expired images and idle
// sessions. Schedule uses cron syntax with a leading seconds field.
type SweeperConfig struct {
	Schedule   string        `mapstructure:"schedule"    validate:"required"`
	ImageTTL   time.Duration `mapstructure:"image_ttl"   validate:"gt=0"`
	SessionTTL time.Duration `mapstructure:"session_ttl" validate:"gt=0"`
}
