package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Session  SessionConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// AuthConfig holds OIDC identity provider settings
type AuthConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
	JWKSRefresh  time.Duration
}

// SessionConfig holds login session settings
type SessionConfig struct {
	TTL     time.Duration
	Cleanup time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("SERVER_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			Host:      getEnv("DB_HOST", "localhost"),
			Port:      getEnv("DB_PORT", "8000"),
			Namespace: getEnv("DB_NAMESPACE", "hangar"),
			Database:  getEnv("DB_DATABASE", "main"),
			User:      getEnv("DB_USER", "root"),
			Password:  getEnv("DB_PASSWORD", "root"),
		},
		Auth: AuthConfig{
			Domain:       getEnv("AUTH_DOMAIN", ""),
			ClientID:     getEnv("AUTH_CLIENT_ID", ""),
			ClientSecret: getEnv("AUTH_CLIENT_SECRET", ""),
			CallbackURL:  getEnv("AUTH_CALLBACK_URL", "http://localhost:8080/callback"),
			JWKSRefresh:  getDurationEnv("AUTH_JWKS_REFRESH", 15*time.Minute),
		},
		Session: SessionConfig{
			TTL:     getDurationEnv("SESSION_TTL", 24*time.Hour),
			Cleanup: getDurationEnv("SESSION_CLEANUP", time.Hour),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// JWKSURL returns the provider's key set endpoint
func (a AuthConfig) JWKSURL() string {
	return fmt.Sprintf("https://%s/.well-known/jwks.json", a.Domain)
}

// Issuer returns the expected iss claim of provider-signed tokens
func (a AuthConfig) Issuer() string {
	return fmt.Sprintf("https://%s/", a.Domain)
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Database validation
	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.Database.Port == "" {
		errs = append(errs, errors.New("DB_PORT is required"))
	}
	if c.Database.Namespace == "" {
		errs = append(errs, errors.New("DB_NAMESPACE is required"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE is required"))
	}

	// Identity provider validation - required outside of tests
	if c.Server.Env != "test" {
		var missing []string
		if c.Auth.Domain == "" {
			missing = append(missing, "AUTH_DOMAIN")
		}
		if c.Auth.ClientID == "" {
			missing = append(missing, "AUTH_CLIENT_ID")
		}
		if c.Auth.ClientSecret == "" {
			missing = append(missing, "AUTH_CLIENT_SECRET")
		}
		if c.Auth.CallbackURL == "" {
			missing = append(missing, "AUTH_CALLBACK_URL")
		}
		if len(missing) > 0 {
			errs = append(errs, fmt.Errorf("identity provider: missing required fields: %s", strings.Join(missing, ", ")))
		}
	}
	if c.Auth.JWKSRefresh <= 0 {
		errs = append(errs, errors.New("AUTH_JWKS_REFRESH must be positive"))
	}

	// Session validation
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.Session.Cleanup <= 0 {
		errs = append(errs, errors.New("SESSION_CLEANUP must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
