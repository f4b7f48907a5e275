// Package config loads runtime settings from the environment, with an
// optional .env file overlay for local development.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the Reel backend.
type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	JWTSecret   string
	AppURL      string
	AppEnv      string
	LogLevel    string
	ResendKey   string
	FromEmail   string
	ExtensionID string

	DraftStrategy string
	GeminiAPIKey  string
	GeminiModel   string
	DraftTimeout  time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Port = "8080"
	c.DBName = "reel"
	c.AppURL = "http://localhost:3000"
	c.AppEnv = "development"
	c.LogLevel = "info"
	c.FromEmail = "Reel.fyi <hello@reel.fyi>"
	c.DraftStrategy = "template"
	c.GeminiModel = "gemini-2.0-flash"
	c.DraftTimeout = 20 * time.Second
}

// Load applies defaults, then the optional .env file, then the process
// environment.
func Load() *Config {
	// Missing .env is fine, production sets env vars directly.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.MongoURI = getEnv("MONGODB_URI", c.MongoURI)
	c.DBName = getEnv("DB_NAME", c.DBName)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.AppURL = getEnv("APP_URL", c.AppURL)
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.ResendKey = getEnv("RESEND_API_KEY", c.ResendKey)
	c.FromEmail = getEnv("FROM_EMAIL", c.FromEmail)
	c.ExtensionID = getEnv("EXTENSION_ID", c.ExtensionID)
	c.DraftStrategy = getEnv("DRAFT_STRATEGY", c.DraftStrategy)
	c.GeminiAPIKey = getEnv("GEMINI_API_KEY", c.GeminiAPIKey)
	c.GeminiModel = getEnv("GEMINI_MODEL", c.GeminiModel)

	if v := os.Getenv("DRAFT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.DraftTimeout = d
		}
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGODB_URI is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.DraftStrategy == "generative" && c.GeminiAPIKey == "" {
		errs = append(errs, errors.New("GEMINI_API_KEY is required for the generative draft strategy"))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
