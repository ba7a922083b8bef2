package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process-wide configuration. It is built once in main
// and passed by pointer; nothing mutates it after startup.
type Config struct {
	Port             string
	DatabaseURL      string
	JWTSecret        string
	JWTIssuer        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// AI provider selection
	AIProvider    string
	GeminiAPIKey  string
	OllamaBaseURL string
	OllamaModel   string

	// Push notifications
	FirebaseCredentials string
}

// ErrMissingJWTSecret is returned when JWT_SECRET is unset. There is
// deliberately no hardcoded fallback secret.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	accessExpiry := 24 * time.Hour
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	refreshExpiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_REFRESH_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			refreshExpiry = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSecret:           secret,
		JWTIssuer:           getEnv("JWT_ISSUER", "healthtrack"),
		JWTAccessExpiry:     accessExpiry,
		JWTRefreshExpiry:    refreshExpiry,
		AIProvider:          getEnv("AI_PROVIDER", "auto"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		OllamaBaseURL:       getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:         getEnv("OLLAMA_MODEL", "llama3"),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
