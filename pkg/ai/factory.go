package ai

import (
	"fmt"

	"healthtrack-backend/pkg/gemini"
)

// Config holds AI provider configuration.
type Config struct {
	Provider ProviderType

	// Gemini config
	GeminiAPIKey string

	// Ollama config
	OllamaBaseURL string
	OllamaModel   string
}

// NewAdvisorFromConfig picks a Generator per the config and wraps it in
// an Advisor. Switch providers by changing Config.Provider.
func NewAdvisorFromConfig(cfg Config) (*Advisor, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return NewAdvisor(gemini.NewGenerator(cfg.GeminiAPIKey)), nil

	case ProviderOllama:
		return NewAdvisor(NewOllamaGenerator(cfg.OllamaBaseURL, cfg.OllamaModel)), nil

	default:
		// Prefer Gemini when a key is configured, otherwise Ollama
		if cfg.GeminiAPIKey != "" {
			return NewAdvisor(gemini.NewGenerator(cfg.GeminiAPIKey)), nil
		}
		return NewAdvisor(NewOllamaGenerator(cfg.OllamaBaseURL, cfg.OllamaModel)), nil
	}
}
