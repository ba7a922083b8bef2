package ai

import "context"

// Generator is a text-in text-out model backend. Implement this to add
// a new provider (Gemini, Ollama, OpenAI, ...).
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderType selects the model backend.
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)

// TriageRequest describes the symptoms a user reports.
type TriageRequest struct {
	Symptoms     []string `json:"symptoms" binding:"required,min=1"`
	DurationDays int      `json:"duration_days"`
	Severity     string   `json:"severity"`
}

// TriageResult is the model's urgency assessment.
type TriageResult struct {
	Urgency        string `json:"urgency"` // low, moderate, urgent, emergency
	Recommendation string `json:"recommendation"`
	Specialist     string `json:"specialist,omitempty"`
}

// ProfileContext is the slice of a health profile that meal suggestions
// are conditioned on.
type ProfileContext struct {
	DietaryPreference string
	Allergies         []string
	DailyCalorieGoal  int
	HealthGoal        string
}

// MealSuggestion is one suggested meal.
type MealSuggestion struct {
	Name        string  `json:"name"`
	MealType    string  `json:"meal_type"`
	Calories    float64 `json:"calories"`
	Description string  `json:"description,omitempty"`
}

// ChatMessage is one turn of a wellness conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}
