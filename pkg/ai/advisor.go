package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Advisor turns health questions into prompts, runs them through a
// Generator, and coerces the model's output into typed results. All
// ranking and judgement is delegated to the model.
type Advisor struct {
	gen Generator
}

func NewAdvisor(gen Generator) *Advisor {
	return &Advisor{gen: gen}
}

// TriageSymptoms asks the model to rank symptom urgency.
func (a *Advisor) TriageSymptoms(ctx context.Context, req TriageRequest) (*TriageResult, error) {
	prompt := fmt.Sprintf(`You are a cautious health triage assistant. You do not diagnose; you assess urgency and point to the right kind of care.

Symptoms: %s
Duration: %d day(s)
Self-reported severity: %s

Respond with ONLY a JSON object in this exact shape:
{"urgency": "low|moderate|urgent|emergency", "recommendation": "one or two sentences of plain advice", "specialist": "the kind of doctor to see, or empty if none needed"}

If the symptoms could indicate a medical emergency, always choose "emergency" and recommend immediate care.`,
		strings.Join(req.Symptoms, ", "), req.DurationDays, req.Severity)

	raw, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result TriageResult
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &result); err != nil {
		return nil, fmt.Errorf("unexpected triage response shape: %w", err)
	}
	if result.Urgency == "" {
		return nil, fmt.Errorf("triage response missing urgency")
	}
	return &result, nil
}

// SuggestMeals asks for a day of meals fitted to the profile.
func (a *Advisor) SuggestMeals(ctx context.Context, profile ProfileContext) ([]MealSuggestion, error) {
	var constraints []string
	if profile.DietaryPreference != "" {
		constraints = append(constraints, "dietary preference: "+profile.DietaryPreference)
	}
	if len(profile.Allergies) > 0 {
		constraints = append(constraints, "allergies (MUST avoid): "+strings.Join(profile.Allergies, ", "))
	}
	if profile.DailyCalorieGoal > 0 {
		constraints = append(constraints, fmt.Sprintf("daily calorie goal: %d kcal", profile.DailyCalorieGoal))
	}
	if profile.HealthGoal != "" {
		constraints = append(constraints, "health goal: "+profile.HealthGoal)
	}
	if len(constraints) == 0 {
		constraints = append(constraints, "no specific constraints")
	}

	prompt := fmt.Sprintf(`You are a nutrition assistant. Suggest one day of meals (breakfast, lunch, dinner, one snack) for a person with:
%s

Respond with ONLY a JSON array in this exact shape:
[{"name": "...", "meal_type": "breakfast|lunch|dinner|snack", "calories": 0, "description": "..."}]`,
		"- "+strings.Join(constraints, "\n- "))

	raw, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var meals []MealSuggestion
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &meals); err != nil {
		return nil, fmt.Errorf("unexpected meal response shape: %w", err)
	}
	return meals, nil
}

// GroceryList asks for a consolidated shopping list for the given meals.
func (a *Advisor) GroceryList(ctx context.Context, meals []string) ([]string, error) {
	prompt := fmt.Sprintf(`Build a consolidated grocery list for these meals:
%s

Combine duplicate ingredients. Respond with ONLY a JSON array of ingredient strings, e.g. ["2 chicken breasts", "1 bag spinach"].`,
		"- "+strings.Join(meals, "\n- "))

	raw, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var items []string
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &items); err != nil {
		return nil, fmt.Errorf("unexpected grocery response shape: %w", err)
	}
	return items, nil
}

// Chat continues a wellness conversation. Plain text out, no coercion.
func (a *Advisor) Chat(ctx context.Context, history []ChatMessage, message string) (string, error) {
	var b strings.Builder
	b.WriteString("You are a supportive wellness companion. You give practical, encouraging advice on everyday health habits. You are not a doctor and say so when a question needs one.\n\n")
	for _, m := range history {
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	b.WriteString("user: ")
	b.WriteString(message)
	b.WriteString("\nassistant:")

	reply, err := a.gen.Generate(ctx, b.String())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}
