package usecase

import (
	"context"

	profilerepo "healthtrack-backend/internal/profile/repository"
	"healthtrack-backend/pkg/ai"
)

// InsightUsecase runs the AI pass-through operations, conditioning them
// on the user's health profile where one exists.
type InsightUsecase interface {
	Triage(ctx context.Context, req ai.TriageRequest) (*ai.TriageResult, error)
	SuggestMeals(ctx context.Context, userID string) ([]ai.MealSuggestion, error)
	GroceryList(ctx context.Context, meals []string) ([]string, error)
	Chat(ctx context.Context, history []ai.ChatMessage, message string) (string, error)
}

type insightUsecase struct {
	advisor     *ai.Advisor
	profileRepo profilerepo.ProfileRepository
}

func NewInsightUsecase(advisor *ai.Advisor, profileRepo profilerepo.ProfileRepository) InsightUsecase {
	return &insightUsecase{
		advisor:     advisor,
		profileRepo: profileRepo,
	}
}

func (u *insightUsecase) Triage(ctx context.Context, req ai.TriageRequest) (*ai.TriageResult, error) {
	return u.advisor.TriageSymptoms(ctx, req)
}

// SuggestMeals conditions suggestions on the user's profile. No profile
// yet means no constraints, not an error.
func (u *insightUsecase) SuggestMeals(ctx context.Context, userID string) ([]ai.MealSuggestion, error) {
	var profileCtx ai.ProfileContext

	profile, err := u.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		profileCtx = ai.ProfileContext{
			DietaryPreference: profile.DietaryPreference,
			Allergies:         profile.Allergies,
			DailyCalorieGoal:  profile.DailyCalorieGoal,
			HealthGoal:        profile.HealthGoal,
		}
	}

	return u.advisor.SuggestMeals(ctx, profileCtx)
}

func (u *insightUsecase) GroceryList(ctx context.Context, meals []string) ([]string, error) {
	return u.advisor.GroceryList(ctx, meals)
}

func (u *insightUsecase) Chat(ctx context.Context, history []ai.ChatMessage, message string) (string, error) {
	return u.advisor.Chat(ctx, history, message)
}
