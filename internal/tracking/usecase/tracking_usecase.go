package usecase

import (
	"time"

	"healthtrack-backend/internal/tracking/domain"
	"healthtrack-backend/internal/tracking/repository"
	"healthtrack-backend/pkg/fuzzy"
)

// SearchResult is one fuzzy match over a user's logged entries.
type SearchResult struct {
	Kind     string    `json:"kind"` // "nutrition" or "exercise"
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	LoggedAt time.Time `json:"logged_at"`
}

// TrackingUsecase owns all daily-metric operations. Every create forces
// the owner to the authenticated user; deletes assume the ownership
// guard already ran.
type TrackingUsecase interface {
	LogNutrition(userID string, log *domain.NutritionLog) (*domain.NutritionLog, error)
	ListNutrition(userID string, from, to time.Time) ([]*domain.NutritionLog, error)
	DeleteNutrition(id string) error

	LogExercise(userID string, log *domain.ExerciseLog) (*domain.ExerciseLog, error)
	ListExercise(userID string, from, to time.Time) ([]*domain.ExerciseLog, error)
	DeleteExercise(id string) error

	LogWeight(userID string, log *domain.WeightLog) (*domain.WeightLog, error)
	ListWeight(userID string, from, to time.Time) ([]*domain.WeightLog, error)
	DeleteWeight(id string) error

	LogWater(userID string, log *domain.WaterLog) (*domain.WaterLog, error)
	ListWater(userID string, from, to time.Time) ([]*domain.WaterLog, error)
	DeleteWater(id string) error

	LogSleep(userID string, log *domain.SleepLog) (*domain.SleepLog, error)
	ListSleep(userID string, from, to time.Time) ([]*domain.SleepLog, error)
	DeleteSleep(id string) error

	LogMood(userID string, log *domain.MoodLog) (*domain.MoodLog, error)
	ListMood(userID string, from, to time.Time) ([]*domain.MoodLog, error)
	DeleteMood(id string) error

	DailySummary(userID string, day time.Time) (*domain.DailySummary, error)
	Search(userID, query string) ([]SearchResult, error)
}

type trackingUsecase struct {
	repo repository.TrackingRepository
}

func NewTrackingUsecase(repo repository.TrackingRepository) TrackingUsecase {
	return &trackingUsecase{repo: repo}
}

func (u *trackingUsecase) LogNutrition(userID string, log *domain.NutritionLog) (*domain.NutritionLog, error) {
	log.UserID = userID
	if log.MealType == "" {
		log.MealType = domain.MealSnack
	}
	if err := u.repo.CreateNutrition(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (u *trackingUsecase) ListNutrition(userID string, from, to time.Time) ([]*domain.NutritionLog, error) {
	return u.repo.ListNutrition(userID, from, to)
}

func (u *trackingUsecase) DeleteNutrition(id string) error {
	return u.repo.DeleteNutrition(id)
}

func (u *trackingUsecase) LogExercise(userID string, log *domain.ExerciseLog) (*domain.ExerciseLog, error) {
	log.UserID = userID
	if err := u.repo.CreateExercise(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (u *trackingUsecase) ListExercise(userID string, from, to time.Time) ([]*domain.ExerciseLog, error) {
	return u.repo.ListExercise(userID, from, to)
}

func (u *trackingUsecase) DeleteExercise(id string) error {
	return u.repo.DeleteExercise(id)
}

func (u *trackingUsecase) LogWeight(userID string, log *domain.WeightLog) (*domain.WeightLog, error) {
	log.UserID = userID
	if err := u.repo.CreateWeight(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (u *trackingUsecase) ListWeight(userID string, from, to time.Time) ([]*domain.WeightLog, error) {
	return u.repo.ListWeight(userID, from, to)
}

func (u *trackingUsecase) DeleteWeight(id string) error {
	return u.repo.DeleteWeight(id)
}

func (u *trackingUsecase) LogWater(userID string, log *domain.WaterLog) (*domain.WaterLog, error) {
	log.UserID = userID
	if err := u.repo.CreateWater(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (u *trackingUsecase) ListWater(userID string, from, to time.Time) ([]*domain.WaterLog, error) {
	return u.repo.ListWater(userID, from, to)
}

func (u *trackingUsecase) DeleteWater(id string) error {
	return u.repo.DeleteWater(id)
}

func (u *trackingUsecase) LogSleep(userID string, log *domain.SleepLog) (*domain.SleepLog, error) {
	log.UserID = userID
	if err := u.repo.CreateSleep(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (u *trackingUsecase) ListSleep(userID string, from, to time.Time) ([]*domain.SleepLog, error) {
	return u.repo.ListSleep(userID, from, to)
}

func (u *trackingUsecase) DeleteSleep(id string) error {
	return u.repo.DeleteSleep(id)
}

func (u *trackingUsecase) LogMood(userID string, log *domain.MoodLog) (*domain.MoodLog, error) {
	log.UserID = userID
	if err := u.repo.CreateMood(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (u *trackingUsecase) ListMood(userID string, from, to time.Time) ([]*domain.MoodLog, error) {
	return u.repo.ListMood(userID, from, to)
}

func (u *trackingUsecase) DeleteMood(id string) error {
	return u.repo.DeleteMood(id)
}

// DailySummary aggregates one calendar day (local to the given instant).
func (u *trackingUsecase) DailySummary(userID string, day time.Time) (*domain.DailySummary, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	summary := &domain.DailySummary{Date: from.Format("2006-01-02")}

	nutrition, err := u.repo.ListNutrition(userID, from, to)
	if err != nil {
		return nil, err
	}
	for _, n := range nutrition {
		summary.CaloriesIn += n.Calories
		summary.ProteinG += n.ProteinG
		summary.CarbsG += n.CarbsG
		summary.FatG += n.FatG
	}

	exercise, err := u.repo.ListExercise(userID, from, to)
	if err != nil {
		return nil, err
	}
	for _, e := range exercise {
		summary.CaloriesBurned += e.CaloriesBurned
		summary.ExerciseMin += e.DurationMin
	}

	water, err := u.repo.ListWater(userID, from, to)
	if err != nil {
		return nil, err
	}
	for _, w := range water {
		summary.WaterML += w.AmountML
	}

	sleep, err := u.repo.ListSleep(userID, from, to)
	if err != nil {
		return nil, err
	}
	for _, s := range sleep {
		summary.SleepHours += s.Hours()
	}

	// Latest weight on record up to end of day, not just that day's
	weights, err := u.repo.ListWeight(userID, time.Time{}, to)
	if err != nil {
		return nil, err
	}
	if len(weights) > 0 {
		w := weights[0].WeightKg
		summary.LatestWeightKg = &w
	}

	moods, err := u.repo.ListMood(userID, from, to)
	if err != nil {
		return nil, err
	}
	if len(moods) > 0 {
		summary.Mood = moods[0].Mood
	}

	return summary, nil
}

// searchWindow bounds how far back Search looks.
const searchWindow = 90 * 24 * time.Hour

// Search fuzzy-matches the query against the user's recent food names
// and activities.
func (u *trackingUsecase) Search(userID, query string) ([]SearchResult, error) {
	from := time.Now().Add(-searchWindow)

	var results []SearchResult

	nutrition, err := u.repo.ListNutrition(userID, from, time.Time{})
	if err != nil {
		return nil, err
	}
	for _, n := range nutrition {
		if fuzzy.Match(query, n.FoodName) {
			results = append(results, SearchResult{
				Kind:     "nutrition",
				ID:       n.ID,
				Name:     n.FoodName,
				LoggedAt: n.LoggedAt,
			})
		}
	}

	exercise, err := u.repo.ListExercise(userID, from, time.Time{})
	if err != nil {
		return nil, err
	}
	for _, e := range exercise {
		if fuzzy.Match(query, e.Activity) {
			results = append(results, SearchResult{
				Kind:     "exercise",
				ID:       e.ID,
				Name:     e.Activity,
				LoggedAt: e.LoggedAt,
			})
		}
	}

	return results, nil
}
