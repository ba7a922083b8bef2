package repository

import (
	"time"

	"healthtrack-backend/internal/tracking/domain"
)

// TrackingRepository is the store for all daily metric logs. Find
// methods return (nil, nil) when no record exists; List methods filter
// by owner and logged_at range.
type TrackingRepository interface {
	CreateNutrition(log *domain.NutritionLog) error
	ListNutrition(userID string, from, to time.Time) ([]*domain.NutritionLog, error)
	FindNutritionByID(id string) (*domain.NutritionLog, error)
	DeleteNutrition(id string) error

	CreateExercise(log *domain.ExerciseLog) error
	ListExercise(userID string, from, to time.Time) ([]*domain.ExerciseLog, error)
	FindExerciseByID(id string) (*domain.ExerciseLog, error)
	DeleteExercise(id string) error

	CreateWeight(log *domain.WeightLog) error
	ListWeight(userID string, from, to time.Time) ([]*domain.WeightLog, error)
	FindWeightByID(id string) (*domain.WeightLog, error)
	DeleteWeight(id string) error

	CreateWater(log *domain.WaterLog) error
	ListWater(userID string, from, to time.Time) ([]*domain.WaterLog, error)
	FindWaterByID(id string) (*domain.WaterLog, error)
	DeleteWater(id string) error

	CreateSleep(log *domain.SleepLog) error
	ListSleep(userID string, from, to time.Time) ([]*domain.SleepLog, error)
	FindSleepByID(id string) (*domain.SleepLog, error)
	DeleteSleep(id string) error

	CreateMood(log *domain.MoodLog) error
	ListMood(userID string, from, to time.Time) ([]*domain.MoodLog, error)
	FindMoodByID(id string) (*domain.MoodLog, error)
	DeleteMood(id string) error
}
