package domain

import (
	"errors"
	"time"
)

// MealType slots a nutrition entry into the day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// NutritionLog is one logged food item.
type NutritionLog struct {
	ID       string    `json:"id" gorm:"primaryKey"`
	UserID   string    `json:"user_id" gorm:"index;not null"`
	MealType MealType  `json:"meal_type"`
	FoodName string    `json:"food_name" gorm:"not null"`
	Calories float64   `json:"calories"`
	ProteinG float64   `json:"protein_g"`
	CarbsG   float64   `json:"carbs_g"`
	FatG     float64   `json:"fat_g"`
	LoggedAt time.Time `json:"logged_at" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
}

// ExerciseLog is one logged workout or activity.
type ExerciseLog struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"user_id" gorm:"index;not null"`
	Activity       string    `json:"activity" gorm:"not null"`
	DurationMin    int       `json:"duration_min"`
	CaloriesBurned float64   `json:"calories_burned"`
	Intensity      string    `json:"intensity,omitempty"`
	LoggedAt       time.Time `json:"logged_at" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
}

// WeightLog is one body-weight measurement.
type WeightLog struct {
	ID       string    `json:"id" gorm:"primaryKey"`
	UserID   string    `json:"user_id" gorm:"index;not null"`
	WeightKg float64   `json:"weight_kg" gorm:"not null"`
	LoggedAt time.Time `json:"logged_at" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
}

// WaterLog is one water intake entry.
type WaterLog struct {
	ID       string    `json:"id" gorm:"primaryKey"`
	UserID   string    `json:"user_id" gorm:"index;not null"`
	AmountML int       `json:"amount_ml" gorm:"not null"`
	LoggedAt time.Time `json:"logged_at" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
}

// SleepLog is one night of sleep.
type SleepLog struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"index;not null"`
	BedTime       time.Time `json:"bed_time"`
	WakeTime      time.Time `json:"wake_time"`
	QualityRating int       `json:"quality_rating"` // 1-5
	LoggedAt      time.Time `json:"logged_at" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
}

// Hours is the slept duration in hours.
func (s *SleepLog) Hours() float64 {
	return s.WakeTime.Sub(s.BedTime).Hours()
}

// MoodLog is one mood check-in.
type MoodLog struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	Mood        string    `json:"mood" gorm:"not null"`
	EnergyLevel int       `json:"energy_level"` // 1-5
	Note        string    `json:"note,omitempty"`
	LoggedAt    time.Time `json:"logged_at" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
}

// DailySummary aggregates one day of logs for the dashboard.
type DailySummary struct {
	Date           string   `json:"date"`
	CaloriesIn     float64  `json:"calories_in"`
	CaloriesBurned float64  `json:"calories_burned"`
	ProteinG       float64  `json:"protein_g"`
	CarbsG         float64  `json:"carbs_g"`
	FatG           float64  `json:"fat_g"`
	WaterML        int      `json:"water_ml"`
	ExerciseMin    int      `json:"exercise_min"`
	SleepHours     float64  `json:"sleep_hours"`
	LatestWeightKg *float64 `json:"latest_weight_kg,omitempty"`
	Mood           string   `json:"mood,omitempty"`
}

var ErrLogNotFound = errors.New("log not found")
