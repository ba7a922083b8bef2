package domain

import (
	"errors"
	"time"
)

// ActivityLevel is rough weekly exercise volume.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

// HealthProfile is a user's standing health record, one per user.
type HealthProfile struct {
	ID                string        `json:"id" gorm:"primaryKey"`
	UserID            string        `json:"user_id" gorm:"uniqueIndex;not null"`
	Age               int           `json:"age"`
	Gender            string        `json:"gender,omitempty"`
	HeightCM          float64       `json:"height_cm"`
	WeightKg          float64       `json:"weight_kg"`
	TargetWeightKg    float64       `json:"target_weight_kg,omitempty"`
	ActivityLevel     ActivityLevel `json:"activity_level"`
	DietaryPreference string        `json:"dietary_preference,omitempty"`
	Allergies         []string      `json:"allergies,omitempty" gorm:"serializer:json"`
	Conditions        []string      `json:"conditions,omitempty" gorm:"serializer:json"`
	HealthGoal        string        `json:"health_goal,omitempty"`
	DailyCalorieGoal  int           `json:"daily_calorie_goal,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

var ErrProfileNotFound = errors.New("profile not found")
