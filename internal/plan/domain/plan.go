package domain

import (
	"errors"
	"time"
)

// PlanStatus is the lifecycle state of a health plan.
type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusAbandoned PlanStatus = "abandoned"
)

// Plan is a goal-oriented health plan (lose weight, train for a race,
// sleep more) with an optional reminder push.
type Plan struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	UserID       string     `json:"user_id" gorm:"index;not null"`
	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description,omitempty"`
	Goal         string     `json:"goal,omitempty"`
	Status       PlanStatus `json:"status" gorm:"default:active"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	ReminderAt   *time.Time `json:"reminder_at,omitempty"`
	ReminderSent bool       `json:"reminder_sent" gorm:"default:false"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

var ErrPlanNotFound = errors.New("plan not found")
