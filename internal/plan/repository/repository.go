package repository

import (
	"time"

	"healthtrack-backend/internal/plan/domain"
)

// PlanRepository is the store for health plans. FindByID returns
// (nil, nil) when no record exists.
type PlanRepository interface {
	Create(plan *domain.Plan) error
	FindByID(id string) (*domain.Plan, error)
	FindByUserID(userID string, status *domain.PlanStatus) ([]*domain.Plan, error)
	Update(plan *domain.Plan) error
	Delete(id string) error

	// FindPendingReminders returns plans with reminder_at <= now,
	// reminder not yet sent, still active.
	FindPendingReminders(now time.Time) ([]*domain.Plan, error)
	MarkReminderSent(id string) error
}
