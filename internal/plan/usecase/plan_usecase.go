package usecase

import (
	"healthtrack-backend/internal/plan/domain"
	"healthtrack-backend/internal/plan/repository"
)

// PlanUsecase owns the health-plan operations. Creation always forces
// the owner to the authenticated user; per-plan routes assume the
// ownership guard already ran.
type PlanUsecase interface {
	CreatePlan(userID string, plan *domain.Plan) (*domain.Plan, error)
	GetPlans(userID string, status *domain.PlanStatus) ([]*domain.Plan, error)
	GetPlanByID(id string) (*domain.Plan, error)
	UpdatePlan(id string, updates *domain.Plan) (*domain.Plan, error)
	DeletePlan(id string) error
}

type planUsecase struct {
	planRepo repository.PlanRepository
}

func NewPlanUsecase(planRepo repository.PlanRepository) PlanUsecase {
	return &planUsecase{planRepo: planRepo}
}

// CreatePlan stores a new plan owned by userID. Any owner id the client
// put in the body is overwritten, never trusted.
func (u *planUsecase) CreatePlan(userID string, plan *domain.Plan) (*domain.Plan, error) {
	plan.UserID = userID
	plan.ReminderSent = false

	if err := u.planRepo.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (u *planUsecase) GetPlans(userID string, status *domain.PlanStatus) ([]*domain.Plan, error) {
	return u.planRepo.FindByUserID(userID, status)
}

func (u *planUsecase) GetPlanByID(id string) (*domain.Plan, error) {
	plan, err := u.planRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}
	return plan, nil
}

// UpdatePlan applies the updatable fields onto the stored plan. The
// owner never changes.
func (u *planUsecase) UpdatePlan(id string, updates *domain.Plan) (*domain.Plan, error) {
	plan, err := u.planRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}

	if updates.Title != "" {
		plan.Title = updates.Title
	}
	if updates.Description != "" {
		plan.Description = updates.Description
	}
	if updates.Goal != "" {
		plan.Goal = updates.Goal
	}
	if updates.Status != "" {
		plan.Status = updates.Status
	}
	if updates.StartDate != nil {
		plan.StartDate = updates.StartDate
	}
	if updates.EndDate != nil {
		plan.EndDate = updates.EndDate
	}
	if updates.ReminderAt != nil {
		plan.ReminderAt = updates.ReminderAt
		plan.ReminderSent = false
	}

	if err := u.planRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (u *planUsecase) DeletePlan(id string) error {
	return u.planRepo.Delete(id)
}
