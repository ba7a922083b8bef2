package repository

import (
	"errors"
	"time"

	"healthtrack-backend/internal/plan/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormPlanRepository implements PlanRepository on GORM
type gormPlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &gormPlanRepository{db: db}
}

func (r *gormPlanRepository) Create(plan *domain.Plan) error {
	plan.ID = uuid.New().String()
	if plan.Status == "" {
		plan.Status = domain.PlanStatusActive
	}
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()
	return r.db.Create(plan).Error
}

func (r *gormPlanRepository) FindByID(id string) (*domain.Plan, error) {
	var plan domain.Plan
	err := r.db.Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *gormPlanRepository) FindByUserID(userID string, status *domain.PlanStatus) ([]*domain.Plan, error) {
	var plans []*domain.Plan
	query := r.db.Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at DESC").Find(&plans).Error
	return plans, err
}

func (r *gormPlanRepository) Update(plan *domain.Plan) error {
	plan.UpdatedAt = time.Now()
	return r.db.Save(plan).Error
}

func (r *gormPlanRepository) Delete(id string) error {
	return r.db.Delete(&domain.Plan{}, "id = ?", id).Error
}

func (r *gormPlanRepository) FindPendingReminders(now time.Time) ([]*domain.Plan, error) {
	var plans []*domain.Plan
	err := r.db.Where("reminder_at <= ? AND reminder_sent = ? AND status = ?",
		now, false, domain.PlanStatusActive).Find(&plans).Error
	return plans, err
}

func (r *gormPlanRepository) MarkReminderSent(id string) error {
	return r.db.Model(&domain.Plan{}).Where("id = ?", id).Update("reminder_sent", true).Error
}
