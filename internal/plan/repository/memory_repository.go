package repository

import (
	"sort"
	"sync"
	"time"

	"healthtrack-backend/internal/plan/domain"

	"github.com/google/uuid"
)

// memoryPlanRepository is the map-backed fallback, also used by tests.
type memoryPlanRepository struct {
	mu    sync.RWMutex
	plans map[string]*domain.Plan
}

func NewMemoryPlanRepository() PlanRepository {
	return &memoryPlanRepository{
		plans: make(map[string]*domain.Plan),
	}
}

func (r *memoryPlanRepository) Create(plan *domain.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	plan.ID = uuid.New().String()
	if plan.Status == "" {
		plan.Status = domain.PlanStatusActive
	}
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()

	clone := *plan
	r.plans[plan.ID] = &clone
	return nil
}

func (r *memoryPlanRepository) FindByID(id string) (*domain.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	clone := *plan
	return &clone, nil
}

func (r *memoryPlanRepository) FindByUserID(userID string, status *domain.PlanStatus) ([]*domain.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var plans []*domain.Plan
	for _, plan := range r.plans {
		if plan.UserID != userID {
			continue
		}
		if status != nil && plan.Status != *status {
			continue
		}
		clone := *plan
		plans = append(plans, &clone)
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})
	return plans, nil
}

func (r *memoryPlanRepository) Update(plan *domain.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plans[plan.ID]; !ok {
		return domain.ErrPlanNotFound
	}
	plan.UpdatedAt = time.Now()
	clone := *plan
	r.plans[plan.ID] = &clone
	return nil
}

func (r *memoryPlanRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.plans, id)
	return nil
}

func (r *memoryPlanRepository) FindPendingReminders(now time.Time) ([]*domain.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var due []*domain.Plan
	for _, plan := range r.plans {
		if plan.ReminderAt == nil || plan.ReminderSent {
			continue
		}
		if plan.Status != domain.PlanStatusActive {
			continue
		}
		if plan.ReminderAt.After(now) {
			continue
		}
		clone := *plan
		due = append(due, &clone)
	}
	return due, nil
}

func (r *memoryPlanRepository) MarkReminderSent(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if plan, ok := r.plans[id]; ok {
		plan.ReminderSent = true
	}
	return nil
}
