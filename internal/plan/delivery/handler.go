package delivery

import (
	"errors"
	"net/http"

	authdelivery "healthtrack-backend/internal/auth/delivery"
	"healthtrack-backend/internal/plan/domain"
	"healthtrack-backend/internal/plan/repository"
	"healthtrack-backend/internal/plan/usecase"

	"github.com/gin-gonic/gin"
)

// PlanHandler serves the /plans endpoints.
type PlanHandler struct {
	planUsecase usecase.PlanUsecase
}

func NewPlanHandler(planUsecase usecase.PlanUsecase) *PlanHandler {
	return &PlanHandler{planUsecase: planUsecase}
}

// PlanOwner resolves a plan's owner by path id for the ownership guard.
func PlanOwner(repo repository.PlanRepository) authdelivery.OwnerLookup {
	return func(c *gin.Context) (string, error) {
		plan, err := repo.FindByID(c.Param("id"))
		if err != nil {
			return "", err
		}
		if plan == nil {
			return "", authdelivery.ErrOwnerNotFound
		}
		return plan.UserID, nil
	}
}

// CreatePlan creates a plan owned by the authenticated user.
// POST /api/plans
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	var plan domain.Plan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if plan.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	created, err := h.planUsecase.CreatePlan(userID, &plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create plan"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetPlans lists the authenticated user's plans.
// GET /api/plans?status=active
func (h *PlanHandler) GetPlans(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	var status *domain.PlanStatus
	if v := c.Query("status"); v != "" {
		s := domain.PlanStatus(v)
		status = &s
	}

	plans, err := h.planUsecase.GetPlans(userID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// GetPlanByID returns one plan; the ownership guard runs first.
// GET /api/plans/:id
func (h *PlanHandler) GetPlanByID(c *gin.Context) {
	plan, err := h.planUsecase.GetPlanByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// UpdatePlan updates one plan; the ownership guard runs first.
// PUT /api/plans/:id
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var updates domain.Plan
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planUsecase.UpdatePlan(c.Param("id"), &updates)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlan deletes one plan; the ownership guard runs first.
// DELETE /api/plans/:id
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.planUsecase.DeletePlan(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
