package delivery

import (
	"net/http"

	authdelivery "healthtrack-backend/internal/auth/delivery"
	"healthtrack-backend/internal/insight/dto"
	"healthtrack-backend/internal/insight/usecase"
	"healthtrack-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

// InsightHandler serves the /insights endpoints. insightUsecase may be
// nil when no AI provider is configured; every route then returns 503.
type InsightHandler struct {
	insightUsecase usecase.InsightUsecase
}

func NewInsightHandler(insightUsecase usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{insightUsecase: insightUsecase}
}

func (h *InsightHandler) available(c *gin.Context) bool {
	if h.insightUsecase == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI provider not configured"})
		return false
	}
	return true
}

// Triage ranks symptom urgency.
// POST /api/insights/triage
func (h *InsightHandler) Triage(c *gin.Context) {
	if !h.available(c) {
		return
	}

	var req ai.TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.insightUsecase.Triage(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "triage failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// SuggestMeals suggests a day of meals for the authenticated user.
// POST /api/insights/meals
func (h *InsightHandler) SuggestMeals(c *gin.Context) {
	if !h.available(c) {
		return
	}

	userID := c.GetString(authdelivery.ContextUserIDKey)

	meals, err := h.insightUsecase.SuggestMeals(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "meal suggestion failed"})
		return
	}
	c.JSON(http.StatusOK, dto.MealSuggestionsResponse{Meals: meals})
}

// GroceryList builds a shopping list from a set of meals.
// POST /api/insights/grocery
func (h *InsightHandler) GroceryList(c *gin.Context) {
	if !h.available(c) {
		return
	}

	var req dto.GroceryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.insightUsecase.GroceryList(c.Request.Context(), req.Meals)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "grocery list failed"})
		return
	}
	c.JSON(http.StatusOK, dto.GroceryResponse{Items: items})
}

// Chat continues a wellness conversation.
// POST /api/insights/chat
func (h *InsightHandler) Chat(c *gin.Context) {
	if !h.available(c) {
		return
	}

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.insightUsecase.Chat(c.Request.Context(), req.History, req.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "chat failed"})
		return
	}
	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}
