package delivery

import (
	"net/http"
	"time"

	authdelivery "healthtrack-backend/internal/auth/delivery"
	"healthtrack-backend/internal/tracking/domain"
	"healthtrack-backend/internal/tracking/usecase"

	"github.com/gin-gonic/gin"
)

// TrackingHandler serves the /tracking endpoints.
type TrackingHandler struct {
	trackingUsecase usecase.TrackingUsecase
}

func NewTrackingHandler(trackingUsecase usecase.TrackingUsecase) *TrackingHandler {
	return &TrackingHandler{trackingUsecase: trackingUsecase}
}

// parseRange reads optional from/to query params, accepting RFC3339 or
// plain dates.
func parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	parse := func(v string) (time.Time, bool) {
		if v == "" {
			return time.Time{}, true
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, true
		}
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return t, true
		}
		return time.Time{}, false
	}

	from, ok := parse(c.Query("from"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from"})
		return time.Time{}, time.Time{}, false
	}
	to, ok := parse(c.Query("to"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// POST /api/tracking/nutrition
func (h *TrackingHandler) LogNutrition(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	var log domain.NutritionLog
	if err := c.ShouldBindJSON(&log); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.trackingUsecase.LogNutrition(userID, &log)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save log"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /api/tracking/nutrition?from=&to=
func (h *TrackingHandler) ListNutrition(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	logs, err := h.trackingUsecase.ListNutrition(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DELETE /api/tracking/nutrition/:id — ownership guard runs first
func (h *TrackingHandler) DeleteNutrition(c *gin.Context) {
	if err := h.trackingUsecase.DeleteNutrition(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// POST /api/tracking/exercise
func (h *TrackingHandler) LogExercise(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	var log domain.ExerciseLog
	if err := c.ShouldBindJSON(&log); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.trackingUsecase.LogExercise(userID, &log)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save log"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /api/tracking/exercise?from=&to=
func (h *TrackingHandler) ListExercise(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	logs, err := h.trackingUsecase.ListExercise(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DELETE /api/tracking/exercise/:id
func (h *TrackingHandler) DeleteExercise(c *gin.Context) {
	if err := h.trackingUsecase.DeleteExercise(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// POST /api/tracking/weight
func (h *TrackingHandler) LogWeight(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	var log domain.WeightLog
	if err := c.ShouldBindJSON(&log); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.trackingUsecase.LogWeight(userID, &log)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save log"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /api/tracking/weight?from=&to=
func (h *TrackingHandler) ListWeight(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	logs, err := h.trackingUsecase.ListWeight(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DELETE /api/tracking/weight/:id
func (h *TrackingHandler) DeleteWeight(c *gin.Context) {
	if err := h.trackingUsecase.DeleteWeight(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// POST /api/tracking/water
func (h *TrackingHandler) LogWater(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	var log domain.WaterLog
	if err := c.ShouldBindJSON(&log); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.trackingUsecase.LogWater(userID, &log)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save log"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /api/tracking/water?from=&to=
func (h *TrackingHandler) ListWater(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	logs, err := h.trackingUsecase.ListWater(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DELETE /api/tracking/water/:id
func (h *TrackingHandler) DeleteWater(c *gin.Context) {
	if err := h.trackingUsecase.DeleteWater(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// POST /api/tracking/sleep
func (h *TrackingHandler) LogSleep(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	var log domain.SleepLog
	if err := c.ShouldBindJSON(&log); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.trackingUsecase.LogSleep(userID, &log)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save log"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /api/tracking/sleep?from=&to=
func (h *TrackingHandler) ListSleep(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	logs, err := h.trackingUsecase.ListSleep(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DELETE /api/tracking/sleep/:id
func (h *TrackingHandler) DeleteSleep(c *gin.Context) {
	if err := h.trackingUsecase.DeleteSleep(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// POST /api/tracking/mood
func (h *TrackingHandler) LogMood(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	var log domain.MoodLog
	if err := c.ShouldBindJSON(&log); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.trackingUsecase.LogMood(userID, &log)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save log"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /api/tracking/mood?from=&to=
func (h *TrackingHandler) ListMood(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	logs, err := h.trackingUsecase.ListMood(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DELETE /api/tracking/mood/:id
func (h *TrackingHandler) DeleteMood(c *gin.Context) {
	if err := h.trackingUsecase.DeleteMood(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GET /api/tracking/summary?date=2025-01-31
func (h *TrackingHandler) Summary(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	day := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		day = parsed
	}

	summary, err := h.trackingUsecase.DailySummary(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/tracking/search?q=oatmeal
func (h *TrackingHandler) Search(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	results, err := h.trackingUsecase.Search(userID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
