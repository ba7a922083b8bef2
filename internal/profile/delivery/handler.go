package delivery

import (
	"errors"
	"net/http"

	authdelivery "healthtrack-backend/internal/auth/delivery"
	"healthtrack-backend/internal/profile/domain"
	"healthtrack-backend/internal/profile/usecase"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the /profile endpoints.
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// GetProfile returns the authenticated user's own profile.
// GET /api/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	h.respondProfile(c, userID)
}

// GetProfileByUserID returns another user's profile. Route is gated by
// RequireRole(professional, admin).
// GET /api/profile/:userId
func (h *ProfileHandler) GetProfileByUserID(c *gin.Context) {
	h.respondProfile(c, c.Param("userId"))
}

func (h *ProfileHandler) respondProfile(c *gin.Context, userID string) {
	profile, err := h.profileUsecase.GetProfile(userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile creates or replaces the authenticated user's profile.
// PUT /api/profile
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	var profile domain.HealthProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.profileUsecase.SaveProfile(userID, &profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, saved)
}
