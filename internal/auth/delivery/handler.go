package delivery

import (
	"errors"
	"net/http"

	authdomain "healthtrack-backend/internal/auth/domain"
	authdto "healthtrack-backend/internal/auth/dto"
	"healthtrack-backend/internal/auth/repository"
	"healthtrack-backend/internal/auth/token"
	"healthtrack-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	devices     repository.DeviceTokenRepository
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, devices repository.DeviceTokenRepository) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		devices:     devices,
	}
}

// Register creates an account and returns a token pair.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login exchanges credentials for a token pair.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh mints a new access token from a bearer refresh token.
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	raw, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
		return
	}

	resp, err := h.authUsecase.Refresh(raw)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
		case errors.Is(err, token.ErrWrongKind):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong token type"})
		case errors.Is(err, token.ErrMalformed):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		case errors.Is(err, authdomain.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "refresh failed"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout is stateless: tokens are not revoked server-side, the client
// discards them. Kept as an endpoint so clients have one place to call.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

// RegisterDevice stores a push-notification device token for the
// authenticated user. The owner is always the token's user, never
// anything the client claims.
// POST /api/devices
func (h *AuthHandler) RegisterDevice(c *gin.Context) {
	userID := c.GetString(ContextUserIDKey)

	var req authdto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.devices.SaveToken(userID, req.Token, req.DeviceInfo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register device"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "device registered"})
}

// UnregisterDevice removes one of the authenticated user's device tokens.
// DELETE /api/devices/:token
func (h *AuthHandler) UnregisterDevice(c *gin.Context) {
	userID := c.GetString(ContextUserIDKey)
	deviceToken := c.Param("token")

	if err := h.devices.DeleteToken(userID, deviceToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unregister device"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "device unregistered"})
}
