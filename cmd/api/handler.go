package api

import (
	authdelivery "healthtrack-backend/internal/auth/delivery"
	authrepo "healthtrack-backend/internal/auth/repository"
	"healthtrack-backend/internal/auth/token"
	authusecase "healthtrack-backend/internal/auth/usecase"
	insightdelivery "healthtrack-backend/internal/insight/delivery"
	insightusecase "healthtrack-backend/internal/insight/usecase"
	plandelivery "healthtrack-backend/internal/plan/delivery"
	planrepo "healthtrack-backend/internal/plan/repository"
	planusecase "healthtrack-backend/internal/plan/usecase"
	profiledelivery "healthtrack-backend/internal/profile/delivery"
	profileusecase "healthtrack-backend/internal/profile/usecase"
	trackingdelivery "healthtrack-backend/internal/tracking/delivery"
	trackingrepo "healthtrack-backend/internal/tracking/repository"
	trackingusecase "healthtrack-backend/internal/tracking/usecase"

	"github.com/gin-gonic/gin"
)

// Handler bundles everything the router needs.
type Handler struct {
	tokens       *token.Service
	userRepo     authrepo.UserRepository
	planRepo     planrepo.PlanRepository
	trackingRepo trackingrepo.TrackingRepository

	authHandler     *authdelivery.AuthHandler
	profileHandler  *profiledelivery.ProfileHandler
	trackingHandler *trackingdelivery.TrackingHandler
	planHandler     *plandelivery.PlanHandler
	insightHandler  *insightdelivery.InsightHandler
}

// Deps are the constructed repositories, services and usecases main
// injects. insightUsecase may be nil when no AI provider is configured.
type Deps struct {
	Tokens       *token.Service
	UserRepo     authrepo.UserRepository
	DeviceRepo   authrepo.DeviceTokenRepository
	PlanRepo     planrepo.PlanRepository
	TrackingRepo trackingrepo.TrackingRepository

	AuthUsecase     authusecase.AuthUsecase
	ProfileUsecase  profileusecase.ProfileUsecase
	TrackingUsecase trackingusecase.TrackingUsecase
	PlanUsecase     planusecase.PlanUsecase
	InsightUsecase  insightusecase.InsightUsecase
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		tokens:       d.Tokens,
		userRepo:     d.UserRepo,
		planRepo:     d.PlanRepo,
		trackingRepo: d.TrackingRepo,

		authHandler:     authdelivery.NewAuthHandler(d.AuthUsecase, d.DeviceRepo),
		profileHandler:  profiledelivery.NewProfileHandler(d.ProfileUsecase),
		trackingHandler: trackingdelivery.NewTrackingHandler(d.TrackingUsecase),
		planHandler:     plandelivery.NewPlanHandler(d.PlanUsecase),
		insightHandler:  insightdelivery.NewInsightHandler(d.InsightUsecase),
	}
}

// Start builds the engine and serves on addr.
func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(corsMiddleware())

	SetupRoutes(r, h)

	return r.Run(addr)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
