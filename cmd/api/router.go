package api

import (
	"net/http"

	authdelivery "healthtrack-backend/internal/auth/delivery"
	authdomain "healthtrack-backend/internal/auth/domain"
	plandelivery "healthtrack-backend/internal/plan/delivery"
	trackingdelivery "healthtrack-backend/internal/tracking/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	requireAuth := authdelivery.AuthMiddleware(h.tokens, h.userRepo)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.authHandler.Register)
			auth.POST("/login", h.authHandler.Login)
			auth.POST("/refresh", h.authHandler.Refresh)
			auth.GET("/me", requireAuth, h.authHandler.Me)
			auth.POST("/logout", requireAuth, h.authHandler.Logout)
		}

		// Device registration for push notifications (protected)
		devices := api.Group("/devices")
		devices.Use(requireAuth)
		{
			devices.POST("", h.authHandler.RegisterDevice)
			devices.DELETE("/:token", h.authHandler.UnregisterDevice)
		}

		// Health profile (protected)
		profile := api.Group("/profile")
		profile.Use(requireAuth)
		{
			profile.GET("", h.profileHandler.GetProfile)
			profile.PUT("", h.profileHandler.SaveProfile)
			profile.GET("/:userId",
				authdelivery.RequireRole(authdomain.RoleProfessional, authdomain.RoleAdmin),
				h.profileHandler.GetProfileByUserID)
		}

		// Daily metric tracking (protected; deletes behind ownership guard)
		tracking := api.Group("/tracking")
		tracking.Use(requireAuth)
		{
			tracking.POST("/nutrition", h.trackingHandler.LogNutrition)
			tracking.GET("/nutrition", h.trackingHandler.ListNutrition)
			tracking.DELETE("/nutrition/:id",
				authdelivery.RequireOwner(trackingdelivery.NutritionOwner(h.trackingRepo)),
				h.trackingHandler.DeleteNutrition)

			tracking.POST("/exercise", h.trackingHandler.LogExercise)
			tracking.GET("/exercise", h.trackingHandler.ListExercise)
			tracking.DELETE("/exercise/:id",
				authdelivery.RequireOwner(trackingdelivery.ExerciseOwner(h.trackingRepo)),
				h.trackingHandler.DeleteExercise)

			tracking.POST("/weight", h.trackingHandler.LogWeight)
			tracking.GET("/weight", h.trackingHandler.ListWeight)
			tracking.DELETE("/weight/:id",
				authdelivery.RequireOwner(trackingdelivery.WeightOwner(h.trackingRepo)),
				h.trackingHandler.DeleteWeight)

			tracking.POST("/water", h.trackingHandler.LogWater)
			tracking.GET("/water", h.trackingHandler.ListWater)
			tracking.DELETE("/water/:id",
				authdelivery.RequireOwner(trackingdelivery.WaterOwner(h.trackingRepo)),
				h.trackingHandler.DeleteWater)

			tracking.POST("/sleep", h.trackingHandler.LogSleep)
			tracking.GET("/sleep", h.trackingHandler.ListSleep)
			tracking.DELETE("/sleep/:id",
				authdelivery.RequireOwner(trackingdelivery.SleepOwner(h.trackingRepo)),
				h.trackingHandler.DeleteSleep)

			tracking.POST("/mood", h.trackingHandler.LogMood)
			tracking.GET("/mood", h.trackingHandler.ListMood)
			tracking.DELETE("/mood/:id",
				authdelivery.RequireOwner(trackingdelivery.MoodOwner(h.trackingRepo)),
				h.trackingHandler.DeleteMood)

			tracking.GET("/summary", h.trackingHandler.Summary)
			tracking.GET("/search", h.trackingHandler.Search)
		}

		// Health plans (protected; per-plan routes behind ownership guard)
		requirePlanOwner := authdelivery.RequireOwner(plandelivery.PlanOwner(h.planRepo))
		plans := api.Group("/plans")
		plans.Use(requireAuth)
		{
			plans.POST("", h.planHandler.CreatePlan)
			plans.GET("", h.planHandler.GetPlans)
			plans.GET("/:id", requirePlanOwner, h.planHandler.GetPlanByID)
			plans.PUT("/:id", requirePlanOwner, h.planHandler.UpdatePlan)
			plans.DELETE("/:id", requirePlanOwner, h.planHandler.DeletePlan)
		}

		// AI insights (protected)
		insights := api.Group("/insights")
		insights.Use(requireAuth)
		{
			insights.POST("/triage", h.insightHandler.Triage)
			insights.POST("/meals", h.insightHandler.SuggestMeals)
			insights.POST("/grocery", h.insightHandler.GroceryList)
			insights.POST("/chat", h.insightHandler.Chat)
		}
	}
}
