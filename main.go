package main

import (
	"log"

	api "healthtrack-backend/cmd/api"
	authdomain "healthtrack-backend/internal/auth/domain"
	authrepo "healthtrack-backend/internal/auth/repository"
	"healthtrack-backend/internal/auth/token"
	authusecase "healthtrack-backend/internal/auth/usecase"
	insightusecase "healthtrack-backend/internal/insight/usecase"
	plandomain "healthtrack-backend/internal/plan/domain"
	planrepo "healthtrack-backend/internal/plan/repository"
	"healthtrack-backend/internal/plan/scheduler"
	planusecase "healthtrack-backend/internal/plan/usecase"
	profiledomain "healthtrack-backend/internal/profile/domain"
	profilerepo "healthtrack-backend/internal/profile/repository"
	profileusecase "healthtrack-backend/internal/profile/usecase"
	trackingdomain "healthtrack-backend/internal/tracking/domain"
	trackingrepo "healthtrack-backend/internal/tracking/repository"
	trackingusecase "healthtrack-backend/internal/tracking/usecase"
	"healthtrack-backend/pkg/ai"
	"healthtrack-backend/pkg/config"
	"healthtrack-backend/pkg/database"
	"healthtrack-backend/pkg/fcm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	tokens := token.NewService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)

	// Repositories: Postgres when DATABASE_URL is set, in-memory maps
	// otherwise.
	var (
		userRepo   authrepo.UserRepository
		deviceRepo authrepo.DeviceTokenRepository
		profRepo   profilerepo.ProfileRepository
		trackRepo  trackingrepo.TrackingRepository
		plRepo     planrepo.PlanRepository
	)

	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgresConnection(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}

		if err := db.AutoMigrate(
			&authdomain.User{},
			&authdomain.DeviceToken{},
			&profiledomain.HealthProfile{},
			&trackingdomain.NutritionLog{},
			&trackingdomain.ExerciseLog{},
			&trackingdomain.WeightLog{},
			&trackingdomain.WaterLog{},
			&trackingdomain.SleepLog{},
			&trackingdomain.MoodLog{},
			&plandomain.Plan{},
		); err != nil {
			log.Fatal("Failed to migrate database: ", err)
		}

		userRepo = authrepo.NewUserRepository(db)
		deviceRepo = authrepo.NewDeviceTokenRepository(db)
		profRepo = profilerepo.NewProfileRepository(db)
		trackRepo = trackingrepo.NewTrackingRepository(db)
		plRepo = planrepo.NewPlanRepository(db)
	} else {
		log.Println("[WARN] DATABASE_URL not set, using in-memory storage (data is lost on restart)")
		userRepo = authrepo.NewMemoryUserRepository()
		deviceRepo = authrepo.NewMemoryDeviceTokenRepository()
		profRepo = profilerepo.NewMemoryProfileRepository()
		trackRepo = trackingrepo.NewMemoryTrackingRepository()
		plRepo = planrepo.NewMemoryPlanRepository()
	}

	// Usecases
	authUc := authusecase.NewAuthUsecase(userRepo, tokens)
	profileUc := profileusecase.NewProfileUsecase(profRepo)
	trackingUc := trackingusecase.NewTrackingUsecase(trackRepo)
	planUc := planusecase.NewPlanUsecase(plRepo)

	// AI advisor (optional)
	var insightUc insightusecase.InsightUsecase
	advisor, err := ai.NewAdvisorFromConfig(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiAPIKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		log.Printf("[WARN] AI advisor not available: %v", err)
	} else {
		insightUc = insightusecase.NewInsightUsecase(advisor, profRepo)
	}

	// Plan reminder pushes (optional)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push reminders disabled): %v", err)
		}
	}
	reminders := scheduler.NewReminderScheduler(plRepo, deviceRepo, fcmClient)
	reminders.Start()
	defer reminders.Stop()

	handler := api.NewHandler(api.Deps{
		Tokens:       tokens,
		UserRepo:     userRepo,
		DeviceRepo:   deviceRepo,
		PlanRepo:     plRepo,
		TrackingRepo: trackRepo,

		AuthUsecase:     authUc,
		ProfileUsecase:  profileUc,
		TrackingUsecase: trackingUc,
		PlanUsecase:     planUc,
		InsightUsecase:  insightUc,
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
