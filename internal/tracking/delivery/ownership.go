package delivery

import (
	authdelivery "healthtrack-backend/internal/auth/delivery"
	"healthtrack-backend/internal/tracking/repository"

	"github.com/gin-gonic/gin"
)

// Owner lookups for the delete routes. Each resolves the log's owning
// user by path id so the ownership guard can compare it against the
// authenticated user.

func NutritionOwner(repo repository.TrackingRepository) authdelivery.OwnerLookup {
	return func(c *gin.Context) (string, error) {
		log, err := repo.FindNutritionByID(c.Param("id"))
		if err != nil {
			return "", err
		}
		if log == nil {
			return "", authdelivery.ErrOwnerNotFound
		}
		return log.UserID, nil
	}
}

func ExerciseOwner(repo repository.TrackingRepository) authdelivery.OwnerLookup {
	return func(c *gin.Context) (string, error) {
		log, err := repo.FindExerciseByID(c.Param("id"))
		if err != nil {
			return "", err
		}
		if log == nil {
			return "", authdelivery.ErrOwnerNotFound
		}
		return log.UserID, nil
	}
}

func WeightOwner(repo repository.TrackingRepository) authdelivery.OwnerLookup {
	return func(c *gin.Context) (string, error) {
		log, err := repo.FindWeightByID(c.Param("id"))
		if err != nil {
			return "", err
		}
		if log == nil {
			return "", authdelivery.ErrOwnerNotFound
		}
		return log.UserID, nil
	}
}

func WaterOwner(repo repository.TrackingRepository) authdelivery.OwnerLookup {
	return func(c *gin.Context) (string, error) {
		log, err := repo.FindWaterByID(c.Param("id"))
		if err != nil {
			return "", err
		}
		if log == nil {
			return "", authdelivery.ErrOwnerNotFound
		}
		return log.UserID, nil
	}
}

func SleepOwner(repo repository.TrackingRepository) authdelivery.OwnerLookup {
	return func(c *gin.Context) (string, error) {
		log, err := repo.FindSleepByID(c.Param("id"))
		if err != nil {
			return "", err
		}
		if log == nil {
			return "", authdelivery.ErrOwnerNotFound
		}
		return log.UserID, nil
	}
}

func MoodOwner(repo repository.TrackingRepository) authdelivery.OwnerLookup {
	return func(c *gin.Context) (string, error) {
		log, err := repo.FindMoodByID(c.Param("id"))
		if err != nil {
			return "", err
		}
		if log == nil {
			return "", authdelivery.ErrOwnerNotFound
		}
		return log.UserID, nil
	}
}
