package repository

import (
	"errors"
	"time"

	"healthtrack-backend/internal/tracking/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTrackingRepository implements TrackingRepository on GORM
type gormTrackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &gormTrackingRepository{db: db}
}

func (r *gormTrackingRepository) rangeQuery(userID string, from, to time.Time) *gorm.DB {
	q := r.db.Where("user_id = ?", userID)
	if !from.IsZero() {
		q = q.Where("logged_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("logged_at < ?", to)
	}
	return q.Order("logged_at DESC")
}

func notFoundAsNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// Nutrition

func (r *gormTrackingRepository) CreateNutrition(log *domain.NutritionLog) error {
	log.ID = uuid.New().String()
	log.CreatedAt = time.Now()
	if log.LoggedAt.IsZero() {
		log.LoggedAt = time.Now()
	}
	return r.db.Create(log).Error
}

func (r *gormTrackingRepository) ListNutrition(userID string, from, to time.Time) ([]*domain.NutritionLog, error) {
	var logs []*domain.NutritionLog
	err := r.rangeQuery(userID, from, to).Find(&logs).Error
	return logs, err
}

func (r *gormTrackingRepository) FindNutritionByID(id string) (*domain.NutritionLog, error) {
	var log domain.NutritionLog
	if err := r.db.Where("id = ?", id).First(&log).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &log, nil
}

func (r *gormTrackingRepository) DeleteNutrition(id string) error {
	return r.db.Delete(&domain.NutritionLog{}, "id = ?", id).Error
}

// Exercise

func (r *gormTrackingRepository) CreateExercise(log *domain.ExerciseLog) error {
	log.ID = uuid.New().String()
	log.CreatedAt = time.Now()
	if log.LoggedAt.IsZero() {
		log.LoggedAt = time.Now()
	}
	return r.db.Create(log).Error
}

func (r *gormTrackingRepository) ListExercise(userID string, from, to time.Time) ([]*domain.ExerciseLog, error) {
	var logs []*domain.ExerciseLog
	err := r.rangeQuery(userID, from, to).Find(&logs).Error
	return logs, err
}

func (r *gormTrackingRepository) FindExerciseByID(id string) (*domain.ExerciseLog, error) {
	var log domain.ExerciseLog
	if err := r.db.Where("id = ?", id).First(&log).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &log, nil
}

func (r *gormTrackingRepository) DeleteExercise(id string) error {
	return r.db.Delete(&domain.ExerciseLog{}, "id = ?", id).Error
}

// Weight

func (r *gormTrackingRepository) CreateWeight(log *domain.WeightLog) error {
	log.ID = uuid.New().String()
	log.CreatedAt = time.Now()
	if log.LoggedAt.IsZero() {
		log.LoggedAt = time.Now()
	}
	return r.db.Create(log).Error
}

func (r *gormTrackingRepository) ListWeight(userID string, from, to time.Time) ([]*domain.WeightLog, error) {
	var logs []*domain.WeightLog
	err := r.rangeQuery(userID, from, to).Find(&logs).Error
	return logs, err
}

func (r *gormTrackingRepository) FindWeightByID(id string) (*domain.WeightLog, error) {
	var log domain.WeightLog
	if err := r.db.Where("id = ?", id).First(&log).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &log, nil
}

func (r *gormTrackingRepository) DeleteWeight(id string) error {
	return r.db.Delete(&domain.WeightLog{}, "id = ?", id).Error
}

// Water

func (r *gormTrackingRepository) CreateWater(log *domain.WaterLog) error {
	log.ID = uuid.New().String()
	log.CreatedAt = time.Now()
	if log.LoggedAt.IsZero() {
		log.LoggedAt = time.Now()
	}
	return r.db.Create(log).Error
}

func (r *gormTrackingRepository) ListWater(userID string, from, to time.Time) ([]*domain.WaterLog, error) {
	var logs []*domain.WaterLog
	err := r.rangeQuery(userID, from, to).Find(&logs).Error
	return logs, err
}

func (r *gormTrackingRepository) FindWaterByID(id string) (*domain.WaterLog, error) {
	var log domain.WaterLog
	if err := r.db.Where("id = ?", id).First(&log).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &log, nil
}

func (r *gormTrackingRepository) DeleteWater(id string) error {
	return r.db.Delete(&domain.WaterLog{}, "id = ?", id).Error
}

// Sleep

func (r *gormTrackingRepository) CreateSleep(log *domain.SleepLog) error {
	log.ID = uuid.New().String()
	log.CreatedAt = time.Now()
	if log.LoggedAt.IsZero() {
		log.LoggedAt = time.Now()
	}
	return r.db.Create(log).Error
}

func (r *gormTrackingRepository) ListSleep(userID string, from, to time.Time) ([]*domain.SleepLog, error) {
	var logs []*domain.SleepLog
	err := r.rangeQuery(userID, from, to).Find(&logs).Error
	return logs, err
}

func (r *gormTrackingRepository) FindSleepByID(id string) (*domain.SleepLog, error) {
	var log domain.SleepLog
	if err := r.db.Where("id = ?", id).First(&log).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &log, nil
}

func (r *gormTrackingRepository) DeleteSleep(id string) error {
	return r.db.Delete(&domain.SleepLog{}, "id = ?", id).Error
}

// Mood

func (r *gormTrackingRepository) CreateMood(log *domain.MoodLog) error {
	log.ID = uuid.New().String()
	log.CreatedAt = time.Now()
	if log.LoggedAt.IsZero() {
		log.LoggedAt = time.Now()
	}
	return r.db.Create(log).Error
}

func (r *gormTrackingRepository) ListMood(userID string, from, to time.Time) ([]*domain.MoodLog, error) {
	var logs []*domain.MoodLog
	err := r.rangeQuery(userID, from, to).Find(&logs).Error
	return logs, err
}

func (r *gormTrackingRepository) FindMoodByID(id string) (*domain.MoodLog, error) {
	var log domain.MoodLog
	if err := r.db.Where("id = ?", id).First(&log).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &log, nil
}

func (r *gormTrackingRepository) DeleteMood(id string) error {
	return r.db.Delete(&domain.MoodLog{}, "id = ?", id).Error
}
