package repository

import (
	"sort"
	"sync"
	"time"

	"healthtrack-backend/internal/tracking/domain"

	"github.com/google/uuid"
)

// memTable is a map-backed store for one log type, used when no
// database is configured and by tests.
type memTable[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	id    func(*T) string
	owner func(*T) string
	at    func(*T) time.Time
}

func newMemTable[T any](id, owner func(*T) string, at func(*T) time.Time) *memTable[T] {
	return &memTable[T]{
		items: make(map[string]*T),
		id:    id,
		owner: owner,
		at:    at,
	}
}

func (t *memTable[T]) insert(item *T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	clone := *item
	t.items[t.id(&clone)] = &clone
}

func (t *memTable[T]) find(id string) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	item, ok := t.items[id]
	if !ok {
		return nil
	}
	clone := *item
	return &clone
}

func (t *memTable[T]) list(userID string, from, to time.Time) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []*T
	for _, item := range t.items {
		if t.owner(item) != userID {
			continue
		}
		at := t.at(item)
		if !from.IsZero() && at.Before(from) {
			continue
		}
		if !to.IsZero() && !at.Before(to) {
			continue
		}
		clone := *item
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return t.at(out[i]).After(t.at(out[j]))
	})
	return out
}

func (t *memTable[T]) remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.items, id)
}

// memoryTrackingRepository implements TrackingRepository on maps.
type memoryTrackingRepository struct {
	nutrition *memTable[domain.NutritionLog]
	exercise  *memTable[domain.ExerciseLog]
	weight    *memTable[domain.WeightLog]
	water     *memTable[domain.WaterLog]
	sleep     *memTable[domain.SleepLog]
	mood      *memTable[domain.MoodLog]
}

func NewMemoryTrackingRepository() TrackingRepository {
	return &memoryTrackingRepository{
		nutrition: newMemTable(
			func(l *domain.NutritionLog) string { return l.ID },
			func(l *domain.NutritionLog) string { return l.UserID },
			func(l *domain.NutritionLog) time.Time { return l.LoggedAt }),
		exercise: newMemTable(
			func(l *domain.ExerciseLog) string { return l.ID },
			func(l *domain.ExerciseLog) string { return l.UserID },
			func(l *domain.ExerciseLog) time.Time { return l.LoggedAt }),
		weight: newMemTable(
			func(l *domain.WeightLog) string { return l.ID },
			func(l *domain.WeightLog) string { return l.UserID },
			func(l *domain.WeightLog) time.Time { return l.LoggedAt }),
		water: newMemTable(
			func(l *domain.WaterLog) string { return l.ID },
			func(l *domain.WaterLog) string { return l.UserID },
			func(l *domain.WaterLog) time.Time { return l.LoggedAt }),
		sleep: newMemTable(
			func(l *domain.SleepLog) string { return l.ID },
			func(l *domain.SleepLog) string { return l.UserID },
			func(l *domain.SleepLog) time.Time { return l.LoggedAt }),
		mood: newMemTable(
			func(l *domain.MoodLog) string { return l.ID },
			func(l *domain.MoodLog) string { return l.UserID },
			func(l *domain.MoodLog) time.Time { return l.LoggedAt }),
	}
}

func stamp(id *string, createdAt, loggedAt *time.Time) {
	*id = uuid.New().String()
	*createdAt = time.Now()
	if loggedAt.IsZero() {
		*loggedAt = time.Now()
	}
}

func (r *memoryTrackingRepository) CreateNutrition(log *domain.NutritionLog) error {
	stamp(&log.ID, &log.CreatedAt, &log.LoggedAt)
	r.nutrition.insert(log)
	return nil
}

func (r *memoryTrackingRepository) ListNutrition(userID string, from, to time.Time) ([]*domain.NutritionLog, error) {
	return r.nutrition.list(userID, from, to), nil
}

func (r *memoryTrackingRepository) FindNutritionByID(id string) (*domain.NutritionLog, error) {
	return r.nutrition.find(id), nil
}

func (r *memoryTrackingRepository) DeleteNutrition(id string) error {
	r.nutrition.remove(id)
	return nil
}

func (r *memoryTrackingRepository) CreateExercise(log *domain.ExerciseLog) error {
	stamp(&log.ID, &log.CreatedAt, &log.LoggedAt)
	r.exercise.insert(log)
	return nil
}

func (r *memoryTrackingRepository) ListExercise(userID string, from, to time.Time) ([]*domain.ExerciseLog, error) {
	return r.exercise.list(userID, from, to), nil
}

func (r *memoryTrackingRepository) FindExerciseByID(id string) (*domain.ExerciseLog, error) {
	return r.exercise.find(id), nil
}

func (r *memoryTrackingRepository) DeleteExercise(id string) error {
	r.exercise.remove(id)
	return nil
}

func (r *memoryTrackingRepository) CreateWeight(log *domain.WeightLog) error {
	stamp(&log.ID, &log.CreatedAt, &log.LoggedAt)
	r.weight.insert(log)
	return nil
}

func (r *memoryTrackingRepository) ListWeight(userID string, from, to time.Time) ([]*domain.WeightLog, error) {
	return r.weight.list(userID, from, to), nil
}

func (r *memoryTrackingRepository) FindWeightByID(id string) (*domain.WeightLog, error) {
	return r.weight.find(id), nil
}

func (r *memoryTrackingRepository) DeleteWeight(id string) error {
	r.weight.remove(id)
	return nil
}

func (r *memoryTrackingRepository) CreateWater(log *domain.WaterLog) error {
	stamp(&log.ID, &log.CreatedAt, &log.LoggedAt)
	r.water.insert(log)
	return nil
}

func (r *memoryTrackingRepository) ListWater(userID string, from, to time.Time) ([]*domain.WaterLog, error) {
	return r.water.list(userID, from, to), nil
}

func (r *memoryTrackingRepository) FindWaterByID(id string) (*domain.WaterLog, error) {
	return r.water.find(id), nil
}

func (r *memoryTrackingRepository) DeleteWater(id string) error {
	r.water.remove(id)
	return nil
}

func (r *memoryTrackingRepository) CreateSleep(log *domain.SleepLog) error {
	stamp(&log.ID, &log.CreatedAt, &log.LoggedAt)
	r.sleep.insert(log)
	return nil
}

func (r *memoryTrackingRepository) ListSleep(userID string, from, to time.Time) ([]*domain.SleepLog, error) {
	return r.sleep.list(userID, from, to), nil
}

func (r *memoryTrackingRepository) FindSleepByID(id string) (*domain.SleepLog, error) {
	return r.sleep.find(id), nil
}

func (r *memoryTrackingRepository) DeleteSleep(id string) error {
	r.sleep.remove(id)
	return nil
}

func (r *memoryTrackingRepository) CreateMood(log *domain.MoodLog) error {
	stamp(&log.ID, &log.CreatedAt, &log.LoggedAt)
	r.mood.insert(log)
	return nil
}

func (r *memoryTrackingRepository) ListMood(userID string, from, to time.Time) ([]*domain.MoodLog, error) {
	return r.mood.list(userID, from, to), nil
}

func (r *memoryTrackingRepository) FindMoodByID(id string) (*domain.MoodLog, error) {
	return r.mood.find(id), nil
}

func (r *memoryTrackingRepository) DeleteMood(id string) error {
	r.mood.remove(id)
	return nil
}
