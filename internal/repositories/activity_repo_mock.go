package repositories

import (
	"sort"
	"sync"
	"time"

	"karigari/internal/models"

	"github.com/google/uuid"
)

// MockActivityRepository is an in-memory implementation of ActivityRepository.
type MockActivityRepository struct {
	activities []models.Activity
	mu         sync.RWMutex
}

// NewMockActivityRepository creates a new instance of MockActivityRepository.
func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{}
}

// Create adds a new activity entry.
func (r *MockActivityRepository) Create(activity *models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	r.activities = append(r.activities, *activity)
	return nil
}

// GetRecent returns the most recent activity entries, newest-first.
func (r *MockActivityRepository) GetRecent(limit int) ([]models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activityList := make([]models.Activity, len(r.activities))
	copy(activityList, r.activities)
	sort.Slice(activityList, func(i, j int) bool {
		return activityList[i].CreatedAt.After(activityList[j].CreatedAt)
	})
	if limit > 0 && len(activityList) > limit {
		activityList = activityList[:limit]
	}
	return activityList, nil
}
