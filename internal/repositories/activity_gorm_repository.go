package repositories

import (
	"fmt"

	"karigari/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMActivityRepository is a GORM implementation of ActivityRepository.
type GORMActivityRepository struct {
	db *gorm.DB
}

// NewGORMActivityRepository creates a new instance of GORMActivityRepository.
func NewGORMActivityRepository(db *gorm.DB) *GORMActivityRepository {
	return &GORMActivityRepository{
		db: db,
	}
}

// Create persists a new activity entry.
func (r *GORMActivityRepository) Create(activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if err := r.db.Create(activity).Error; err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// GetRecent retrieves the most recent activity entries, newest-first.
func (r *GORMActivityRepository) GetRecent(limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Order("created_at DESC").Limit(limit).Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent activities: %w", err)
	}
	return activities, nil
}
