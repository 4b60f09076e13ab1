package repositories

import (
	"karigari/internal/models"
)

// ActivityRepository defines the interface for activity-feed data access.
type ActivityRepository interface {
	Create(activity *models.Activity) error
	GetRecent(limit int) ([]models.Activity, error)
}
