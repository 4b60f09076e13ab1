package services

import (
	"encoding/json"
	"log"

	"karigari/internal/models"
	"karigari/internal/repositories"
)

// ActivityLogger is the capability order intake and the status machine use to
// emit audit events. Implementations must be best-effort: a logging failure
// never propagates to the caller.
type ActivityLogger interface {
	LogActivity(activityType, userID string, details interface{}, message string)
}

// EventPublisher sends serialized activity events to the message broker.
// *rabbitmq.Client satisfies it.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// ActivityService persists activity entries and mirrors them onto the event
// queue. Both sinks are optional and best-effort.
type ActivityService struct {
	repo      repositories.ActivityRepository
	publisher EventPublisher
}

// NewActivityService creates a new ActivityService. Either dependency may be
// nil; the corresponding sink is skipped.
func NewActivityService(repo repositories.ActivityRepository, publisher EventPublisher) *ActivityService {
	return &ActivityService{
		repo:      repo,
		publisher: publisher,
	}
}

// LogActivity records an audit event. Failures are logged and swallowed; the
// activity feed is a non-critical side channel.
func (s *ActivityService) LogActivity(activityType, userID string, details interface{}, message string) {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		log.Printf("Failed to marshal activity details for %s: %v", activityType, err)
		detailsJSON = []byte("{}")
	}

	if s.repo != nil {
		activity := &models.Activity{
			Type:    activityType,
			UserID:  userID,
			Message: message,
			Details: string(detailsJSON),
		}
		if err := s.repo.Create(activity); err != nil {
			log.Printf("Warning: failed to persist %s activity: %v", activityType, err)
		}
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"type":    activityType,
			"user_id": userID,
			"message": message,
			"details": json.RawMessage(detailsJSON),
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal %s activity event: %v", activityType, err)
			return
		}
		if err := s.publisher.Publish(activityType, body); err != nil {
			log.Printf("Warning: failed to publish %s activity event: %v", activityType, err)
		}
	}
}

// GetRecentActivities returns the newest entries of the activity feed.
func (s *ActivityService) GetRecentActivities(limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.GetRecent(limit)
}
