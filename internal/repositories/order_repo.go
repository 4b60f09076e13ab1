package repositories

import (
	"karigari/internal/models"
)

// OrderRepository defines the interface for order data access. All listing
// methods return orders newest-first with line items populated.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	Create(order *models.Order) error
	// TransitionStatus updates the order's status only if the stored status
	// still equals from (compare-and-swap). It returns false when the guard
	// did not match, either because of a concurrent update or an unknown id;
	// callers distinguish the two by re-reading.
	TransitionStatus(id string, from, to models.OrderStatus) (bool, error)
	// Orders are never deleted in normal operation, so no Delete is defined.
}
