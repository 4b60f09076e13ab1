package repositories

import (
	"karigari/internal/models"
)

// SaleRepository defines the interface for sale-record data access. Sales are
// append-only: written once when an order is fulfilled, then read by
// analytics consumers.
type SaleRepository interface {
	Create(sale *models.Sale) error
	GetByOrderID(orderID string) ([]models.Sale, error)
	GetByArtisanID(artisanID string) ([]models.Sale, error)
}
