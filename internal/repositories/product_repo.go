package repositories

import (
	"karigari/internal/models"
)

// ProductRepository defines the interface for catalog data access. GetByID is
// the catalog-lookup contract used by order intake and sales recording:
// price, category and owning artisan, or a not-found error.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByArtisanID(artisanID string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
