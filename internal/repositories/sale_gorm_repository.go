package repositories

import (
	"fmt"

	"karigari/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSaleRepository is a GORM implementation of SaleRepository.
type GORMSaleRepository struct {
	db *gorm.DB
}

// NewGORMSaleRepository creates a new instance of GORMSaleRepository.
func NewGORMSaleRepository(db *gorm.DB) *GORMSaleRepository {
	return &GORMSaleRepository{
		db: db,
	}
}

// Create persists a new sale record.
func (r *GORMSaleRepository) Create(sale *models.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	if err := r.db.Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

// GetByOrderID retrieves the sales recorded for an order.
func (r *GORMSaleRepository) GetByOrderID(orderID string) ([]models.Sale, error) {
	var sales []models.Sale
	if err := r.db.Where("order_id = ?", orderID).Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to get sales for order %s: %w", orderID, err)
	}
	return sales, nil
}

// GetByArtisanID retrieves an artisan's sales, newest-first.
func (r *GORMSaleRepository) GetByArtisanID(artisanID string) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.Where("artisan_id = ?", artisanID).
		Order("sale_date DESC").Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get sales for artisan %s: %w", artisanID, err)
	}
	return sales, nil
}
