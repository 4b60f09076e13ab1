package repositories

import (
	"sort"
	"sync"

	"karigari/internal/models"

	"github.com/google/uuid"
)

// MockSaleRepository is an in-memory implementation of SaleRepository.
type MockSaleRepository struct {
	sales map[string]models.Sale
	mu    sync.RWMutex
}

// NewMockSaleRepository creates a new instance of MockSaleRepository.
func NewMockSaleRepository() *MockSaleRepository {
	return &MockSaleRepository{
		sales: make(map[string]models.Sale),
	}
}

// Create adds a new sale record.
func (r *MockSaleRepository) Create(sale *models.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	r.sales[sale.ID] = *sale
	return nil
}

// GetByOrderID returns the sales recorded for an order.
func (r *MockSaleRepository) GetByOrderID(orderID string) ([]models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var saleList []models.Sale
	for _, s := range r.sales {
		if s.OrderID == orderID {
			saleList = append(saleList, s)
		}
	}
	return saleList, nil
}

// GetByArtisanID returns an artisan's sales, newest-first.
func (r *MockSaleRepository) GetByArtisanID(artisanID string) ([]models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var saleList []models.Sale
	for _, s := range r.sales {
		if s.ArtisanID == artisanID {
			saleList = append(saleList, s)
		}
	}
	sort.Slice(saleList, func(i, j int) bool {
		return saleList[i].SaleDate.After(saleList[j].SaleDate)
	})
	return saleList, nil
}
