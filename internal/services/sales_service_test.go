package services_test

import (
	"fmt"
	"testing"
	"time"

	"karigari/internal/apperrors"
	"karigari/internal/models"
	"karigari/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func deliveredOrder(itemCount int) *models.Order {
	order := &models.Order{
		ID:     "order-7",
		UserID: "user-1",
		Status: models.StatusDelivered,
		ShippingAddress: models.ShippingAddress{
			Street:     "2 Potter Street",
			City:       "Chennai",
			State:      "Tamil Nadu",
			Country:    "India",
			PostalCode: "600001",
		},
	}
	for i := 0; i < itemCount; i++ {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: fmt.Sprintf("prod-%d", i+1),
			ArtisanID: "artisan-1",
			Quantity:  i + 1,
			Price:     100.0,
		})
	}
	return order
}

func TestSalesService_RecordSales(t *testing.T) {
	saleRepo := new(MockSaleRepository)
	productRepo := new(MockProductRepository)
	service := services.NewSalesService(saleRepo, productRepo)

	order := deliveredOrder(3)
	for i := 1; i <= 3; i++ {
		productRepo.On("GetByID", fmt.Sprintf("prod-%d", i)).
			Return(&models.Product{ID: fmt.Sprintf("prod-%d", i), Category: "Pottery", ArtisanID: "artisan-1"}, nil)
	}
	saleRepo.On("Create", mock.AnythingOfType("*models.Sale")).Return(nil).Times(3)

	saleDate := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)
	sales, err := service.RecordSales(order, saleDate)

	assert.NoError(t, err)
	assert.Len(t, sales, 3)
	for _, sale := range sales {
		assert.Equal(t, models.RegionSouth, sale.Region)
		assert.Equal(t, models.SeasonSummer, sale.Season)
		assert.Equal(t, "Pottery", sale.Category)
		assert.Equal(t, "Tamil Nadu", sale.State)
		assert.Equal(t, "Chennai", sale.City)
		assert.Equal(t, "600001", sale.PostalCode)
		assert.Equal(t, float64(sale.Quantity)*sale.Price, sale.TotalAmount)
		assert.Equal(t, saleDate, sale.SaleDate)
	}
	saleRepo.AssertExpectations(t)
}

func TestSalesService_RecordSales_SeasonFollowsSaleDate(t *testing.T) {
	saleRepo := new(MockSaleRepository)
	productRepo := new(MockProductRepository)
	service := services.NewSalesService(saleRepo, productRepo)

	order := deliveredOrder(1)
	productRepo.On("GetByID", "prod-1").Return(&models.Product{ID: "prod-1", Category: "Pottery"}, nil)
	saleRepo.On("Create", mock.AnythingOfType("*models.Sale")).Return(nil)

	// A backfill passes the historical date; the season reflects it, not the
	// clock.
	november := time.Date(2024, time.November, 3, 0, 0, 0, 0, time.UTC)
	sales, err := service.RecordSales(order, november)

	assert.NoError(t, err)
	assert.Equal(t, models.SeasonAutumn, sales[0].Season)
}

func TestSalesService_RecordSales_PartialFailure(t *testing.T) {
	saleRepo := new(MockSaleRepository)
	productRepo := new(MockProductRepository)
	service := services.NewSalesService(saleRepo, productRepo)

	order := deliveredOrder(2)
	productRepo.On("GetByID", "prod-1").Return(&models.Product{ID: "prod-1", Category: "Pottery"}, nil)
	// Catalog lookup fails for the second item; its sale is never written.
	productRepo.On("GetByID", "prod-2").Return(nil, apperrors.NotFound("product", "prod-2"))
	saleRepo.On("Create", mock.MatchedBy(func(s *models.Sale) bool { return s.ProductID == "prod-1" })).Return(nil).Once()

	sales, err := service.RecordSales(order, time.Now())

	var partial *apperrors.PartialFailure
	assert.ErrorAs(t, err, &partial)
	assert.Equal(t, []string{"prod-2"}, partial.FailedIDs)
	// The successful item's sale is still returned for the caller.
	assert.Len(t, sales, 1)
	assert.Equal(t, "prod-1", sales[0].ProductID)
	saleRepo.AssertExpectations(t)
}

func TestSalesService_RecordSales_ArtisanFallsBackToCatalog(t *testing.T) {
	saleRepo := new(MockSaleRepository)
	productRepo := new(MockProductRepository)
	service := services.NewSalesService(saleRepo, productRepo)

	// Orders created before artisan capture have no ArtisanID on the item;
	// the recorder resolves it through the catalog.
	order := deliveredOrder(1)
	order.Items[0].ArtisanID = ""
	productRepo.On("GetByID", "prod-1").Return(&models.Product{ID: "prod-1", Category: "Pottery", ArtisanID: "artisan-5"}, nil)
	saleRepo.On("Create", mock.AnythingOfType("*models.Sale")).Return(nil)

	sales, err := service.RecordSales(order, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, "artisan-5", sales[0].ArtisanID)
}
