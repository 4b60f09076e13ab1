package services

import (
	"fmt"
	"sync"
	"time"

	"karigari/internal/apperrors"
	"karigari/internal/classify"
	"karigari/internal/models"
	"karigari/internal/repositories"
)

// SalesService records per-line-item sale records when an order reaches the
// fulfilled state, enriching each with region, season, category and the
// customer location.
type SalesService struct {
	saleRepo    repositories.SaleRepository
	productRepo repositories.ProductRepository
}

// NewSalesService creates a new SalesService.
func NewSalesService(saleRepo repositories.SaleRepository, productRepo repositories.ProductRepository) *SalesService {
	return &SalesService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// RecordSales writes one Sale per line item of the order. Writes are issued
// concurrently and the call returns once all have finished. saleDate is the
// processing time of the fulfilment; backfill callers pass the historical
// date. An individual item failure does not abort the others: the error is a
// *apperrors.PartialFailure listing the failed product IDs, and the returned
// slice holds the sales that were written.
func (s *SalesService) RecordSales(order *models.Order, saleDate time.Time) ([]models.Sale, error) {
	region := classify.Region(order.ShippingAddress.State)
	season := classify.Season(saleDate)

	type result struct {
		sale *models.Sale
		err  error
	}
	results := make([]result, len(order.Items))

	var wg sync.WaitGroup
	for i, item := range order.Items {
		wg.Add(1)
		go func(i int, item models.OrderItem) {
			defer wg.Done()
			sale, err := s.recordItem(order, item, region, season, saleDate)
			results[i] = result{sale: sale, err: err}
		}(i, item)
	}
	wg.Wait()

	var sales []models.Sale
	var failedIDs []string
	var errs []error
	for i, res := range results {
		if res.err != nil {
			failedIDs = append(failedIDs, order.Items[i].ProductID)
			errs = append(errs, res.err)
			continue
		}
		sales = append(sales, *res.sale)
	}

	if len(failedIDs) > 0 {
		return sales, &apperrors.PartialFailure{
			Op:        "sales recording",
			FailedIDs: failedIDs,
			Errs:      errs,
		}
	}
	return sales, nil
}

// recordItem builds and persists the sale for a single line item. Category is
// resolved through the catalog at sale time; everything else is copied from
// the frozen order data.
func (s *SalesService) recordItem(order *models.Order, item models.OrderItem,
	region models.Region, season models.Season, saleDate time.Time) (*models.Sale, error) {

	product, err := s.productRepo.GetByID(item.ProductID)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup for product %s failed: %w", item.ProductID, err)
	}

	artisanID := item.ArtisanID
	if artisanID == "" {
		artisanID = product.ArtisanID
	}

	sale := &models.Sale{
		ProductID:   item.ProductID,
		ArtisanID:   artisanID,
		OrderID:     order.ID,
		Quantity:    item.Quantity,
		Price:       item.Price,
		TotalAmount: roundCurrency(float64(item.Quantity) * item.Price),
		Category:    product.Category,
		Region:      region,
		State:       order.ShippingAddress.State,
		City:        order.ShippingAddress.City,
		PostalCode:  order.ShippingAddress.PostalCode,
		SaleDate:    saleDate,
		Season:      season,
	}
	if err := s.saleRepo.Create(sale); err != nil {
		return nil, fmt.Errorf("failed to persist sale for product %s: %w", item.ProductID, err)
	}
	return sale, nil
}

// GetSalesByArtisan returns an artisan's recorded sales, newest-first.
func (s *SalesService) GetSalesByArtisan(artisanID string) ([]models.Sale, error) {
	return s.saleRepo.GetByArtisanID(artisanID)
}
