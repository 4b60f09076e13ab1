package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"karigari/internal/apperrors"
	"karigari/internal/models"
	"karigari/internal/repositories"
)

// transitionAttempts bounds the CAS retry loop in UpdateOrderStatus. A lost
// race re-reads and retries; three rounds is plenty for status traffic.
const transitionAttempts = 3

// OrderService handles order intake, the status lifecycle and the read-side
// order views. Sales recording is triggered from here when an order
// transitions into the fulfilled state.
type OrderService struct {
	orderRepo      repositories.OrderRepository
	productRepo    repositories.ProductRepository
	userRepo       repositories.UserRepository
	sales          *SalesService
	activity       ActivityLogger
	priceTolerance float64
}

// NewOrderService creates a new OrderService. activity may be nil (activity
// logging is optional); priceTolerance is the allowed fraction by which a
// client-supplied unit price may deviate from the catalog price.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository, sales *SalesService, activity ActivityLogger,
	priceTolerance float64) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		userRepo:       userRepo,
		sales:          sales,
		activity:       activity,
		priceTolerance: priceTolerance,
	}
}

// CreateOrder validates and persists a new order from a cart snapshot. Unit
// prices come from the client snapshot (the price the customer saw is
// frozen), but each is checked against the catalog price within the
// configured tolerance to catch tampering. The owning artisan of each item
// is captured from the catalog at creation time. The order starts pending.
func (s *OrderService) CreateOrder(userID string, items []models.OrderItem,
	address models.ShippingAddress) (*models.Order, error) {

	if userID == "" {
		return nil, apperrors.Validation("userId is required")
	}
	if len(items) == 0 {
		return nil, apperrors.Validation("order must contain at least one item")
	}
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		var nf *apperrors.NotFoundError
		if errors.As(err, &nf) {
			return nil, apperrors.Validation("purchaser %s does not exist", userID)
		}
		return nil, apperrors.Storage("purchaser lookup", err)
	}

	processedItems := make([]models.OrderItem, 0, len(items))
	var totalAmount float64
	for _, item := range items {
		if item.ProductID == "" {
			return nil, apperrors.Validation("every item needs a product_id")
		}
		if item.Quantity < 1 {
			return nil, apperrors.Validation("quantity for product %s must be at least 1", item.ProductID)
		}
		if item.Price < 0 {
			return nil, apperrors.Validation("price for product %s must not be negative", item.ProductID)
		}

		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			var nf *apperrors.NotFoundError
			if errors.As(err, &nf) {
				return nil, apperrors.Validation("product %s does not exist", item.ProductID)
			}
			return nil, apperrors.Storage("catalog lookup", err)
		}
		if !withinTolerance(item.Price, product.Price, s.priceTolerance) {
			return nil, apperrors.Validation(
				"price %.2f for product %s deviates from the catalog price %.2f beyond the allowed tolerance",
				item.Price, item.ProductID, product.Price)
		}

		processedItems = append(processedItems, models.OrderItem{
			ProductID: item.ProductID,
			ArtisanID: product.ArtisanID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
		totalAmount += float64(item.Quantity) * item.Price
	}

	newOrder := &models.Order{
		UserID:          userID,
		Items:           processedItems,
		TotalAmount:     roundCurrency(totalAmount),
		Status:          models.StatusPending,
		ShippingAddress: address,
	}
	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, apperrors.Storage("order creation", err)
	}

	if s.activity != nil {
		s.activity.LogActivity("order_placed", userID, map[string]interface{}{
			"order_id":   newOrder.ID,
			"total":      newOrder.TotalAmount,
			"item_count": len(newOrder.Items),
		}, fmt.Sprintf("Order %s placed for %.2f", newOrder.ID, newOrder.TotalAmount))
	}

	return newOrder, nil
}

// UpdateOrderStatus transitions an order to a new lifecycle state. The
// status string is normalized at the boundary ("Completed" is an alias for
// delivered). The write is a compare-and-swap on the stored status, so a
// concurrent duplicate fulfil call cannot trigger sales recording twice:
// recording fires only for the call whose swap into delivered succeeds.
//
// A sales-recording failure does not roll back the status change; the
// updated order is returned together with the recording error for the caller
// to surface.
func (s *OrderService) UpdateOrderStatus(orderID, rawStatus string) (*models.Order, error) {
	target, ok := models.NormalizeStatus(rawStatus)
	if !ok {
		return nil, apperrors.Validation("invalid order status: %s", rawStatus)
	}

	for attempt := 0; attempt < transitionAttempts; attempt++ {
		order, err := s.orderRepo.GetByID(orderID)
		if err != nil {
			return nil, err
		}

		if order.Status == target {
			// Repeating the current status is an idempotent no-op; in
			// particular a second "delivered" call records no further sales.
			return order, nil
		}
		if order.Status.IsTerminal() {
			return nil, apperrors.Validation("order %s is already %s and cannot change to %s",
				orderID, order.Status, target)
		}

		swapped, err := s.orderRepo.TransitionStatus(orderID, order.Status, target)
		if err != nil {
			return nil, apperrors.Storage("status transition", err)
		}
		if !swapped {
			continue // lost a race, re-read and re-evaluate
		}

		order.Status = target
		if s.activity != nil {
			s.activity.LogActivity("order_status_updated", order.UserID, map[string]interface{}{
				"order_id": orderID,
				"status":   string(target),
			}, fmt.Sprintf("Order %s is now %s", orderID, target))
		}

		if target == models.StatusDelivered {
			if _, salesErr := s.sales.RecordSales(order, time.Now()); salesErr != nil {
				// The status change stands; the recording failure is
				// reported so the failed items can be retried.
				log.Printf("Sales recording failed for order %s: %v", orderID, salesErr)
				return order, salesErr
			}
		}
		return order, nil
	}

	return nil, apperrors.Storage("status transition",
		fmt.Errorf("order %s kept changing concurrently, giving up after %d attempts", orderID, transitionAttempts))
}

// GetOrdersByUser returns a customer's orders, newest-first.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetAllOrders returns every order, newest-first. Admin use.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersByArtisan returns the orders containing at least one line item
// owned by the artisan, newest-first. Non-matching items are stripped from
// the returned orders; an order appears only if at least one item matches.
func (s *OrderService) GetOrdersByArtisan(artisanID string) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	var matched []models.Order
	for _, order := range orders {
		var ownItems []models.OrderItem
		for _, item := range order.Items {
			if item.ArtisanID == artisanID {
				ownItems = append(ownItems, item)
			}
		}
		if len(ownItems) == 0 {
			continue
		}
		order.Items = ownItems
		matched = append(matched, order)
	}
	return matched, nil
}

// GetOrderByID retrieves a single order.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func validateAddress(address models.ShippingAddress) error {
	switch "" {
	case address.Street:
		return apperrors.Validation("shipping address is missing street")
	case address.City:
		return apperrors.Validation("shipping address is missing city")
	case address.State:
		return apperrors.Validation("shipping address is missing state")
	case address.Country:
		return apperrors.Validation("shipping address is missing country")
	case address.PostalCode:
		return apperrors.Validation("shipping address is missing postal_code")
	}
	return nil
}

// withinTolerance reports whether the client price is within the given
// fraction of the catalog price. A zero catalog price requires an exact
// match.
func withinTolerance(clientPrice, catalogPrice, tolerance float64) bool {
	if catalogPrice == 0 {
		return clientPrice == 0
	}
	return math.Abs(clientPrice-catalogPrice) <= tolerance*catalogPrice
}

// roundCurrency rounds a rupee amount to two decimals.
func roundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}
