package handlers

import (
	"errors"
	"fmt"
	"log"

	"karigari/internal/apperrors"
	"karigari/internal/models"
	"karigari/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders, the admin order view and
// the artisan sales feed.
type OrderHandler struct {
	orderService    *services.OrderService
	salesService    *services.SalesService
	activityService *services.ActivityService
	validate        *validator.Validate
}

// NewOrderHandler creates a new OrderHandler. activityService may be nil,
// in which case the activity feed route returns an empty list.
func NewOrderHandler(orderService *services.OrderService, salesService *services.SalesService,
	activityService *services.ActivityService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		salesService:    salesService,
		activityService: activityService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the order routes. adminGuard middleware, when
// provided, protects the unfiltered admin views.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, adminGuard ...fiber.Handler) {
	orderAPI := router.Group("/order-api")
	orderAPI.Post("/orders/create", h.HandleCreateOrder)
	orderAPI.Get("/orders/user/:userId", h.HandleGetOrdersByUser)
	orderAPI.Get("/orders/artisan/:artisanId", h.HandleGetOrdersByArtisan)
	orderAPI.Get("/orders", append(adminGuard, h.HandleGetAllOrders)...)
	orderAPI.Put("/orders/:orderId/status", h.HandleUpdateOrderStatus)
	orderAPI.Get("/sales/artisan/:artisanId", h.HandleGetSalesByArtisan)
	orderAPI.Get("/activities", append(adminGuard, h.HandleGetActivities)...)

	// Legacy route kept for older clients; same canonical handler, same
	// sales-recording behavior.
	router.Patch("/orders/:orderId/status", h.HandleUpdateOrderStatus)
}

// CreateOrderRequest is the body of POST /order-api/orders/create. Total is
// accepted for backward compatibility but the server always computes its own
// from the line items.
type CreateOrderRequest struct {
	UserID          string                 `json:"userId" validate:"required"`
	Items           []models.OrderItem     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
	Total           float64                `json:"total"`
}

// HandleCreateOrder creates a new order from a cart snapshot.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create-order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	createdOrder, err := h.orderService.CreateOrder(req.UserID, req.Items, req.ShippingAddress)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return errorResponse(c, "Could not create order", err)
	}

	return c.Status(fiber.StatusCreated).JSON(createdOrder)
}

// HandleGetOrdersByUser returns a customer's orders, newest-first.
func (h *OrderHandler) HandleGetOrdersByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	orders, err := h.orderService.GetOrdersByUser(userID)
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", userID, err)
		return errorResponse(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetOrdersByArtisan returns the orders containing the artisan's
// products, with items from other artisans stripped.
func (h *OrderHandler) HandleGetOrdersByArtisan(c *fiber.Ctx) error {
	artisanID := c.Params("artisanId")
	orders, err := h.orderService.GetOrdersByArtisan(artisanID)
	if err != nil {
		log.Printf("Error getting orders for artisan %s: %v", artisanID, err)
		return errorResponse(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetAllOrders returns every order, newest-first. Admin use.
func (h *OrderHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return errorResponse(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// UpdateStatusRequest is the body of the status-update routes.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateOrderStatus transitions an order's lifecycle status. When the
// transition into delivered succeeds, sales recording has already run by the
// time this returns; a recording failure is surfaced with the updated order
// so the failed items can be retried.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	order, err := h.orderService.UpdateOrderStatus(orderID, req.Status)
	if err != nil {
		var partial *apperrors.PartialFailure
		if errors.As(err, &partial) && order != nil {
			// The status change stands; report which items still need sales
			// recorded.
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message":      "Order status updated but sales recording partially failed",
				"order":        order,
				"failed_items": partial.FailedIDs,
			})
		}
		log.Printf("Error updating status for order %s: %v", orderID, err)
		return errorResponse(c, "Could not update order status", err)
	}

	return c.JSON(order)
}

// HandleGetSalesByArtisan returns the artisan's recorded sales, newest-first.
func (h *OrderHandler) HandleGetSalesByArtisan(c *fiber.Ctx) error {
	artisanID := c.Params("artisanId")
	sales, err := h.salesService.GetSalesByArtisan(artisanID)
	if err != nil {
		log.Printf("Error getting sales for artisan %s: %v", artisanID, err)
		return errorResponse(c, "Could not retrieve sales", err)
	}
	return c.JSON(sales)
}

// HandleGetActivities returns the recent activity feed. Admin use.
func (h *OrderHandler) HandleGetActivities(c *fiber.Ctx) error {
	if h.activityService == nil {
		return c.JSON([]models.Activity{})
	}
	activities, err := h.activityService.GetRecentActivities(c.QueryInt("limit", 50))
	if err != nil {
		log.Printf("Error getting activities: %v", err)
		return errorResponse(c, "Could not retrieve activities", err)
	}
	return c.JSON(activities)
}

// errorResponse maps the service error taxonomy onto HTTP statuses:
// validation errors 400, unknown references 404, everything else 500.
func errorResponse(c *fiber.Ctx, message string, err error) error {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": message,
			"error":   ve.Error(),
		})
	}
	var nf *apperrors.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": message,
			"error":   nf.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// validationErrorResponse renders validator.v10 field errors as a 400 with a
// per-field message map.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
