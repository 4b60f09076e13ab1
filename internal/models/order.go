package models

import (
	"strings"
	"time"
)

// OrderStatus is the canonical order lifecycle state.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// NormalizeStatus maps a client-supplied status string to the canonical enum.
// Matching is case-insensitive and "completed" is an alias for "delivered"
// (legacy clients use both names for the fulfilled state). The second return
// value reports whether the input was recognized.
func NormalizeStatus(raw string) (OrderStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, true
	case "confirmed":
		return StatusConfirmed, true
	case "shipped":
		return StatusShipped, true
	case "delivered", "completed":
		return StatusDelivered, true
	case "cancelled":
		return StatusCancelled, true
	}
	return "", false
}

// IsTerminal reports whether the status ends the order lifecycle.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ShippingAddress is the destination captured on an order. All fields are
// required for a valid order; State drives region attribution on sales.
type ShippingAddress struct {
	Street     string `json:"street" gorm:"type:varchar(255)" validate:"required"`
	City       string `json:"city" gorm:"type:varchar(100)" validate:"required"`
	State      string `json:"state" gorm:"type:varchar(100)" validate:"required"`
	Country    string `json:"country" gorm:"type:varchar(100)" validate:"required"`
	PostalCode string `json:"postal_code" gorm:"type:varchar(20)" validate:"required"`
}

// OrderItem represents a single line item within an order. Price is the unit
// price frozen at order time; ArtisanID is the product's owner captured from
// the catalog so artisan-scoped views and sales attribution do not depend on
// later catalog state.
type OrderItem struct {
	ID        string  `json:"-" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	ArtisanID string  `json:"artisan_id" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// Order represents a customer order. TotalAmount is the sum of
// quantity x price over Items at creation time and is never recomputed, so
// historical orders stay stable when catalog prices change. Status is the
// only field mutated after creation.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string          `json:"user_id" gorm:"index;type:varchar(36)"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount     float64         `json:"total_amount"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(20)"`
	ShippingAddress ShippingAddress `json:"shipping_address" gorm:"embedded;embeddedPrefix:ship_"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
