package models

import "time"

// Region is one of five fixed geographic buckets derived from the shipping
// state of a fulfilled order.
type Region string

const (
	RegionNorth   Region = "North"
	RegionSouth   Region = "South"
	RegionEast    Region = "East"
	RegionWest    Region = "West"
	RegionCentral Region = "Central"
)

// Season is one of five fixed calendar buckets derived from the sale's
// processing month.
type Season string

const (
	SeasonSpring  Season = "Spring"
	SeasonSummer  Season = "Summer"
	SeasonMonsoon Season = "Monsoon"
	SeasonAutumn  Season = "Autumn"
	SeasonWinter  Season = "Winter"
)

// Sale is the per-line-item record of a fulfilled order, written once when
// the order is delivered and never mutated afterward. Region, season and the
// customer location are denormalized onto the row so analytics consumers can
// aggregate without joining back to orders.
type Sale struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID   string    `json:"product_id" gorm:"type:varchar(36)"`
	ArtisanID   string    `json:"artisan_id" gorm:"index:idx_sales_artisan_date;type:varchar(36)"`
	OrderID     string    `json:"order_id" gorm:"index;type:varchar(36)"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	TotalAmount float64   `json:"total_amount"`
	Category    string    `json:"category" gorm:"index:idx_sales_category_date;type:varchar(100)"`
	Region      Region    `json:"region" gorm:"type:varchar(20)"`
	State       string    `json:"state" gorm:"type:varchar(100)"`
	City        string    `json:"city" gorm:"type:varchar(100)"`
	PostalCode  string    `json:"postal_code" gorm:"type:varchar(20)"`
	SaleDate    time.Time `json:"sale_date" gorm:"index:idx_sales_artisan_date;index:idx_sales_category_date"`
	Season      Season    `json:"season" gorm:"type:varchar(20)"`
	CreatedAt   time.Time `json:"created_at"`
}
