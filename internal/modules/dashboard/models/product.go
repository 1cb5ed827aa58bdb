package models

import "time"

// Product represents a product in the catalog
type Product struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Category string `gorm:"type:varchar(100);not null;index" json:"category"`

	// Pricing
	Cost  float64 `gorm:"type:numeric(10,2);not null" json:"cost"`
	Price float64 `gorm:"type:numeric(10,2);not null" json:"price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductFilter represents product filtering options
type ProductFilter struct {
	Category string
}

// CategoryStats is one row of the category aggregate
type CategoryStats struct {
	Category     string  `json:"category"`
	ProductCount int64   `json:"product_count"`
	AvgPrice     float64 `json:"avg_price"`
}
