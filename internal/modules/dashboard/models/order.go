package models

import (
	"time"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/core/analytics"
)

// DefaultOrderLimit caps the order list when no limit is requested.
const DefaultOrderLimit = 10000

// Order represents a customer order
type Order struct {
	ID         int64                 `gorm:"primaryKey" json:"id"`
	CustomerID int64                 `gorm:"not null;index" json:"customer_id"`
	Status     analytics.OrderStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	CreatedAt  time.Time             `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt  time.Time             `gorm:"autoUpdateTime" json:"updated_at"`

	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a line item of an order
type OrderItem struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	OrderID   int64     `gorm:"not null;index" json:"order_id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	UnitPrice float64   `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderFilter represents order list filtering options
type OrderFilter struct {
	Status analytics.OrderStatus
	Search string // customer name, email or order id
	Limit  int
}

// OrderSummary is one row of the order list
type OrderSummary struct {
	OrderID       int64     `json:"order_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	TotalAmount   float64   `json:"total_amount"`
	ItemsCount    int64     `json:"items_count"`
}

// OrderDetail is an order with its line items
type OrderDetail struct {
	ID            int64             `json:"id"`
	CustomerID    int64             `json:"customer_id"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	Status        string            `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	Items         []OrderItemDetail `json:"items"`
	TotalAmount   float64           `json:"total_amount"`
}

// OrderItemDetail is a line item joined with its product
type OrderItemDetail struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	ItemTotal   float64 `json:"item_total"`
}

// OrderStats counts orders by status
type OrderStats struct {
	Total        int64   `json:"total"`
	Completed    int64   `json:"completed"`
	Pending      int64   `json:"pending"`
	Cancelled    int64   `json:"cancelled"`
	TotalRevenue float64 `json:"total_revenue"` // completed orders only
}
