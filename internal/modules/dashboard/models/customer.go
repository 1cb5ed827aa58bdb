package models

import (
	"time"

	"gorm.io/datatypes"
)

// Customer represents a shopper account
type Customer struct {
	ID         int64          `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"type:varchar(255);not null" json:"name"`
	Email      string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Region     string         `gorm:"type:varchar(100)" json:"region"`
	SignupDate datatypes.Date `gorm:"type:date;not null;index" json:"signup_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}
