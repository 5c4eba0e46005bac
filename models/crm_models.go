package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer represents a person who places orders.
type Customer struct {
	gorm.Model
	Name   string  `json:"name" gorm:"size:100;not null"`
	Email  string  `json:"email" gorm:"size:254;uniqueIndex;not null"`
	Phone  string  `json:"phone" gorm:"size:17"`
	Orders []Order `json:"orders,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// Product represents an item we sell.
type Product struct {
	gorm.Model
	Name        string          `json:"name" gorm:"size:200;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int             `json:"stock" gorm:"not null;default:0"`
	Description string          `json:"description"`
}

// Order represents a purchase placed by a customer. Products is a
// many-to-many association through the order_products join table; the
// order exclusively owns its join rows. TotalAmount is a snapshot of the
// associated product prices, computed once inside the creation
// transaction and never recomputed afterwards.
type Order struct {
	gorm.Model
	CustomerID  uint            `json:"customer_id" gorm:"not null"`
	Customer    Customer        `json:"customer"`
	Products    []Product       `json:"products" gorm:"many2many:order_products"`
	OrderDate   time.Time       `json:"order_date" gorm:"not null"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);default:0.00"`
	Notes       string          `json:"notes"`
}
