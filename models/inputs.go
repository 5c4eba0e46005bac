package models

import "github.com/shopspring/decimal"

// CustomerInput carries the fields accepted when creating a customer.
type CustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ProductInput carries the fields accepted when creating a product.
// Stock is a pointer so an absent value (defaults to 0) can be told apart
// from an explicit negative one.
type ProductInput struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       *int            `json:"stock"`
	Description string          `json:"description"`
}

// OrderInput carries the fields accepted when creating an order.
type OrderInput struct {
	CustomerID uint   `json:"customer_id"`
	ProductIDs []uint `json:"product_ids"`
	Notes      string `json:"notes"`
}
