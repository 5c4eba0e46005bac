package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Response DTOs with explicit field lists. Entities are never serialized
// directly; each wire shape is spelled out here so the API surface cannot
// drift when a column is added to a model.

type CustomerResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type OrderResponse struct {
	ID          uint              `json:"id"`
	Customer    CustomerResponse  `json:"customer"`
	Products    []ProductResponse `json:"products"`
	OrderDate   time.Time         `json:"order_date"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func NewCustomerResponse(c *Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewProductResponse(p *Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewOrderResponse(o *Order) *OrderResponse {
	products := make([]ProductResponse, 0, len(o.Products))
	for i := range o.Products {
		products = append(products, *NewProductResponse(&o.Products[i]))
	}
	return &OrderResponse{
		ID:          o.ID,
		Customer:    *NewCustomerResponse(&o.Customer),
		Products:    products,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// Messages used across the mutation envelopes. Controllers map
// MsgValidationFailed to 400 and any other failure to 500.
const (
	MsgValidationFailed = "Validation failed"
)

// CustomerResult is the envelope returned by CreateCustomer.
type CustomerResult struct {
	Customer *CustomerResponse `json:"customer"`
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Errors   []string          `json:"errors"`
}

// BulkCustomerResult is the envelope returned by BulkCreateCustomers.
// Bulk creation is partial-success: every item is processed, failures are
// reported per item and do not roll back the rest.
type BulkCustomerResult struct {
	Customers    []CustomerResponse `json:"customers"`
	Errors       []string           `json:"errors"`
	SuccessCount int                `json:"success_count"`
}

// ProductResult is the envelope returned by CreateProduct.
type ProductResult struct {
	Product *ProductResponse `json:"product"`
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Errors  []string         `json:"errors"`
}

// OrderResult is the envelope returned by CreateOrder.
type OrderResult struct {
	Order   *OrderResponse `json:"order"`
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Errors  []string       `json:"errors"`
}
