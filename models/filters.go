package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Filter value objects for the read side. Nil/zero fields are skipped when
// the repository builds the query.

type CustomerFilter struct {
	Name         string
	Email        string
	CreatedAtGte *time.Time
	CreatedAtLte *time.Time
	PhonePattern string
}

type ProductFilter struct {
	Name     string
	PriceGte *decimal.Decimal
	PriceLte *decimal.Decimal
	StockGte *int
	StockLte *int
	LowStock *int
}

type OrderFilter struct {
	TotalAmountGte *decimal.Decimal
	TotalAmountLte *decimal.Decimal
	OrderDateGte   *time.Time
	OrderDateLte   *time.Time
	CustomerName   string
	CustomerEmail  string
	ProductName    string
	ProductID      *uint
}
