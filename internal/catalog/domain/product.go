package domain

import "github.com/shopspring/decimal"

type Product struct {
	SKU   string
	Name  string
	Price decimal.Decimal
}
