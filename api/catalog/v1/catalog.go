// Package catalogv1 defines the wire messages and gRPC service of the
// product catalog.
package catalogv1

import "github.com/shopspring/decimal"

type Product struct {
	SKU   string          `json:"sku"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type ListProductsRequest struct{}

type ListProductsResponse struct {
	Products []Product `json:"products"`
}

type GetProductRequest struct {
	SKU string `json:"sku"`
}

type GetProductResponse struct {
	Product Product `json:"product"`
}
