package grpc

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	orderv1 "github.com/dwikikusuma/storefront/api/order/v1"
	"github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/order/infra/memory"
)

func placeOrder(t *testing.T, svc *app.Service) string {
	t.Helper()
	resp, err := svc.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		Items: []domain.OrderItemRequest{
			{SKU: "item0001", Name: "Widget", UnitPrice: decimal.RequireFromString("9.99"), Quantity: 2},
			{SKU: "item0002", Name: "Premium Widget", UnitPrice: decimal.RequireFromString("19.99"), Quantity: 1},
		},
	})
	require.NoError(t, err)
	return resp.ID
}

func TestGetOrder(t *testing.T) {
	svc := app.NewService(memory.NewOrderRepo())
	id := placeOrder(t, svc)
	srv := NewServer(svc)

	resp, err := srv.GetOrder(context.Background(), &orderv1.GetOrderRequest{ID: id})
	require.NoError(t, err)
	assert.Equal(t, id, resp.Order.ID)
	assert.Equal(t, app.OrderStatusPending, resp.Order.Status)
	assert.Equal(t, 3, resp.Order.TotalItems)
	assert.Equal(t, "$39.97", resp.Order.TotalPrice)
	require.Len(t, resp.Order.Items, 2)
	assert.Equal(t, "19.98", resp.Order.Items[0].LineTotal.StringFixed(2))
}

func TestGetOrderErrors(t *testing.T) {
	srv := NewServer(app.NewService(memory.NewOrderRepo()))

	_, err := srv.GetOrder(context.Background(), &orderv1.GetOrderRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = srv.GetOrder(context.Background(), &orderv1.GetOrderRequest{ID: "8d7f5c1e-0000-0000-0000-000000000000"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = srv.GetOrder(context.Background(), nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListOrders(t *testing.T) {
	svc := app.NewService(memory.NewOrderRepo())
	srv := NewServer(svc)

	resp, err := srv.ListOrders(context.Background(), &orderv1.ListOrdersRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Orders)

	first := placeOrder(t, svc)
	second := placeOrder(t, svc)

	resp, err = srv.ListOrders(context.Background(), &orderv1.ListOrdersRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 2)
	assert.Equal(t, first, resp.Orders[0].ID)
	assert.Equal(t, second, resp.Orders[1].ID)
}
