package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartv1 "github.com/dwikikusuma/storefront/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/storefront/api/catalog/v1"
	orderv1 "github.com/dwikikusuma/storefront/api/order/v1"
	"github.com/dwikikusuma/storefront/pkg/config"
)

type fakeCart struct {
	cartv1.CartServiceClient
	sent []*cartv1.DispatchRequest
	view *cartv1.CartView
}

func (f *fakeCart) Dispatch(_ context.Context, in *cartv1.DispatchRequest, _ ...grpc.CallOption) (*cartv1.CartView, error) {
	f.sent = append(f.sent, in)
	return f.view, nil
}

func (f *fakeCart) GetCart(context.Context, *cartv1.GetCartRequest, ...grpc.CallOption) (*cartv1.CartView, error) {
	return f.view, nil
}

type fakeCatalog struct {
	catalogv1.CatalogServiceClient
	products []catalogv1.Product
}

func (f *fakeCatalog) ListProducts(context.Context, *catalogv1.ListProductsRequest, ...grpc.CallOption) (*catalogv1.ListProductsResponse, error) {
	return &catalogv1.ListProductsResponse{Products: f.products}, nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, in *catalogv1.GetProductRequest, _ ...grpc.CallOption) (*catalogv1.GetProductResponse, error) {
	for _, p := range f.products {
		if p.SKU == in.SKU {
			return &catalogv1.GetProductResponse{Product: p}, nil
		}
	}
	return nil, status.Error(codes.NotFound, "product not found")
}

type fakeOrders struct {
	orderv1.OrderServiceClient
	orders []orderv1.Order
}

func (f *fakeOrders) ListOrders(context.Context, *orderv1.ListOrdersRequest, ...grpc.CallOption) (*orderv1.ListOrdersResponse, error) {
	return &orderv1.ListOrdersResponse{Orders: f.orders}, nil
}

func (f *fakeOrders) GetOrder(_ context.Context, in *orderv1.GetOrderRequest, _ ...grpc.CallOption) (*orderv1.GetOrderResponse, error) {
	for _, o := range f.orders {
		if o.ID == in.ID {
			return &orderv1.GetOrderResponse{Order: o}, nil
		}
	}
	return nil, status.Error(codes.NotFound, "order not found")
}

var testOrders = []orderv1.Order{{
	ID:         "4f1c2a9e",
	Status:     "PENDING",
	TotalItems: 2,
	TotalPrice: "$19.98",
	Items: []orderv1.OrderItem{{
		SKU:       "item0001",
		Name:      "Widget",
		UnitPrice: decimal.RequireFromString("9.99"),
		Quantity:  2,
		LineTotal: decimal.RequireFromString("19.98"),
	}},
	CreatedAt: time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
}}

var testProducts = []catalogv1.Product{
	{SKU: "item0001", Name: "Widget", Price: decimal.RequireFromString("9.99")},
	{SKU: "item0002", Name: "Premium Widget", Price: decimal.RequireFromString("19.99")},
}

var testConfig = config.Client{GRPCAddr: "shop.internal:9000", CallTimeout: time.Second}

func execute(t *testing.T, cart *fakeCart, args ...string) (string, error) {
	t.Helper()
	dial := func(string) (*clients, error) {
		return &clients{
			cart:    cart,
			catalog: &fakeCatalog{products: testProducts},
			orders:  &fakeOrders{orders: testOrders},
		}, nil
	}

	var out bytes.Buffer
	cmd := newRootCmd(dial, testConfig)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProductsCommand(t *testing.T) {
	out, err := execute(t, &fakeCart{}, "products")
	require.NoError(t, err)
	assert.Contains(t, out, "item0001")
	assert.Contains(t, out, "$19.99")
}

func TestAddLooksUpCatalog(t *testing.T) {
	cart := &fakeCart{view: &cartv1.CartView{TotalItems: 1, TotalPrice: "$9.99", Cart: []cartv1.LineItem{
		{SKU: "item0001", Name: "Widget", Price: decimal.RequireFromString("9.99"), Qty: 1},
	}}}

	out, err := execute(t, cart, "add", "item0001")
	require.NoError(t, err)

	require.Len(t, cart.sent, 1)
	assert.Equal(t, "ADD", cart.sent[0].Type)
	assert.Equal(t, "Widget", cart.sent[0].Payload.Name)
	assert.True(t, decimal.RequireFromString("9.99").Equal(cart.sent[0].Payload.Price))

	assert.Contains(t, out, "The Coral Collective")
	assert.Contains(t, out, "Total Items: 1  Total Price: $9.99")
}

func TestAddUnknownSKU(t *testing.T) {
	cart := &fakeCart{}
	_, err := execute(t, cart, "add", "item0404")
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Empty(t, cart.sent)
}

func TestQtyCommand(t *testing.T) {
	cart := &fakeCart{view: &cartv1.CartView{TotalPrice: "$0.00"}}

	_, err := execute(t, cart, "qty", "item0001", "3")
	require.NoError(t, err)
	require.Len(t, cart.sent, 1)
	assert.Equal(t, "QUANTITY", cart.sent[0].Type)
	assert.Equal(t, 3, cart.sent[0].Payload.Qty)

	_, err = execute(t, cart, "qty", "item0001", "many")
	require.Error(t, err)
	assert.Len(t, cart.sent, 1)
}

func TestRemoveAndSubmit(t *testing.T) {
	cart := &fakeCart{view: &cartv1.CartView{TotalPrice: "$0.00"}}

	_, err := execute(t, cart, "remove", "item0002")
	require.NoError(t, err)
	out, err := execute(t, cart, "submit")
	require.NoError(t, err)

	require.Len(t, cart.sent, 2)
	assert.Equal(t, "REMOVE", cart.sent[0].Type)
	assert.Equal(t, "SUBMIT", cart.sent[1].Type)
	assert.Nil(t, cart.sent[1].Payload)
	assert.Contains(t, out, "Your cart is empty.")
}

func TestCartCommandRendersLines(t *testing.T) {
	cart := &fakeCart{view: &cartv1.CartView{TotalItems: 3, TotalPrice: "$39.97", Cart: []cartv1.LineItem{
		{SKU: "item0001", Name: "Widget", Price: decimal.RequireFromString("9.99"), Qty: 2},
		{SKU: "item0002", Name: "Premium Widget", Price: decimal.RequireFromString("19.99"), Qty: 1},
	}}}

	out, err := execute(t, cart, "cart")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Items: 3  Total Price: $39.97")
	assert.Contains(t, out, "$19.98")
}

func TestAddrFlag(t *testing.T) {
	for name, tc := range map[string]struct {
		args []string
		want string
	}{
		"config default": {args: []string{"cart"}, want: "shop.internal:9000"},
		"flag override":  {args: []string{"--addr", "localhost:7000", "cart"}, want: "localhost:7000"},
	} {
		t.Run(name, func(t *testing.T) {
			var dialed string
			dial := func(addr string) (*clients, error) {
				dialed = addr
				return &clients{cart: &fakeCart{view: &cartv1.CartView{TotalPrice: "$0.00"}}}, nil
			}

			cmd := newRootCmd(dial, testConfig)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetArgs(tc.args)
			require.NoError(t, cmd.Execute())
			assert.Equal(t, tc.want, dialed)
		})
	}
}

func TestOrdersCommand(t *testing.T) {
	out, err := execute(t, &fakeCart{}, "orders")
	require.NoError(t, err)
	assert.Contains(t, out, "4f1c2a9e")
	assert.Contains(t, out, "2026-10-16T09:30:00Z")

	out, err = execute(t, &fakeCart{}, "orders", "4f1c2a9e")
	require.NoError(t, err)
	assert.Contains(t, out, "Order 4f1c2a9e (PENDING)")
	assert.Contains(t, out, "Total Items: 2  Total Price: $19.98")
	assert.Contains(t, out, "$9.99")

	_, err = execute(t, &fakeCart{}, "orders", "nope")
	assert.Equal(t, codes.NotFound, status.Code(err))
}
