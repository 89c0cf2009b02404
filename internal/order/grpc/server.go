package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	orderv1 "github.com/dwikikusuma/storefront/api/order/v1"
	"github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/money"
)

type Server struct {
	orderv1.UnimplementedOrderServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetOrder(ctx context.Context, req *orderv1.GetOrderRequest) (*orderv1.GetOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "missing body")
	}
	order, err := s.svc.GetOrder(ctx, req.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.GetOrderResponse{Order: toProto(order)}, nil
}

func (s *Server) ListOrders(ctx context.Context, req *orderv1.ListOrdersRequest) (*orderv1.ListOrdersResponse, error) {
	orders, err := s.svc.ListOrders(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]orderv1.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toProto(o))
	}
	return &orderv1.ListOrdersResponse{Orders: out}, nil
}

func toProto(o domain.Order) orderv1.Order {
	items := make([]orderv1.OrderItem, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		items = append(items, orderv1.OrderItem{
			SKU:       it.SKU,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal,
		})
	}

	return orderv1.Order{
		ID:         o.ID,
		Status:     o.Status,
		Currency:   o.Currency,
		TotalItems: o.TotalItems,
		SubTotal:   o.SubTotal,
		TotalPrice: money.USD(o.SubTotal),
		Items:      items,
		CreatedAt:  o.CreatedAt,
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidOrder):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Errorf(codes.Internal, "order lookup failed: %v", err)
	}
}
