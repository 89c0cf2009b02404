package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartv1 "github.com/dwikikusuma/storefront/api/cart/v1"
	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

type Server struct {
	cartv1.UnimplementedCartServiceServer
	store *app.Store
}

func NewServer(store *app.Store) *Server {
	return &Server{store: store}
}

func (s *Server) Dispatch(ctx context.Context, req *cartv1.DispatchRequest) (*cartv1.CartView, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "missing body")
	}

	actionType, err := domain.ParseActionType(req.Type)
	if err != nil {
		return nil, mapErr(err)
	}

	action := domain.Action{Type: actionType}
	if req.Payload != nil {
		action.Payload = &domain.Payload{
			SKU:   req.Payload.SKU,
			Name:  req.Payload.Name,
			Price: req.Payload.Price,
			Qty:   req.Payload.Qty,
		}
	}

	snap, err := s.store.Dispatch(ctx, action)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(snap), nil
}

func (s *Server) GetCart(ctx context.Context, req *cartv1.GetCartRequest) (*cartv1.CartView, error) {
	return toProto(s.store.Snapshot()), nil
}

func toProto(snap app.Snapshot) *cartv1.CartView {
	items := make([]cartv1.LineItem, 0, len(snap.Cart))
	for _, item := range snap.Cart {
		items = append(items, cartv1.LineItem{
			SKU:   item.SKU,
			Name:  item.Name,
			Price: item.Price,
			Qty:   item.Qty,
		})
	}

	return &cartv1.CartView{
		TotalItems: snap.TotalItems,
		TotalPrice: snap.TotalPrice,
		Cart:       items,
	}
}

func mapErr(err error) error {
	if domain.IsInvalidArgument(err) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if errors.Is(err, domain.ErrItemNotInCart) {
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Errorf(codes.Internal, "cart action failed: %v", err)
}
